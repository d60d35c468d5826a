package wish

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxPriceDigits é o limite de dígitos aceitos no campo de preço.
const MaxPriceDigits = 15

var brl = message.NewPrinter(language.BrazilianPortuguese)

// ParsePrice remove tudo que não for dígito ASCII e interpreta o resultado como
// centavos. Sem nenhum dígito, o preço é considerado ausente.
func ParsePrice(raw string) (float64, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, false
	}
	if len(digits) > MaxPriceDigits {
		digits = digits[:MaxPriceDigits]
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(cents) / 100, true
}

// FormatPrice formata o valor em reais no padrão pt-BR, ex.: "R$ 1.234,56".
func FormatPrice(amount float64) string {
	return brl.Sprint(currency.Symbol(currency.BRL.Amount(roundCents(amount))))
}

// DisplayPrice é a transformação aplicada ao campo de preço a cada renderização.
// Valor ausente ou zero fica em branco.
func DisplayPrice(raw string) string {
	amount, ok := ParsePrice(raw)
	if !ok || amount == 0 {
		return ""
	}
	return FormatPrice(amount)
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

