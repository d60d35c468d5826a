package wish

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mensagens exibidas ao lado do campo inválido.
const (
	MsgNameRequired = "Conta pra gente que presente você quer."
	MsgRateRange    = "A nota precisa estar entre 0 e 10."
)

var schema = newSchema()

// newSchema configura o validador para reportar os campos pelo nome usado no formulário.
func newSchema() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate converte os valores crus do formulário em um GiftWish.
// Retorna os erros por campo quando alguma restrição não é atendida.
func Validate(in FormInput) (GiftWish, FieldErrors) {
	errs := FieldErrors{}

	gift := GiftWish{
		GiftName:    strings.TrimSpace(in.GiftName),
		GiftDetails: optionalText(in.GiftDetails),
		GiftLink:    optionalText(strings.TrimSpace(in.GiftLink)),
	}

	if raw := strings.TrimSpace(in.GiftRate); raw != "" {
		rate, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
			errs[FieldGiftRate] = MsgRateRange
		} else {
			gift.GiftRate = &rate
		}
	}

	if amount, ok := ParsePrice(in.GiftPrice); ok {
		gift.GiftPrice = &amount
	}

	for field, msg := range ValidateGift(gift) {
		errs[field] = msg
	}

	if len(errs) > 0 {
		return GiftWish{}, errs
	}
	return gift, nil
}

// ValidateGift aplica o schema a um GiftWish já montado (por exemplo, vindo de código
// e não do formulário). Retorna nil quando o valor é válido.
func ValidateGift(gift GiftWish) FieldErrors {
	errs := FieldErrors{}

	if err := schema.Struct(gift); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// InvalidValidationError só acontece com entrada que não é struct.
			return FieldErrors{"": err.Error()}
		}
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				errs[fe.Field()] = MsgNameRequired
			case "min", "max":
				errs[fe.Field()] = MsgRateRange
			default:
				errs[fe.Field()] = fe.Error()
			}
		}
	}

	// NaN passa por min/max, então é rejeitado aqui.
	if gift.GiftRate != nil && (math.IsNaN(*gift.GiftRate) || math.IsInf(*gift.GiftRate, 0)) {
		errs[FieldGiftRate] = MsgRateRange
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
