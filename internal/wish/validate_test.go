package wish

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	t.Run("Todos os campos preenchidos", func(t *testing.T) {
		gift, errs := Validate(FormInput{
			GiftName:    "Tênis de corrida",
			GiftRate:    "8",
			GiftDetails: "Tudo menos amarelo",
			GiftPrice:   "R$ 500,00",
			GiftLink:    " https://exemplo.com/tenis ",
		})
		require.Empty(t, errs)

		assert.Equal(t, "Tênis de corrida", gift.GiftName)
		require.NotNil(t, gift.GiftRate)
		assert.Equal(t, 8.0, *gift.GiftRate)
		require.NotNil(t, gift.GiftDetails)
		assert.Equal(t, "Tudo menos amarelo", *gift.GiftDetails)
		require.NotNil(t, gift.GiftPrice)
		assert.Equal(t, 500.0, *gift.GiftPrice)
		require.NotNil(t, gift.GiftLink)
		assert.Equal(t, "https://exemplo.com/tenis", *gift.GiftLink)
	})

	t.Run("Somente o nome", func(t *testing.T) {
		gift, errs := Validate(FormInput{GiftName: "Pônei mágico"})
		require.Empty(t, errs)
		assert.Equal(t, "Pônei mágico", gift.GiftName)
		assert.Nil(t, gift.GiftRate)
		assert.Nil(t, gift.GiftDetails)
		assert.Nil(t, gift.GiftPrice)
		assert.Nil(t, gift.GiftLink)
	})

	t.Run("Nome vazio bloqueia o envio", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			gift, errs := Validate(FormInput{GiftName: name, GiftRate: "5"})
			assert.Equal(t, MsgNameRequired, errs[FieldGiftName], "nome %q", name)
			assert.Len(t, errs, 1)
			assert.Equal(t, GiftWish{}, gift)
		}
	})

	t.Run("Nota nos limites", func(t *testing.T) {
		for _, rate := range []string{"0", "10", "5,5", "7.25"} {
			_, errs := Validate(FormInput{GiftName: "Livro", GiftRate: rate})
			assert.Empty(t, errs, "nota %q", rate)
		}
	})

	t.Run("Nota fora do intervalo", func(t *testing.T) {
		for _, rate := range []string{"-1", "10.01", "11", "abc", "NaN", "Inf"} {
			_, errs := Validate(FormInput{GiftName: "Livro", GiftRate: rate})
			assert.Equal(t, MsgRateRange, errs[FieldGiftRate], "nota %q", rate)
		}
	})

	t.Run("Nome e nota inválidos juntos", func(t *testing.T) {
		_, errs := Validate(FormInput{GiftRate: "42"})
		assert.Equal(t, FieldErrors{
			FieldGiftName: MsgNameRequired,
			FieldGiftRate: MsgRateRange,
		}, errs)
	})

	t.Run("Campos opcionais em branco ficam ausentes", func(t *testing.T) {
		gift, errs := Validate(FormInput{GiftName: "Bola", GiftDetails: "  ", GiftPrice: "R$ ", GiftLink: " "})
		require.Empty(t, errs)
		assert.Nil(t, gift.GiftDetails)
		assert.Nil(t, gift.GiftPrice)
		assert.Nil(t, gift.GiftLink)
	})
}

func TestValidateGift(t *testing.T) {
	assert.Nil(t, ValidateGift(GiftWish{GiftName: "Bola", GiftRate: ptr(10.0)}))
	assert.Nil(t, ValidateGift(GiftWish{GiftName: "Bola", GiftRate: ptr(0.0)}))

	for _, rate := range []float64{-0.5, 10.5, 100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		errs := ValidateGift(GiftWish{GiftName: "Bola", GiftRate: ptr(rate)})
		assert.Equal(t, FieldErrors{FieldGiftRate: MsgRateRange}, errs, "nota %v", rate)
	}

	errs := ValidateGift(GiftWish{})
	assert.Equal(t, FieldErrors{FieldGiftName: MsgNameRequired}, errs)
}
