// /internal/wish/gift.go
package wish

// GiftWish é o presente desejado, montado a cada tentativa de envio.
// Não tem identidade e nunca é persistido.
type GiftWish struct {
	GiftName    string   `json:"giftName" validate:"required"`
	GiftRate    *float64 `json:"giftRate,omitempty" validate:"omitempty,min=0,max=10"`
	GiftDetails *string  `json:"giftDetails,omitempty"`
	GiftPrice   *float64 `json:"giftPrice,omitempty"`
	GiftLink    *string  `json:"giftLink,omitempty"`
}

// FormInput espelha os campos do formulário exatamente como foram enviados.
type FormInput struct {
	GiftName    string `form:"giftName" json:"giftName"`
	GiftRate    string `form:"giftRate" json:"giftRate"`
	GiftDetails string `form:"giftDetails" json:"giftDetails"`
	GiftPrice   string `form:"giftPrice" json:"giftPrice"`
	GiftLink    string `form:"giftLink" json:"giftLink"`
}

// FieldErrors mapeia o nome do campo (json) para a mensagem exibida ao lado dele.
type FieldErrors map[string]string

// Nomes dos campos, usados como chave em FieldErrors.
const (
	FieldGiftName    = "giftName"
	FieldGiftRate    = "giftRate"
	FieldGiftDetails = "giftDetails"
	FieldGiftPrice   = "giftPrice"
	FieldGiftLink    = "giftLink"
)
