// /internal/handler/gift_handler.go
package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/ericoliveiras/presente/internal/wish"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	SessionName     = "presente-session"
	DraftSessionKey = "gift_draft"
)

// rateOptions são os valores do controle de nota (0 a 10).
var rateOptions = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

func init() {
	// O rascunho do formulário vai para o cookie de sessão.
	gob.Register(wish.FormInput{})
}

// GiftHandler agrupa os handlers do formulário de presente.
type GiftHandler struct {
	Store     *sessions.CookieStore
	Submitter *wish.Submitter
	Log       *logrus.Logger
}

// PriceRequest é o corpo aceito por FormatPriceJSON.
type PriceRequest struct {
	Raw string `json:"raw"`
}

// sessionNotifier transforma as notificações do envio em flash messages.
type sessionNotifier struct {
	session *sessions.Session
}

func (n sessionNotifier) Success(msg string) { n.session.AddFlash(msg, "success") }
func (n sessionNotifier) Error(msg string)   { n.session.AddFlash(msg, "error") }

// Routes registra as rotas do formulário.
func (h *GiftHandler) Routes(router gin.IRoutes) {
	router.GET("/", h.ShowGiftForm)
	router.POST("/presente", h.ProcessGiftForm)
	router.POST("/api/preco", h.FormatPriceJSON)
	router.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })
}

// ShowGiftForm renderiza o formulário com as flash messages e o último rascunho enviado.
func (h *GiftHandler) ShowGiftForm(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	flashesSuccess := session.Flashes("success")
	flashesError := session.Flashes("error")
	values, _ := session.Values[DraftSessionKey].(wish.FormInput)
	delete(session.Values, DraftSessionKey)

	if err := session.Save(c.Request, c.Writer); err != nil {
		h.logger().WithError(err).Warn("Erro ao salvar sessão em ShowGiftForm")
	}

	h.renderForm(c, http.StatusOK, values, nil, flashesSuccess, flashesError)
}

// ProcessGiftForm valida o formulário e, se estiver tudo certo, envia o presente.
func (h *GiftHandler) ProcessGiftForm(c *gin.Context) {
	var input wish.FormInput
	if err := c.ShouldBind(&input); err != nil {
		h.logger().WithError(err).Warn("Erro ao ler o formulário de presente")
		h.renderForm(c, http.StatusBadRequest, input, nil, nil, []interface{}{"Não foi possível ler o formulário."})
		return
	}

	gift, errs := wish.Validate(input)
	if len(errs) > 0 {
		h.renderForm(c, http.StatusUnprocessableEntity, input, errs, nil, nil)
		return
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	out := h.Submitter.Submit(gift, sessionNotifier{session: session})
	session.Values[DraftSessionKey] = input

	if err := session.Save(c.Request, c.Writer); err != nil {
		// Ex.: cookie grande demais. Mostra o resultado direto, sem redirecionar.
		h.logger().WithError(err).Warn("Erro ao salvar sessão em ProcessGiftForm")
		if out.OK {
			h.renderForm(c, http.StatusOK, input, nil, []interface{}{out.Message}, nil)
		} else {
			h.renderForm(c, http.StatusOK, input, nil, nil, []interface{}{out.Message})
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// FormatPriceJSON aplica a máscara de preço e retorna JSON (usado enquanto o usuário digita).
func (h *GiftHandler) FormatPriceJSON(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos."})
		return
	}

	var amount interface{}
	if value, ok := wish.ParsePrice(req.Raw); ok {
		amount = value
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"amount":  amount,
		"display": wish.DisplayPrice(req.Raw),
	})
}

func (h *GiftHandler) renderForm(c *gin.Context, status int, values wish.FormInput, errs wish.FieldErrors, flashesSuccess, flashesError []interface{}) {
	if errs == nil {
		errs = wish.FieldErrors{}
	}

	c.HTML(status, "presente.html", gin.H{
		"Values":         values,
		"Errors":         errs,
		"PriceDisplay":   wish.DisplayPrice(values.GiftPrice),
		"RateOptions":    rateOptions,
		"MaxPriceDigits": wish.MaxPriceDigits,
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

func (h *GiftHandler) logger() *logrus.Logger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}
