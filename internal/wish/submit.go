package wish

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubmitFailedMessage é a notificação de erro exibida quando o envio falha.
const SubmitFailedMessage = "Falha ao enviar o formulário. Tente novamente."

// Notifier recebe as notificações passageiras geradas por um envio.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// RenderFunc monta o texto da notificação de sucesso.
type RenderFunc func(GiftWish) (string, error)

// Outcome resume o resultado de um envio para a camada de interface.
type Outcome struct {
	OK      bool
	Message string
}

// Submitter registra o presente no log e avisa o usuário.
type Submitter struct {
	Log    *logrus.Logger
	Render RenderFunc
}

// NewSubmitter cria um Submitter que mostra o presente como JSON indentado.
func NewSubmitter(log *logrus.Logger) *Submitter {
	return &Submitter{Log: log, Render: PrettyJSON}
}

// PrettyJSON serializa o presente com indentação de dois espaços.
func PrettyJSON(gift GiftWish) (string, error) {
	b, err := json.MarshalIndent(gift, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Submit é síncrono e sempre termina. Qualquer falha ao montar ou exibir a
// notificação de sucesso vira uma única notificação de erro.
func (s *Submitter) Submit(gift GiftWish, n Notifier) (out Outcome) {
	entry := s.logger().WithField("submission_id", uuid.NewString())
	entry.WithFields(giftFields(gift)).Info("Presente enviado")

	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("Erro ao enviar o formulário")
			n.Error(SubmitFailedMessage)
			out = Outcome{OK: false, Message: SubmitFailedMessage}
		}
	}()

	msg, err := s.render(gift)
	if err != nil {
		entry.WithError(err).Error("Erro ao enviar o formulário")
		n.Error(SubmitFailedMessage)
		return Outcome{OK: false, Message: SubmitFailedMessage}
	}

	n.Success(msg)
	return Outcome{OK: true, Message: msg}
}

func (s *Submitter) render(gift GiftWish) (string, error) {
	if s.Render == nil {
		return PrettyJSON(gift)
	}
	return s.Render(gift)
}

func (s *Submitter) logger() *logrus.Logger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func giftFields(gift GiftWish) logrus.Fields {
	fields := logrus.Fields{FieldGiftName: gift.GiftName}
	if gift.GiftRate != nil {
		fields[FieldGiftRate] = *gift.GiftRate
	}
	if gift.GiftDetails != nil {
		fields[FieldGiftDetails] = *gift.GiftDetails
	}
	if gift.GiftPrice != nil {
		fields[FieldGiftPrice] = fmt.Sprintf("%.2f", *gift.GiftPrice)
	}
	if gift.GiftLink != nil {
		fields[FieldGiftLink] = *gift.GiftLink
	}
	return fields
}
