// internals/features/home/notifications/service/whatsapp_service.go
package service

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"voluntarios_backend/internals/configs"
)

// WhatsAppService envia mensagens via gateway Twilio.
// Usado pelos lembretes de escala e convites; sempre best-effort.
type WhatsAppService struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppService() *WhatsAppService {
	if configs.TwilioAccountSID == "" || configs.TwilioAuthToken == "" {
		log.Println("⚠️ Credenciais Twilio ausentes - WhatsApp desativado")
		return &WhatsAppService{}
	}
	return &WhatsAppService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: configs.TwilioAccountSID,
			Password: configs.TwilioAuthToken,
		}),
		from: configs.TwilioWhatsAppFrom,
	}
}

func (s *WhatsAppService) Enabled() bool {
	return s.client != nil && s.from != ""
}

// SendMessage manda uma mensagem de texto para o telefone (E.164).
func (s *WhatsAppService) SendMessage(phone, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("whatsapp desativado")
	}
	if phone == "" {
		return fmt.Errorf("voluntário sem telefone")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.from)
	params.SetTo("whatsapp:" + phone)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio: %w", err)
	}
	return nil
}
