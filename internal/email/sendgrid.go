// internal/email/sendgrid.go
package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func (s *Service) sendSendgrid(msg Message, htmlBody, textBody string) error {
	single := mail.NewSingleEmail(
		mail.NewEmail(msg.FromName, msg.From),
		msg.Subject,
		mail.NewEmail("", msg.To),
		textBody,
		htmlBody,
	)

	resp, err := s.sendgrid.Send(single)
	if err != nil {
		return fmt.Errorf("sending via sendgrid: %w", err)
	}
	// The v3 mail send endpoint answers 202 on acceptance.
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid rejected the message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
