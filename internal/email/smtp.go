// internal/email/smtp.go
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

func (s *Service) sendSMTP(msg Message, htmlBody, textBody string) error {
	cfg := s.cfg.SMTP
	boundary := fmt.Sprintf("dwellfix-alt-%d", time.Now().UnixNano())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", msg.FromName, msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	writePart(&buf, boundary, "text/plain", textBody)
	writePart(&buf, boundary, "text/html", htmlBody)
	fmt.Fprintf(&buf, "--%s--", boundary)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, buf.Bytes()); err != nil {
		return fmt.Errorf("sending via smtp %s: %w", addr, err)
	}
	return nil
}

func writePart(buf *bytes.Buffer, boundary, contentType, body string) {
	fmt.Fprintf(buf, "--%s\r\n", boundary)
	fmt.Fprintf(buf, "Content-Type: %s; charset=utf-8\r\n", contentType)
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	buf.WriteString(base64.StdEncoding.EncodeToString([]byte(body)))
	buf.WriteString("\r\n\r\n")
}
