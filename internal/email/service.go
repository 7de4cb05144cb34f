// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"

	dwellfix "github.com/dwellfix/dwellfix"
	"github.com/dwellfix/dwellfix/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

var templateFS = dwellfix.EmailFS

// Provider selects the outbound delivery mechanism.
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	templateRoot = "templates/emails"
)

// Message is one outbound email. Template names a directory under
// templates/emails holding an html.tmpl and plaintext.tmpl pair; Data is
// handed to both.
type Message struct {
	To       string
	From     string
	FromName string
	Subject  string
	Template string
	Data     any
}

// Service renders embedded templates and delivers through the configured
// provider. Construct it once at startup; template parsing failures are
// surfaced there rather than on the first send.
type Service struct {
	cfg       *config.Config
	provider  Provider
	sendgrid  *sendgrid.Client
	templates map[string]templatePair
}

type templatePair struct {
	html *template.Template
	text *template.Template
}

func NewService(cfg *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		cfg:       cfg,
		provider:  provider,
		templates: make(map[string]templatePair),
	}
	if provider == ProviderSendgrid {
		s.sendgrid = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	}

	entries, err := templateFS.ReadDir(templateRoot)
	if err != nil {
		return nil, fmt.Errorf("reading email templates: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		dir := templateRoot + "/" + name

		htmlTmpl, err := template.ParseFS(templateFS, dir+"/html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing email template %q: %w", name, err)
		}
		textTmpl, err := template.ParseFS(templateFS, dir+"/plaintext.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing email template %q: %w", name, err)
		}
		s.templates[name] = templatePair{html: htmlTmpl, text: textTmpl}
	}
	if len(s.templates) == 0 {
		return nil, fmt.Errorf("no email templates under %s", templateRoot)
	}

	return s, nil
}

// Send renders the message's template pair and delivers it. A blank From
// falls back to the provider's configured sender.
func (s *Service) Send(msg Message) error {
	htmlBody, textBody, err := s.render(msg.Template, msg.Data)
	if err != nil {
		return err
	}

	switch s.provider {
	case ProviderSendgrid:
		if msg.From == "" {
			msg.From = s.cfg.Sendgrid.From
		}
		return s.sendSendgrid(msg, htmlBody, textBody)
	case ProviderSMTP:
		if msg.From == "" {
			msg.From = s.cfg.SMTP.From
		}
		return s.sendSMTP(msg, htmlBody, textBody)
	default:
		return fmt.Errorf("unknown email provider %q", s.provider)
	}
}

func (s *Service) render(name string, data any) (string, string, error) {
	pair, ok := s.templates[name]
	if !ok {
		return "", "", fmt.Errorf("email template %q not loaded", name)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := pair.html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering email template %q: %w", name, err)
	}
	if err := pair.text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering email template %q: %w", name, err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}
