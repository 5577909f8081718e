// Package mail delivers account emails.
package mail

import (
	"context"
	"fmt"
	netmail "net/mail"
	"net/http"
	"time"

	"eats/internal/core/ports"

	"github.com/mailgun/mailgun-go/v4"
)

const (
	senderName = "Eats"

	verifySubject  = "Verify Your Email"
	verifyTemplate = "verify-email"
)

// MailgunConfig holds the Mailgun sending domain and credentials. From is
// the sender address; a bare address is shown under the service name.
type MailgunConfig struct {
	BaseURL string
	Domain  string
	APIKey  string
	From    string
}

// MailgunMailer sends templated messages through the Mailgun API.
type MailgunMailer struct {
	mg   *mailgun.MailgunImpl
	from string
}

func NewMailgunMailer(config MailgunConfig, client *http.Client) *MailgunMailer {
	mg := mailgun.NewMailgun(config.Domain, config.APIKey)
	if config.BaseURL != "" {
		mg.SetAPIBase(config.BaseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	mg.SetClient(client)

	return &MailgunMailer{mg: mg, from: senderAddress(config.From)}
}

var _ ports.Mailer = (*MailgunMailer)(nil)

func (m *MailgunMailer) SendVerification(ctx context.Context, email, code string) error {
	return m.send(ctx, verifySubject, verifyTemplate, email, map[string]string{
		"code":     code,
		"username": email,
	})
}

func (m *MailgunMailer) send(ctx context.Context, subject, template, to string, vars map[string]string) error {
	message := m.mg.NewMessage(m.from, subject, "", to)
	message.SetTemplate(template)
	for key, value := range vars {
		if err := message.AddVariable(key, value); err != nil {
			return err
		}
	}

	if _, _, err := m.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun send %q: %w", template, err)
	}
	return nil
}

func senderAddress(from string) string {
	addr, err := netmail.ParseAddress(from)
	if err != nil {
		return from
	}
	if addr.Name == "" {
		addr.Name = senderName
	}
	return addr.String()
}

// ValidSender reports whether from is usable as a sender address.
func ValidSender(from string) bool {
	_, err := netmail.ParseAddress(from)
	return err == nil
}
