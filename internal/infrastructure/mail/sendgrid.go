// Package mail implements the outbound email sender on SendGrid.
package mail

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Config carries the SendGrid settings.
type Config struct {
	APIKey      string
	FromName    string
	FromAddress string
}

// SendgridMailer sends transactional email through the SendGrid v3 API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendgridMailer(cfg Config) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

// SendEmail delivers one HTML message. A plain-text part is derived from
// the HTML because SendGrid rejects empty content parts. Any 2xx status is
// accepted; anything else is reported as a provider failure.
func (m *SendgridMailer) SendEmail(ctx context.Context, to, subject, html string) error {
	msg := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), plainText(html), html)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: unexpected status %d", resp.StatusCode)
	}
	return nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func plainText(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	return strings.Join(strings.Fields(text), " ")
}
