// Package mailer delivers outbound email through the Resend API.
package mailer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// DefaultTimeout bounds one delivery call when none is configured.
const DefaultTimeout = 10 * time.Second

// Message is one outbound email. Text is the plain-text alternative to HTML.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Mailer sends a Message and returns the provider's message ID.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Resend is a Mailer backed by the Resend email API.
type Resend struct {
	client  *resend.Client
	timeout time.Duration
}

// NewResend returns a Mailer authenticated with apiKey. A nil httpClient
// uses http.DefaultClient; a non-positive timeout falls back to DefaultTimeout.
func NewResend(apiKey string, httpClient *http.Client, timeout time.Duration) *Resend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resend{client: resend.NewCustomClient(httpClient, apiKey), timeout: timeout}
}

// Send implements Mailer. Any provider or transport error wraps
// domain.ErrDeliveryFailed.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("mailer.Resend.Send: %w: %w", domain.ErrDeliveryFailed, err)
	}
	return resp.Id, nil
}
