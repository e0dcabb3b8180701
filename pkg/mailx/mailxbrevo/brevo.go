// Package mailxbrevo implements mailx.Sender against the Brevo v3
// transactional email API.
package mailxbrevo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/mail"
	"time"

	"github.com/akirakitchen/backend/pkg/mailx"
)

const defaultEndpoint = "https://api.brevo.com/v3/smtp/email"

// Option customizes a Provider.
type Option func(*Provider)

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		if endpoint != "" {
			p.endpoint = endpoint
		}
	}
}

// WithHTTPClient swaps the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// Provider sends mail through Brevo's HTTPS API. One authenticated POST
// per SendEmail call, no retries.
type Provider struct {
	apiKey      string
	fromAddress string
	endpoint    string
	client      *http.Client
}

// NewProvider creates a Brevo email provider. fromAddress is the default
// sender identity used when the message carries none; it accepts a bare
// address or "Display Name <address>".
func NewProvider(apiKey, fromAddress string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:      apiKey,
		fromAddress: fromAddress,
		endpoint:    defaultEndpoint,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// address is one entry of the envelope's addressing block.
type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// envelope is Brevo's JSON send request: recipients grouped under one
// addressing block, a structured sender identity, and one HTML part.
type envelope struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent,omitempty"`
	TextContent string    `json:"textContent,omitempty"`
}

// SendEmail performs a single authenticated POST of the message. Any
// non-2xx status is a failure carrying the status code and response body.
func (p *Provider) SendEmail(ctx context.Context, msg mailx.Message) error {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}

	env := envelope{
		Sender:      parseSender(from),
		To:          make([]address, 0, len(msg.To)),
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
		TextContent: msg.TextBody,
	}
	for _, to := range msg.To {
		env.To = append(env.To, address{Email: to})
	}

	body, err := json.Marshal(env)
	if err != nil {
		return brevoErrors.NewWithCause(ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return brevoErrors.NewWithCause(ErrSendFailed, err)
	}
	req.Header.Set("api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return brevoErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return brevoErrors.New(ErrSendFailed).
			WithDetail("status", resp.StatusCode).
			WithDetail("body", string(respBody)).
			WithDetail("to", msg.To)
	}

	return nil
}

// parseSender splits "Display Name <address>" into Brevo's structured
// sender block, falling back to a bare address when parsing fails.
func parseSender(from string) address {
	if addr, err := mail.ParseAddress(from); err == nil {
		return address{Email: addr.Address, Name: addr.Name}
	}
	return address{Email: from}
}
