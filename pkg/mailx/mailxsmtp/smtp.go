// Package mailxsmtp implements mailx.Sender over authenticated SMTP
// submission. The security mode is derived from the configured port: 465
// means implicit TLS from the first byte, anything else (canonically 587)
// means the connection starts in cleartext and must upgrade via STARTTLS
// before authentication. The provider refuses to authenticate if the
// upgrade is unavailable or fails.
package mailxsmtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/akirakitchen/backend/pkg/mailx"
)

const (
	connectTimeout  = 15 * time.Second
	greetingTimeout = 10 * time.Second
	socketTimeout   = 20 * time.Second

	implicitTLSPort = 465
	poolSize        = 4
)

// Config holds the SMTP submission parameters.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the default sender identity, a bare address or
	// "Display Name <address>".
	From string
}

// Option customizes a Provider.
type Option func(*Provider)

// WithTLSConfig overrides the TLS configuration used for both implicit
// TLS and the STARTTLS upgrade. Used in tests.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(p *Provider) {
		if cfg != nil {
			p.tlsConfig = cfg
		}
	}
}

// WithHelloName customizes the EHLO identity presented to the server.
func WithHelloName(name string) Option {
	return func(p *Provider) {
		if name != "" {
			p.helloName = name
		}
	}
}

// Provider sends mail over SMTP, reusing authenticated sessions from a
// bounded pool. Exactly one delivery attempt per SendEmail call.
type Provider struct {
	cfg       Config
	auth      smtp.Auth
	tlsConfig *tls.Config
	helloName string
	pool      *sessionPool
}

// NewProvider creates an SMTP email provider.
func NewProvider(cfg Config, opts ...Option) *Provider {
	p := &Provider{
		cfg:       cfg,
		helloName: "localhost",
		pool:      newSessionPool(poolSize),
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
	}
	if cfg.Username != "" {
		p.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SendEmail delivers the message through one pooled SMTP session.
func (p *Provider) SendEmail(ctx context.Context, msg mailx.Message) error {
	from := msg.From
	if from == "" {
		from = p.cfg.From
	}

	envelopeFrom, err := bareAddress(from)
	if err != nil {
		return smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("reason", "invalid from address")
	}

	message := buildMessage(from, msg)

	s, err := p.pool.acquire(ctx, p.dial)
	if err != nil {
		return err
	}

	if err := deliver(s.client, envelopeFrom, msg.To, message); err != nil {
		p.pool.release(s, false)
		return smtpErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}

	p.pool.release(s, true)
	return nil
}

// Verify performs one diagnostic handshake: dial, greet, authenticate,
// quit. Its outcome never gates later send attempts; the composition root
// fires it in the background purely for startup logging.
func (p *Provider) Verify(ctx context.Context) error {
	s, err := p.dial(ctx)
	if err != nil {
		return err
	}
	s.quit()
	return nil
}

// Close drains the idle session pool.
func (p *Provider) Close() {
	p.pool.drain()
}

// dial establishes one authenticated session, honoring the port-derived
// security mode and the per-stage timeouts.
func (p *Provider) dial(ctx context.Context) (*session, error) {
	addr := net.JoinHostPort(p.cfg.Host, strconv.Itoa(p.cfg.Port))
	dialer := &net.Dialer{Timeout: connectTimeout}

	var (
		conn net.Conn
		err  error
	)
	if p.cfg.Port == implicitTLSPort {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, p.tlsConfig)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, smtpErrors.NewWithCause(ErrConnect, err).WithDetail("addr", addr)
	}

	// The server greeting has its own, shorter deadline.
	_ = conn.SetDeadline(time.Now().Add(greetingTimeout))
	client, err := smtp.NewClient(conn, p.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, smtpErrors.NewWithCause(ErrGreeting, err).WithDetail("addr", addr)
	}
	_ = conn.SetDeadline(time.Now().Add(socketTimeout))

	if err := client.Hello(p.helloName); err != nil {
		_ = client.Close()
		return nil, smtpErrors.NewWithCause(ErrGreeting, err)
	}

	if p.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			_ = client.Close()
			return nil, smtpErrors.New(ErrStartTLS).WithDetail("reason", "server does not advertise STARTTLS")
		}
		if err := client.StartTLS(p.tlsConfig); err != nil {
			_ = client.Close()
			return nil, smtpErrors.NewWithCause(ErrStartTLS, err)
		}
	}

	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			_ = client.Close()
			return nil, smtpErrors.NewWithCause(ErrAuth, err)
		}
	}

	return &session{client: client, conn: conn}, nil
}

// deliver runs the MAIL/RCPT/DATA sequence on an established session.
func deliver(client *smtp.Client, from string, to []string, message []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		addr, err := bareAddress(rcpt)
		if err != nil {
			return err
		}
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// buildMessage assembles the RFC 5322 message for the DATA phase.
func buildMessage(from string, msg mailx.Message) []byte {
	body := msg.HTMLBody
	contentType := "text/html; charset=UTF-8"
	if body == "" {
		body = msg.TextBody
		contentType = "text/plain; charset=UTF-8"
	}

	var b bytes.Buffer
	writeHeader := func(key, value string) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	writeHeader("From", from)
	writeHeader("To", strings.Join(msg.To, ", "))
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", time.Now().UTC().Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)

	return b.Bytes()
}

// bareAddress extracts the plain address from a bare address or
// "Display Name <address>" for use in the SMTP envelope.
func bareAddress(s string) (string, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}
