package mailxsmtp_test

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/akirakitchen/backend/pkg/errx"
	"github.com/akirakitchen/backend/pkg/mailx"
	"github.com/akirakitchen/backend/pkg/mailx/mailxsmtp"
)

// scriptedServer is a plaintext SMTP server that answers the handshake and
// records every command line it receives.
type scriptedServer struct {
	ln         net.Listener
	extensions []string

	mu       sync.Mutex
	commands []string
}

func startScriptedServer(t *testing.T, extensions ...string) *scriptedServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &scriptedServer{ln: ln, extensions: extensions}
	go s.serve()
	t.Cleanup(func() { _ = ln.Close() })
	return s
}

func (s *scriptedServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *scriptedServer) handle(conn net.Conn) {
	defer conn.Close()
	_, _ = conn.Write([]byte("220 mail.test ESMTP\r\n"))

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		s.mu.Lock()
		s.commands = append(s.commands, line)
		s.mu.Unlock()

		verb := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(verb, "EHLO"), strings.HasPrefix(verb, "HELO"):
			reply := "250-mail.test\r\n"
			for _, ext := range s.extensions {
				reply += "250-" + ext + "\r\n"
			}
			reply += "250 SIZE 35882577\r\n"
			_, _ = conn.Write([]byte(reply))
		case strings.HasPrefix(verb, "QUIT"):
			_, _ = conn.Write([]byte("221 bye\r\n"))
			return
		default:
			_, _ = conn.Write([]byte("250 OK\r\n"))
		}
	}
}

func (s *scriptedServer) port(t *testing.T) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(s.ln.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return port
}

func (s *scriptedServer) received(prefix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cmd := range s.commands {
		if strings.HasPrefix(strings.ToUpper(cmd), prefix) {
			return true
		}
	}
	return false
}

func TestSendEmail_RefusesAuthWithoutSTARTTLS(t *testing.T) {
	srv := startScriptedServer(t) // no STARTTLS advertised

	p := mailxsmtp.NewProvider(mailxsmtp.Config{
		Host:     "127.0.0.1",
		Port:     srv.port(t),
		Username: "user@akira.test",
		Password: "secret",
		From:     "noreply@akira.test",
	})
	defer p.Close()

	err := p.SendEmail(context.Background(), mailx.Message{
		To:      []string{"guest@example.com"},
		Subject: "Hello",
	})
	if err == nil {
		t.Fatal("expected the send to fail when STARTTLS is unavailable")
	}

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if e.Code != "MAILX_SMTP_STARTTLS" {
		t.Fatalf("expected STARTTLS error, got %s", e.Code)
	}
	if srv.received("AUTH") {
		t.Fatal("credentials were sent over a cleartext connection")
	}
}

func TestVerify_ReportsSTARTTLSRefusal(t *testing.T) {
	srv := startScriptedServer(t)

	p := mailxsmtp.NewProvider(mailxsmtp.Config{
		Host:     "127.0.0.1",
		Port:     srv.port(t),
		Username: "user@akira.test",
		Password: "secret",
		From:     "noreply@akira.test",
	})
	defer p.Close()

	if err := p.Verify(context.Background()); err == nil {
		t.Fatal("expected verification to fail against a cleartext-only server")
	}
}

func TestSendEmail_ConnectFailure(t *testing.T) {
	// Reserve a port, then close the listener so nothing answers.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	_ = ln.Close()

	p := mailxsmtp.NewProvider(mailxsmtp.Config{
		Host: "127.0.0.1",
		Port: port,
		From: "noreply@akira.test",
	})
	defer p.Close()

	err = p.SendEmail(context.Background(), mailx.Message{
		To:      []string{"guest@example.com"},
		Subject: "Hello",
	})
	if err == nil {
		t.Fatal("expected a connect error")
	}

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if e.Code != "MAILX_SMTP_CONNECT" {
		t.Fatalf("expected connect error, got %s", e.Code)
	}
}
