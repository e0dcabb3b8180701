package mailxsmtp

import (
	"context"
	"net"
	"net/smtp"
	"time"
)

// session is one authenticated SMTP submission. It keeps the raw
// connection so deadlines can be re-armed when the session is reused.
type session struct {
	client *smtp.Client
	conn   net.Conn
}

func (s *session) close() {
	_ = s.client.Close()
}

func (s *session) quit() {
	_ = s.client.Quit()
	_ = s.client.Close()
}

// sessionPool bounds the number of simultaneous SMTP connections and keeps
// finished sessions around for reuse. The cap is a fixed small constant;
// the pool is safe for concurrent use.
type sessionPool struct {
	slots chan struct{}
	idle  chan *session
}

func newSessionPool(size int) *sessionPool {
	return &sessionPool{
		slots: make(chan struct{}, size),
		idle:  make(chan *session, size),
	}
}

// acquire reserves a connection slot and returns a ready session,
// preferring a healthy idle one over dialing anew.
func (p *sessionPool) acquire(ctx context.Context, dial func(context.Context) (*session, error)) (*session, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	for {
		select {
		case s := <-p.idle:
			_ = s.conn.SetDeadline(time.Now().Add(socketTimeout))
			if s.client.Noop() == nil {
				return s, nil
			}
			s.close()
		default:
			s, err := dial(ctx)
			if err != nil {
				<-p.slots
				return nil, err
			}
			return s, nil
		}
	}
}

// release frees the connection slot, parking a healthy session for reuse
// and discarding everything else.
func (p *sessionPool) release(s *session, healthy bool) {
	if healthy {
		select {
		case p.idle <- s:
			s = nil
		default:
		}
	}
	if s != nil {
		s.quit()
	}
	<-p.slots
}

// drain closes every idle session. Called on shutdown.
func (p *sessionPool) drain() {
	for {
		select {
		case s := <-p.idle:
			s.quit()
		default:
			return
		}
	}
}
