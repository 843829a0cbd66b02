package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/docroot/config"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l       listener
	backlog int
	wg      *sync.WaitGroup
	stop    *atomic.Bool
}

func NewTCP(backlog int) *TCP {
	return &TCP{
		backlog: backlog,
		wg:      new(sync.WaitGroup),
		stop:    new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	l, err := bindTCP(addr, t.backlog)
	if err != nil {
		return err
	}

	t.l = l
	return nil
}

// Listen accepts connections until stopped. Every connection is served by cb in
// its own goroutine and closed as soon as cb returns, however it returns.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			switch {
			case t.stop.Load():
				return nil
			case errors.Is(err, os.ErrDeadlineExceeded):
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			defer func() {
				_ = conn.Close()
			}()

			cb(conn)
		}(conn)
	}

	return nil
}

func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

// Wait blocks until all the accepted connections are served.
func (t *TCP) Wait() {
	t.wg.Wait()
}
