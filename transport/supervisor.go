package transport

import (
	"net"
	"sync/atomic"

	"github.com/indigo-web/docroot/config"
)

type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}

// Supervisor runs bound transports and stops all of them as soon as either one fails
// or Stop is called.
type Supervisor struct {
	stopped *atomic.Bool
	ts      []boundTransport
	stopch  chan struct{}
	done    chan struct{}
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopped: new(atomic.Bool),
		stopch:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Addrs returns the addresses of all the bound transports.
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(s.ts))
	for _, t := range s.ts {
		addrs = append(addrs, t.t.Addr())
	}

	return addrs
}

// Run blocks until all the transports are stopped. In-flight connections are
// waited for before returning. Must be called once.
func (s *Supervisor) Run(cfg config.NET) error {
	defer close(s.done)

	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport, ch chan<- error) {
			errch <- t.t.Listen(cfg, t.cb)
		}(t, errch)
	}

	select {
	case err := <-errch:
		s.stop()
		drain(errch, len(s.ts)-1)
		s.wait()

		return err
	case <-s.stopch:
		s.stop()
		drain(errch, len(s.ts))
		s.wait()
		s.stopch <- struct{}{}

		return nil
	}
}

// Stop blocks until Run returns. Returns immediately if Run has already returned, but
// blocks until it is started otherwise.
func (s *Supervisor) Stop() {
	select {
	case s.stopch <- struct{}{}:
		<-s.stopch
	case <-s.done:
	}
}

func (s *Supervisor) stop() {
	if s.stopped.Load() {
		return
	}

	s.stopped.Store(true)

	for _, t := range s.ts {
		t.t.Stop()
		t.t.Close()
	}
}

func (s *Supervisor) wait() {
	for _, t := range s.ts {
		t.t.Wait()
	}
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
