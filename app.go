package docroot

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/indigo-web/docroot/config"
	"github.com/indigo-web/docroot/http/serve"
	"github.com/indigo-web/docroot/internal/docfs"
	"github.com/indigo-web/docroot/transport"
)

// App serves the files of a single document root.
type App struct {
	cfg   *config.Config
	root  docfs.Root
	hooks hooks
	sup   transport.Supervisor
	bound bool
	// Logger receives the startup and shutdown lines as well as per-connection faults.
	// Defaults to the standard stderr logger.
	Logger *log.Logger
}

// New validates the config and returns a new App instance. The config must not be
// modified afterward.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("docroot: %w", err)
	}

	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("docroot: %w", err)
	}

	root, err := docfs.New(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("docroot: %w", err)
	}

	return &App{
		cfg:    cfg,
		root:   root,
		sup:    transport.NewSupervisor(),
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}, nil
}

// NotifyOnStart calls the callback right before the accept loops are started. The
// listening socket is already bound by then, so connections are queued rather than
// refused.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the server is down. No new connections are
// accepted and all the in-flight ones are served by that moment.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Bind binds the listening socket. Serve calls it implicitly, so calling it first is
// only needed to learn the actual address before serving.
func (a *App) Bind() error {
	if a.bound {
		return nil
	}

	err := a.sup.Add(a.cfg.Addr(), transport.NewTCP(a.cfg.NET.Backlog), func(conn net.Conn) {
		serve.Static(a.cfg, a.root, conn, a.Logger)
	})
	if err != nil {
		return fmt.Errorf("docroot: bind %s: %w", a.cfg.Addr(), err)
	}

	a.bound = true
	return nil
}

// Addr returns the bound address or nil, if nothing is bound yet.
func (a *App) Addr() net.Addr {
	if addrs := a.sup.Addrs(); len(addrs) > 0 {
		return addrs[0]
	}

	return nil
}

// Serve binds (unless already bound) and blocks until Stop is called or accepting
// fails. In-flight connections are served before it returns.
func (a *App) Serve() error {
	if err := a.Bind(); err != nil {
		return err
	}

	a.Logger.Printf("serving HTTP on %s:%d from %s", a.cfg.Host, a.cfg.Port, a.root)
	callIfNotNil(a.hooks.OnStart)
	err := a.sup.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections and blocks until Serve returns.
func (a *App) Stop() {
	a.Logger.Printf("shutting down server")
	a.sup.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
