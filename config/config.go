package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"
)

var (
	ErrBadPort  = errors.New("port must be in range 1-65535")
	ErrNoRoot   = errors.New("document root is not set")
	ErrBadLimit = errors.New("network limits must be positive")
)

type NET struct {
	// ReadBufferSize is a size of buffer in bytes which will be used to read from
	// socket.
	ReadBufferSize int
	// ReadTimeout bounds every single read while receiving the request head. When it
	// elapses, whatever was received so far is processed.
	ReadTimeout time.Duration
	// MaxRequestSize is the hard cap on the request head. Reading stops as soon as
	// it is reached, terminator or not.
	MaxRequestSize int
	// Backlog is the length of the kernel queue of pending connections.
	Backlog int
	// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
	// in order to check whether it's time to stop.
	AcceptLoopInterruptPeriod time.Duration
}

// Config is built once at startup and must not be modified after it was passed
// to the application. All the connection handlers share it by pointer.
type Config struct {
	Host string
	Port int
	// Root is the document root. Call Normalize in order to make it absolute.
	Root string
	// Server is the value of the Server response header.
	Server string
	NET    NET
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   8080,
		Root:   "./www",
		Server: "docroot",
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               2 * time.Second,
			MaxRequestSize:            64 * 1024,
			Backlog:                   128,
			AcceptLoopInterruptPeriod: 500 * time.Millisecond,
		},
	}
}

// Validate reports the first found misconfiguration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrBadPort, c.Port)
	}

	if len(c.Root) == 0 {
		return ErrNoRoot
	}

	if c.NET.ReadBufferSize <= 0 || c.NET.MaxRequestSize <= 0 || c.NET.Backlog <= 0 ||
		c.NET.ReadTimeout <= 0 || c.NET.AcceptLoopInterruptPeriod <= 0 {
		return ErrBadLimit
	}

	return nil
}

// Normalize makes the document root absolute and lexically clean.
func (c *Config) Normalize() error {
	root, err := filepath.Abs(filepath.Clean(c.Root))
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}

	c.Root = root
	return nil
}

// Addr returns the address to bind to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
