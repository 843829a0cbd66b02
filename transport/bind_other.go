//go:build !linux

package transport

import (
	"context"
	"net"
)

// bindTCP relies on the runtime defaults here: SO_REUSEADDR is set by the standard
// library on unix systems and the backlog is chosen by the OS.
func bindTCP(addr string, _ int) (*net.TCPListener, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, err
	}

	return l.(*net.TCPListener), nil
}
