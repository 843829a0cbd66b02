package dummy

import (
	"io"
	"net"
	"os"

	"github.com/indigo-web/docroot/transport"
)

var _ transport.Client = new(Client)

// Client returns the data it was initialised with, piece by piece, and io.EOF after
// that, unless set to loop or to time out. It also tracks all the written data, making
// it thereby a universal mock suitable for most of the tests.
type Client struct {
	closed     bool
	loop       bool
	timeout    bool
	journaling bool
	failWrites bool
	pointer    int
	reads      int
	written    []byte
	data       [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		journaling: true,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	c.reads++

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			if c.timeout {
				return nil, os.ErrDeadlineExceeded
			}

			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.failWrites {
		return 0, io.ErrClosedPipe
	}

	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client to start over once the data is exhausted.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// TimeoutAfter makes the client to report a read timeout instead of io.EOF once the
// data is exhausted.
func (c *Client) TimeoutAfter() *Client {
	c.timeout = true
	return c
}

// BrokenPipe makes all the writes fail.
func (c *Client) BrokenPipe() *Client {
	c.failWrites = true
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

// Reads returns how many times Read was called.
func (c *Client) Reads() int {
	return c.reads
}

func (c *Client) Closed() bool {
	return c.closed
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}
