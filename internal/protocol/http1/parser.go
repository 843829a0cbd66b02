package http1

import (
	"strings"

	"github.com/indigo-web/docroot/http"
	"github.com/indigo-web/docroot/http/method"
	"github.com/indigo-web/docroot/http/proto"
	"github.com/indigo-web/docroot/http/status"
)

// ParseRequestLine recognizes the first line of the head. The line must consist of
// exactly three whitespace-separated tokens and name a supported protocol, otherwise
// it is a bad request. Only GET and HEAD are allowed.
func ParseRequestLine(head string) (http.Request, error) {
	line, _, _ := strings.Cut(head, "\r\n")
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return http.Request{}, status.ErrBadRequest
	}

	protocol := proto.Parse(tokens[2])
	if protocol&proto.HTTP1 == 0 {
		return http.Request{}, status.ErrUnsupportedProtocol
	}

	switch m := method.Parse(tokens[0]); m {
	case method.GET, method.HEAD:
		return http.Request{
			Method: m,
			Path:   tokens[1],
			Proto:  protocol,
		}, nil
	default:
		return http.Request{}, status.ErrMethodNotAllowed
	}
}
