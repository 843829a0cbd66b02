package http

import (
	"github.com/indigo-web/docroot/http/method"
	"github.com/indigo-web/docroot/http/proto"
)

// Request is what was recognized in the request line. Everything past the request
// line is ignored.
type Request struct {
	Method method.Method
	// Path is the raw request target, exactly as it was sent by the client
	// (query and escaped sequences included.)
	Path  string
	Proto proto.Proto
}

// IsHead reports whether the response to the request must be bodiless.
func (r Request) IsHead() bool {
	return r.Method == method.HEAD
}
