package http

import (
	"github.com/indigo-web/docroot/http/mime"
	"github.com/indigo-web/docroot/http/status"
)

// preallocRespHeaders is enough for Content-Type and a couple of extras.
const preallocRespHeaders = 4

type Header struct {
	Key, Value string
}

// Fields is a read-only view of the response, consumed by the serializer.
type Fields struct {
	Code    status.Code
	Status  status.Status
	Headers []Header
	Body    []byte
	// ContentLength overrides the length of the body in the Content-Length header
	// if non-negative.
	ContentLength int
}

type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and no body.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:          status.OK,
			Status:        status.Text(status.OK),
			Headers:       make([]Header, 0, preallocRespHeaders),
			ContentLength: -1,
		},
	}
}

// Code sets a Response code and a corresponding status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	r.fields.Status = status.Text(code)
	return r
}

// ContentType sets the Content-Type header.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// Header appends header values to a key. Order is preserved and duplicates are
// allowed.
func (r *Response) Header(key string, values ...string) *Response {
	for i := range values {
		r.fields.Headers = append(r.fields.Headers, Header{
			Key:   key,
			Value: values[i],
		})
	}

	return r
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// ContentLength declares the body length explicitly. It is meant for bodiless
// responses (HEAD), where the client must learn the real size of the resource.
func (r *Response) ContentLength(n int) *Response {
	r.fields.ContentLength = n
	return r
}

// Expose gives access to the response fields.
func (r *Response) Expose() Fields {
	return r.fields
}
