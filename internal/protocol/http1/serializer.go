package http1

import (
	"strconv"

	"github.com/indigo-web/docroot/http"
	"github.com/indigo-web/docroot/http/mime"
	"github.com/indigo-web/docroot/http/status"
	"github.com/indigo-web/docroot/internal/timer"
	"github.com/indigo-web/docroot/transport"
	"github.com/indigo-web/utils/strcomp"
)

const (
	crlf = "\r\n"
	// responses are always HTTP/1.1 regardless of what the request declared
	protocol = "HTTP/1.1 "
)

// ownHeaders are always emitted by the serializer. Same-named headers supplied by the
// caller are dropped, so the message never carries two conflicting values of them.
var ownHeaders = []string{"Date", "Server", "Content-Length", "Connection"}

// Serializer assembles the whole response in a single buffer and transmits it at once.
// Every response carries Connection: close, the connection is not reused.
type Serializer struct {
	client transport.Client
	server string
	buff   []byte
}

func NewSerializer(client transport.Client, server string, buff []byte) *Serializer {
	return &Serializer{
		client: client,
		server: server,
		buff:   buff,
	}
}

// Write serializes the response and writes it. For bodiless responses the body is
// dropped, but Content-Length still reports its length unless overridden explicitly.
func (s *Serializer) Write(response *http.Response, bodiless bool) error {
	fields := response.Expose()

	s.buff = append(s.buff[:0], protocol...)
	s.appendStatus(fields)
	s.appendKnownHeader("Date: ", timer.Date())
	s.appendKnownHeader("Server: ", s.server)
	s.appendContentLength(fields)
	s.appendKnownHeader("Connection: ", "close")

	for _, header := range fields.Headers {
		if !isOwnHeader(header.Key) {
			s.appendHeader(header)
		}
	}

	s.buff = append(s.buff, crlf...)

	if !bodiless {
		s.buff = append(s.buff, fields.Body...)
	}

	_, err := s.client.Write(s.buff)
	return err
}

// WriteError responds with a generated page describing the status the error carries.
// The error's text itself never makes it into the response.
func (s *Serializer) WriteError(err error, bodiless bool) error {
	code := status.CodeOf(err)
	text := status.Text(code)
	response := http.NewResponse().
		Code(code).
		ContentType(mime.HTMLUTF8).
		Bytes(ErrorPage(code, text))

	return s.Write(response, bodiless)
}

func (s *Serializer) appendStatus(fields http.Fields) {
	s.buff = append(s.buff, status.StringCode(fields.Code)...)
	s.buff = append(s.buff, ' ')

	statusText := fields.Status
	if len(statusText) == 0 {
		statusText = status.Text(fields.Code)
	}

	s.buff = append(s.buff, statusText...)
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) appendContentLength(fields http.Fields) {
	length := fields.ContentLength
	if length < 0 {
		length = len(fields.Body)
	}

	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(length), 10)
	s.buff = append(s.buff, crlf...)
}

// appendHeader writes a complete header field line.
func (s *Serializer) appendHeader(header http.Header) {
	s.buff = append(s.buff, header.Key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, header.Value...)
	s.buff = append(s.buff, crlf...)
}

// appendKnownHeader differs from appendHeader only by the fact that the key is known to already
// have a colon and a space included.
func (s *Serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.buff = append(s.buff, crlf...)
}

func isOwnHeader(key string) bool {
	for _, own := range ownHeaders {
		if strcomp.EqualFold(key, own) {
			return true
		}
	}

	return false
}
