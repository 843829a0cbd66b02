package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrUnsupportedProtocol = NewError(BadRequest, "protocol is not supported")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrForbidden           = NewError(Forbidden, "forbidden")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)

// CodeOf extracts the status code out of the error chain. Errors not carrying
// one are internal server errors.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}
