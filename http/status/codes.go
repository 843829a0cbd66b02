package status

import "strconv"

type (
	Code   uint16
	Status string
)

// Status codes the server is able to respond with.
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest       Code = 400 // RFC 9110, 15.5.1
	Forbidden        Code = 403 // RFC 9110, 15.5.4
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// KnownCodes lists every code Text has a reason phrase for.
var KnownCodes = []Code{
	OK, BadRequest, Forbidden, NotFound, MethodNotAllowed, InternalServerError,
}

// Text returns a reason phrase for the HTTP status code. Unknown codes
// produce a generic phrase.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
