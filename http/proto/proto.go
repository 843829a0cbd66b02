package proto

type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11

	HTTP1 = HTTP10 | HTTP11
)

func (p Proto) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

// Parse recognizes only the exact version tokens. Anything else, including
// lowercase schemes and other major versions, is Unknown.
func Parse(token string) Proto {
	switch token {
	case "HTTP/1.0":
		return HTTP10
	case "HTTP/1.1":
		return HTTP11
	default:
		return Unknown
	}
}
