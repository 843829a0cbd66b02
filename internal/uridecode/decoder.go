package uridecode

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/docroot/internal/hexconv"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding/unicode"
)

// Decode normalizes the URI by translating escaped characters into their
// true form. Malformed or truncated sequences are kept as is, so decoding never
// fails. The plus sign is not special in paths and is left untouched.
func Decode(src string, buff []byte) []byte {
	for i := strings.IndexByte(src, '%'); i != -1; i = strings.IndexByte(src, '%') {
		buff = append(buff, src[:i]...)

		if i+2 < len(src) {
			hi, okHi := hexconv.Parse(src[i+1])
			lo, okLo := hexconv.Parse(src[i+2])
			if okHi && okLo {
				buff = append(buff, hi<<4|lo)
				src = src[i+3:]
				continue
			}
		}

		buff = append(buff, '%')
		src = src[i+1:]
	}

	return append(buff, src...)
}

// DecodeString is Decode for the case when the result is needed as a string. Escaped
// bytes not forming valid UTF-8 are replaced by U+FFFD, so a name is always text.
func DecodeString(src string) string {
	if strings.IndexByte(src, '%') == -1 {
		return src
	}

	decoded := Decode(src, make([]byte, 0, len(src)))
	if !utf8.Valid(decoded) {
		if replaced, err := unicode.UTF8.NewDecoder().Bytes(decoded); err == nil {
			decoded = replaced
		}
	}

	return uf.B2S(decoded)
}
