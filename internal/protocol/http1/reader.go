package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/docroot/config"
	"github.com/indigo-web/docroot/internal/buffer"
	"github.com/indigo-web/docroot/transport"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding/unicode"
)

var headTerminator = []byte("\r\n\r\n")

// ReadHead receives the request head. Reading stops as soon as the terminator is met,
// cfg.MaxRequestSize bytes are received, the peer closes the connection or a read
// fails (including timeouts); whatever was received by then is returned. Invalid UTF-8
// is replaced rather than rejected. An empty string means nothing was received.
func ReadHead(client transport.Client, cfg config.NET) string {
	buff := buffer.New(cfg.ReadBufferSize, cfg.MaxRequestSize)

	for !buff.Full() {
		data, err := client.Read()
		if len(data) > 0 {
			// the terminator might be split between two reads
			from := max(0, buff.Len()-len(headTerminator)+1)
			buff.Fill(data)

			if bytes.Contains(buff.Bytes()[from:], headTerminator) {
				break
			}
		}

		if err != nil || len(data) == 0 {
			break
		}
	}

	return decodeUTF8(buff.Bytes())
}

func decodeUTF8(b []byte) string {
	if utf8.Valid(b) {
		return uf.B2S(b)
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(uf.B2S(b), string(utf8.RuneError))
	}

	return uf.B2S(decoded)
}
