package http1

import (
	"github.com/indigo-web/docroot/http/status"
)

// ErrorPage renders a minimal self-contained HTML document for the status.
func ErrorPage(code status.Code, text status.Status) []byte {
	title := status.StringCode(code) + " " + string(text)

	page := make([]byte, 0, 256)
	page = append(page, `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>`...)
	page = append(page, title...)
	page = append(page, `</title></head>
<body><h1>`...)
	page = append(page, title...)
	page = append(page, `</h1><p>The requested resource could not be processed.</p></body></html>`...)

	return page
}
