package mime

import (
	"path/filepath"
	"strings"
)

var Extension = map[string]MIME{
	".avif":  AVIF,
	".css":   CSS,
	".csv":   CSV,
	".gif":   GIF,
	".htm":   HTML,
	".html":  HTML,
	".ico":   ICO,
	".jpeg":  JPEG,
	".jpg":   JPEG,
	".js":    JS,
	".mjs":   JS,
	".json":  JSON,
	".mp3":   MP3,
	".mp4":   MP4,
	".pdf":   PDF,
	".png":   PNG,
	".svg":   SVG,
	".txt":   Plain,
	".wasm":  WASM,
	".webm":  WEBM,
	".webp":  WEBP,
	".woff":  WOFF,
	".woff2": WOFF2,
	".xml":   XML,
	".yaml":  YAML,
	".yml":   YAML,
	".gz":    GZIP,
	".zip":   ZIP,
	".zst":   ZSTD,
}

// ByPath guesses the MIME by the file extension. The lookup is exact first and
// case-insensitive after that. Unknown extensions are OctetStream.
func ByPath(path string) MIME {
	ext := filepath.Ext(path)
	if len(ext) == 0 {
		return OctetStream
	}

	if m, found := Extension[ext]; found {
		return m
	}

	if m, found := Extension[strings.ToLower(ext)]; found {
		return m
	}

	return OctetStream
}
