// Package docfs maps request targets onto files below the document root.
package docfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/docroot/http/mime"
	"github.com/indigo-web/docroot/http/status"
	"github.com/indigo-web/docroot/internal/pathlib"
	"github.com/indigo-web/docroot/internal/uridecode"
)

// IndexFile is served for every directory-style request.
const IndexFile = "index.html"

type Root struct {
	path string
}

// New returns a root at the path, made absolute and clean.
func New(path string) (Root, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return Root{}, fmt.Errorf("document root: %w", err)
	}

	return Root{path: abs}, nil
}

func (r Root) String() string {
	return r.path
}

// Target is a file, which is guaranteed to be a regular one lying under the root at
// the moment of resolution.
type Target struct {
	Path        string
	ContentType mime.MIME
}

// Resolve maps a raw request target onto a file. The query is discarded, escaped
// sequences are decoded and directories are resolved to their index file. Escaping the
// root results in status.ErrForbidden, a missing file or anything not being a regular
// file in status.ErrNotFound.
func (r Root) Resolve(rawPath string) (Target, error) {
	path, _, _ := strings.Cut(rawPath, "?")
	path = uridecode.DecodeString(path)
	path = strings.TrimPrefix(path, "/")
	if len(path) == 0 || strings.HasSuffix(path, "/") {
		path += IndexFile
	}

	target, err := filepath.Abs(pathlib.Join(r.path, path))
	if err != nil || !pathlib.Within(r.path, target) {
		return Target{}, status.ErrForbidden
	}

	// paths with NUL bytes or unreachable ones fail here as well, which is a 404
	// either way.
	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		return Target{}, status.ErrNotFound
	}

	return Target{
		Path:        target,
		ContentType: mime.ByPath(target),
	}, nil
}

// Read loads the whole file into memory.
func (t Target) Read() ([]byte, error) {
	content, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", status.ErrInternalServerError, err)
	}

	return content, nil
}
