package pathlib

import (
	"path/filepath"
	"strings"
)

const parent = ".."

// Within reports whether target lies lexically inside root or is root itself. Both
// paths are expected to be absolute and clean. Any case where the relation cannot be
// computed, e.g. different volumes, is reported as not contained. Symlinks are not
// evaluated.
func Within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil || filepath.IsAbs(rel) {
		return false
	}

	return rel != parent && !strings.HasPrefix(rel, parent+string(filepath.Separator))
}

// Join appends the relative path to the base. Unlike filepath.Join, an absolute path
// overrides the base entirely, so a client asking for an absolute path can't sneak it
// in as a relative one and containment is judged on what was actually asked.
func Join(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}
