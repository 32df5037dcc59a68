package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath turns a knowledge base location into a local path. It
// accepts file:// URIs and a leading ~/ for the home directory; anything
// else is cleaned and returned as is.
func ResolvePath(location string) string {
	p := strings.TrimPrefix(location, "file://")
	if p == "" {
		return p
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return filepath.Clean(p)
}
