package diagfmt

import (
	"path/filepath"
	"strings"

	"quasi/internal/source"
)

// displayPath formats the path of f according to mode. Virtual files
// ("<quote expansion>", stdin) keep their name in every mode.
func displayPath(f *source.File, mode PathMode, baseDir string) string {
	if f == nil {
		return "<unknown>"
	}
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if rel, ok := relativeTo(f.Path, baseDir); ok {
			return rel
		}
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAuto:
		if rel, ok := relativeTo(f.Path, baseDir); ok && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return f.Path
}

func relativeTo(path, base string) (string, bool) {
	if base == "" {
		return "", false
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
