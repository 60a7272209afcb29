package utils

import (
	"path/filepath"
	"strings"
)

// SanitizePath makes an archive entry name safe to join below an
// extraction root. Traversal segments, drive letters and leading slashes
// are removed; both slash styles are accepted.
func SanitizePath(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")

	// Drive letters are only recognised by filepath on Windows.
	if len(p) >= 2 && p[1] == ':' && isLetter(p[0]) {
		p = p[2:]
	}

	// Rooting the path first lets Clean drop every leading "..".
	p = filepath.ToSlash(filepath.Clean("/" + p))
	p = strings.TrimPrefix(p, "/")

	if p == "" || p == "." {
		return "."
	}
	return filepath.FromSlash(p)
}

// SanitizeName turns a display name into a single portable directory name.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), " .")
	if out == "" {
		return "game"
	}
	return out
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
