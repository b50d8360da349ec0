package fileutil

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowed reports whether r is in the restricted filename character set.
func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '_':
		return true
	}
	return false
}

// SanitizeName strips a client-supplied filename down to its base name and
// the restricted character set. Disallowed runes become underscores. An
// empty or fully-stripped name falls back to "upload".
func SanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}

	var sb strings.Builder
	for _, r := range base {
		if allowed(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	cleaned := strings.Trim(sb.String(), "._")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}

// UniqueName returns the sanitized filename prefixed with a random token so
// repeated uploads of the same file never collide in storage.
func UniqueName(name string) string {
	return uuid.NewString()[:8] + "_" + SanitizeName(name)
}
