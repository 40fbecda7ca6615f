package textutil

import (
	"strings"
	"unicode"
)

// SanitizeFileName turns name into a single safe path component for use as
// a naming pattern. Slashes, backslashes, colons and asterisks become dashes.
// ? " < > | and NUL are dropped. Whitespace runs, including any left behind by
// dropped characters, collapse to one space and the ends are trimmed.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSpace := false
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*':
			r = '-'
		case '?', '"', '<', '>', '|', 0:
			continue
		}
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizeToken converts a string to a lowercase token safe for lock and log
// file names. ASCII letters, digits, hyphens and underscores are kept; any
// other run of characters becomes a single underscore. Returns "unknown" when
// nothing usable remains.
func SanitizeToken(value string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	if out := strings.Trim(b.String(), "_-"); out != "" {
		return out
	}
	return "unknown"
}
