package renamer

import (
	"fmt"
	"os"
	"strings"
)

const (
	// MaxNameLength bounds a single path component in bytes.
	MaxNameLength = 255
	// MaxPathLength bounds every assembled path in bytes.
	MaxPathLength = 4096
)

// FileEntry is one directory member as seen during traversal.
type FileEntry struct {
	Name      string
	Path      string
	IsRegular bool
	IsDir     bool
}

// JoinEntryPath joins a directory and an entry name with exactly one
// separator, regardless of trailing separators on dir. Names or results that
// exceed the length bounds are rejected with ErrPathTooLong.
func JoinEntryPath(dir, name string) (string, error) {
	if len(name) > MaxNameLength {
		return "", wrap(ErrPathTooLong, "join", name, fmt.Errorf("name is %d bytes, limit %d", len(name), MaxNameLength))
	}
	if dir == "" {
		dir = "."
	}
	sep := string(os.PathSeparator)
	trimmed := strings.TrimRight(dir, sep)
	joined := trimmed + sep + name
	if len(joined) > MaxPathLength {
		return "", wrap(ErrPathTooLong, "join", joined[:64]+"...", fmt.Errorf("path is %d bytes, limit %d", len(joined), MaxPathLength))
	}
	return joined, nil
}

// ValidatePattern rejects patterns that cannot be used verbatim as the prefix
// of a file name in the same directory.
func ValidatePattern(pattern string) error {
	switch {
	case strings.TrimSpace(pattern) == "":
		return wrap(ErrInvalidPattern, "validate", "", fmt.Errorf("pattern is empty"))
	case strings.ContainsRune(pattern, os.PathSeparator) || strings.ContainsRune(pattern, '/'):
		return wrap(ErrInvalidPattern, "validate", pattern, fmt.Errorf("pattern contains a path separator"))
	case strings.ContainsRune(pattern, 0):
		return wrap(ErrInvalidPattern, "validate", pattern, fmt.Errorf("pattern contains a NUL byte"))
	case len(pattern) > MaxNameLength:
		return wrap(ErrInvalidPattern, "validate", pattern[:32]+"...", fmt.Errorf("pattern exceeds %d bytes", MaxNameLength))
	}
	return nil
}
