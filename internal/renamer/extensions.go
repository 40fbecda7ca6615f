package renamer

import (
	"strings"

	"golang.org/x/text/cases"

	"jellyname/internal/episodetag"
)

// DefaultVideoExtensions lists the container extensions renamed by default.
var DefaultVideoExtensions = []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"}

// ExtensionSet matches file names by their last extension, ignoring case.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from extensions with or without a leading dot.
// An empty input yields DefaultVideoExtensions.
func NewExtensionSet(extensions []string) ExtensionSet {
	if len(extensions) == 0 {
		extensions = DefaultVideoExtensions
	}
	set := make(ExtensionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[foldExtension(ext)] = struct{}{}
	}
	return set
}

// Match reports whether name ends in one of the set's extensions.
func (s ExtensionSet) Match(name string) bool {
	ext := episodetag.Extension(name)
	if ext == "" {
		return false
	}
	_, ok := s[foldExtension(ext)]
	return ok
}

func foldExtension(ext string) string {
	return cases.Fold().String(ext)
}
