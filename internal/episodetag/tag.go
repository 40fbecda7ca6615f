package episodetag

import (
	"fmt"
	"strings"
)

const (
	// MaxDigits is the longest digit run accepted after a marker letter.
	MaxDigits = 4
	// MaxValue is the largest season or episode number accepted.
	MaxValue = 9999
)

// Tag is a season/episode pair found inside a file name.
type Tag struct {
	Season    int
	Episode   int
	Extension string
}

// Label renders the tag as SxxEyy. Values are zero-padded to two digits and
// never truncated.
func (t Tag) Label() string {
	return fmt.Sprintf("S%02dE%02d", t.Season, t.Episode)
}

// Extract scans name for the first usable S<digits> and E<digits> markers.
// The markers may appear in either order. ok is false unless both were found.
func Extract(name string) (Tag, bool) {
	season, episode := -1, -1
	for i := 0; i < len(name) && (season < 0 || episode < 0); i++ {
		switch name[i] {
		case 'S':
			if season >= 0 {
				continue
			}
			if value, ok := digitRun(name[i+1:]); ok {
				season = value
			}
		case 'E':
			if episode >= 0 {
				continue
			}
			if value, ok := digitRun(name[i+1:]); ok {
				episode = value
			}
		}
	}
	if season < 0 || episode < 0 {
		return Tag{}, false
	}
	return Tag{Season: season, Episode: episode, Extension: Extension(name)}, true
}

// ExtractAfterPrefix behaves like Extract but ignores a leading "<pattern> "
// so names that are already canonical re-match to themselves even when the
// pattern contains marker-like text.
func ExtractAfterPrefix(name, pattern string) (Tag, bool) {
	if pattern != "" {
		if rest, found := strings.CutPrefix(name, pattern+" "); found {
			if tag, ok := Extract(rest); ok {
				return tag, true
			}
		}
	}
	return Extract(name)
}

// Extension returns the suffix starting at the last dot, or "" when the name
// has no dot.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return name[idx:]
}

// CanonicalName builds "<pattern> SxxEyy<ext>".
func CanonicalName(pattern string, tag Tag) string {
	return pattern + " " + tag.Label() + tag.Extension
}

// digitRun parses the maximal run of ASCII digits at the start of s.
func digitRun(s string) (int, bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n > MaxDigits {
		return 0, false
	}
	value := 0
	for i := 0; i < n; i++ {
		value = value*10 + int(s[i]-'0')
	}
	if value > MaxValue {
		return 0, false
	}
	return value, true
}
