package renamer

import "jellyname/internal/episodetag"

// Plan is a single proposed rename inside one directory.
type Plan struct {
	Source          string
	Destination     string
	SourceName      string
	DestinationName string
	Tag             episodetag.Tag
}

// Status describes what happened to a planned rename.
type Status string

const (
	StatusRenamed   Status = "renamed"
	StatusDeclined  Status = "declined"
	StatusUnchanged Status = "unchanged"
	StatusPlanned   Status = "planned"
	StatusFailed    Status = "failed"
)

// Outcome records the result for one matched file.
type Outcome struct {
	Plan   Plan
	Status Status
	Err    error
}

// Summary aggregates a traversal. Scanned counts regular files inspected;
// Matched counts the video files that carried a complete episode tag.
type Summary struct {
	Directories int
	Scanned     int
	Matched     int
	Renamed     int
	Declined    int
	Unchanged   int
	Planned     int
	Failed      int
	Skipped     int
	Outcomes    []Outcome
}

// Processed returns the number of files that produced a rename decision.
func (s Summary) Processed() int {
	return s.Matched
}

func (s *Summary) record(outcome Outcome) {
	switch outcome.Status {
	case StatusRenamed:
		s.Renamed++
	case StatusDeclined:
		s.Declined++
	case StatusUnchanged:
		s.Unchanged++
	case StatusPlanned:
		s.Planned++
	case StatusFailed:
		s.Failed++
	}
	s.Outcomes = append(s.Outcomes, outcome)
}
