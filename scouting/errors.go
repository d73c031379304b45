package scouting

import (
	"errors"
	"fmt"
)

// ErrNoSelection is returned by Report.Snapshot before any alliance has been
// selected.
var ErrNoSelection = errors.New("no alliance selected")

// IngestError reports a malformed scouting record. Loading is strict: an
// unknown endgame label or a bad counter rejects the load instead of being
// coerced, since silent coercion masks scouting-app bugs.
type IngestError struct {
	Line   int    // 1-based record line in the export, 0 if not applicable
	Column string // column the problem was found in, "" for structural problems
	Reason string
}

func (e *IngestError) Error() string {
	switch {
	case e.Line == 0 && e.Column == "":
		return fmt.Sprintf("scouting ingest: %s", e.Reason)
	case e.Line == 0:
		return fmt.Sprintf("scouting ingest: column %q: %s", e.Column, e.Reason)
	default:
		return fmt.Sprintf("scouting ingest: line %d, column %q: %s", e.Line, e.Column, e.Reason)
	}
}

// MatchNotFoundError reports a match-mode selection that resolved to zero or
// multiple qualification matches.
type MatchNotFoundError struct {
	MatchNumber int
	Count       int // how many matches carried the number
}

func (e *MatchNotFoundError) Error() string {
	if e.Count > 1 {
		return fmt.Sprintf("qualification match %d is ambiguous: %d records share the number", e.MatchNumber, e.Count)
	}
	return fmt.Sprintf("qualification match %d not found", e.MatchNumber)
}

// DuplicateTeamError reports a roster with the same team in two slots.
type DuplicateTeamError struct {
	TeamKey string
}

func (e *DuplicateTeamError) Error() string {
	return fmt.Sprintf("team %s appears in more than one roster slot", e.TeamKey)
}
