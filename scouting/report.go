package scouting

import (
	"fmt"
	"sync"
)

// SelectionMode says where the current roster came from.
type SelectionMode string

const (
	ModeMatch  SelectionMode = "match"
	ModeManual SelectionMode = "manual"
)

// Report owns the derived row set and the one piece of mutable pipeline state:
// the current alliance selection. Snapshot is the single recomputation entry
// point; its result is memoized on the roster identity so repeated reads with
// an unchanged selection are free, and a selection change invalidates the cell
// before any reader can observe a mix of old and new data.
type Report struct {
	rules   ScoringRules
	derived []DerivedRow

	// Event-wide aggregates never change after load.
	allTeams []TeamAggregate

	mu          sync.Mutex
	selected    bool
	mode        SelectionMode
	matchNumber int // 0 in manual mode
	roster      Roster
	cacheKey    string
	snap        *Snapshot
}

// NewReport derives every stored row once and returns a report with no
// selection.
func NewReport(store *Store, rules ScoringRules) *Report {
	derived := DeriveAll(store.Rows(), rules)
	return &Report{
		rules:    rules,
		derived:  derived,
		allTeams: AggregateAll(derived),
	}
}

// SelectMatch switches the report to the lineup of a qualification match.
func (r *Report) SelectMatch(feed MatchFeed, matchNumber int) error {
	roster, err := RosterFromMatch(feed, matchNumber)
	if err != nil {
		return err
	}
	r.setSelection(ModeMatch, matchNumber, roster)
	return nil
}

// SelectTeams switches the report to six manually chosen teams.
func (r *Report) SelectTeams(red, blue [3]string) error {
	roster, err := ManualRoster(red, blue)
	if err != nil {
		return err
	}
	r.setSelection(ModeManual, 0, roster)
	return nil
}

func (r *Report) setSelection(mode SelectionMode, matchNumber int, roster Roster) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = true
	r.mode = mode
	r.matchNumber = matchNumber
	r.roster = roster

	// Invalidate the memoized snapshot only when the roster identity
	// actually changed, so re-picking the same match stays cached.
	if key := selectionKey(mode, roster); key != r.cacheKey {
		r.cacheKey = key
		r.snap = nil
	}
}

func selectionKey(mode SelectionMode, roster Roster) string {
	return fmt.Sprintf("%s|%s", mode, roster.cacheKey())
}

// Snapshot returns the roster-scoped aggregation for the current selection,
// recomputing only when the selection changed since the last call. Every
// consumer of any roster-dependent view must go through here.
func (r *Report) Snapshot() (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.selected {
		return nil, ErrNoSelection
	}
	if r.snap == nil {
		r.snap = buildView(r.roster, r.derived, r.rules)
	}
	return r.snap, nil
}

// Selection reports the current mode, match number (0 in manual mode), and
// roster. ok is false before the first selection.
func (r *Report) Selection() (mode SelectionMode, matchNumber int, roster Roster, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode, r.matchNumber, r.roster, r.selected
}

// AllTeams returns the event-wide per-team aggregates, independent of any
// roster selection.
func (r *Report) AllTeams() []TeamAggregate {
	return r.allTeams
}

// Rules returns the scoring rules the report derives with.
func (r *Report) Rules() ScoringRules {
	return r.rules
}
