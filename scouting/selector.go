package scouting

import (
	"errors"
	"strings"
)

// MatchFeed resolves a qualification match number to its alliance lineup. The
// feed filters out elimination matches; a number that matches zero or multiple
// qualification records fails with *MatchNotFoundError.
type MatchFeed interface {
	GetMatch(matchNumber int) (MatchRecord, error)
}

// RosterFromMatch builds the roster for an upcoming match, stripping the
// feed's "frc" prefix from team keys ("frc254" -> "254").
func RosterFromMatch(feed MatchFeed, matchNumber int) (Roster, error) {
	m, err := feed.GetMatch(matchNumber)
	if err != nil {
		return Roster{}, err
	}

	var red, blue [3]string
	for i := range m.RedTeams {
		red[i] = stripTeamKey(m.RedTeams[i])
		blue[i] = stripTeamKey(m.BlueTeams[i])
	}
	return newRoster(red, blue)
}

// ManualRoster builds a roster from six independently chosen team keys. Fails
// with *DuplicateTeamError if any key repeats across the six slots.
func ManualRoster(red, blue [3]string) (Roster, error) {
	return newRoster(red, blue)
}

func newRoster(red, blue [3]string) (Roster, error) {
	seen := make(map[string]bool, 6)
	for _, t := range append(red[:], blue[:]...) {
		if t == "" {
			return Roster{}, errors.New("roster slot is empty")
		}
		if seen[t] {
			return Roster{}, &DuplicateTeamError{TeamKey: t}
		}
		seen[t] = true
	}
	return Roster{Red: red, Blue: blue}, nil
}

func stripTeamKey(tk string) string {
	return strings.TrimPrefix(tk, "frc")
}
