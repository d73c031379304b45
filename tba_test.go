package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjreiniger/gos-scouting-report/scouting"
)

func scheduleMatch(compLevel string, matchNumber int, red, blue []string) Match {
	m := Match{MatchNumber: matchNumber, CompLevel: compLevel}
	m.Alliances.Red.TeamKeys = red
	m.Alliances.Blue.TeamKeys = blue
	return m
}

func TestFilterQualMatches(t *testing.T) {
	matches := []Match{
		scheduleMatch("qm", 1, []string{"frc1", "frc2", "frc3"}, []string{"frc4", "frc5", "frc6"}),
		scheduleMatch("sf", 1, []string{"frc1", "frc2", "frc3"}, []string{"frc4", "frc5", "frc6"}),
		scheduleMatch("f", 1, []string{"frc1", "frc2", "frc3"}, []string{"frc4", "frc5", "frc6"}),
		scheduleMatch("qm", 2, []string{"frc7", "frc8", "frc9"}, []string{"frc10", "frc11", "frc12"}),
	}

	quals := filterQualMatches(matches)

	require.Len(t, quals, 2)
	for _, m := range quals {
		assert.Equal(t, "qm", m.CompLevel)
	}
}

func TestMatchRecordFor(t *testing.T) {
	quals := []Match{
		scheduleMatch("qm", 1, []string{"frc1", "frc2", "frc3"}, []string{"frc4", "frc5", "frc6"}),
		scheduleMatch("qm", 2, []string{"frc7", "frc8", "frc9"}, []string{"frc10", "frc11", "frc12"}),
	}

	t.Run("resolves a unique match", func(t *testing.T) {
		record, err := matchRecordFor(quals, 2)
		require.NoError(t, err)
		assert.Equal(t, [3]string{"frc7", "frc8", "frc9"}, record.RedTeams)
		assert.Equal(t, [3]string{"frc10", "frc11", "frc12"}, record.BlueTeams)
	})

	t.Run("missing match number", func(t *testing.T) {
		_, err := matchRecordFor(quals, 40)

		var notFound *scouting.MatchNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 40, notFound.MatchNumber)
		assert.Zero(t, notFound.Count)
	})

	t.Run("ambiguous match number", func(t *testing.T) {
		dup := append(quals,
			scheduleMatch("qm", 2, []string{"frc13", "frc14", "frc15"}, []string{"frc16", "frc17", "frc18"}))

		_, err := matchRecordFor(dup, 2)

		var notFound *scouting.MatchNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 2, notFound.Count)
	})

	t.Run("malformed lineup", func(t *testing.T) {
		bad := []Match{scheduleMatch("qm", 3, []string{"frc1"}, []string{"frc4", "frc5", "frc6"})}
		_, err := matchRecordFor(bad, 3)
		require.Error(t, err)
	})
}

func TestMatchFeedEndToEnd(t *testing.T) {
	// The feed output must round-trip into a roster with stripped prefixes.
	quals := []Match{
		scheduleMatch("qm", 5, []string{"frc5743", "frc5750", "frc1783"}, []string{"frc2955", "frc9895", "frc8219"}),
	}
	record, err := matchRecordFor(quals, 5)
	require.NoError(t, err)

	feed := staticFeed{record: record}
	roster, err := scouting.RosterFromMatch(feed, 5)
	require.NoError(t, err)
	assert.Equal(t, [3]string{"5743", "5750", "1783"}, roster.Red)
}

type staticFeed struct {
	record scouting.MatchRecord
}

func (f staticFeed) GetMatch(matchNumber int) (scouting.MatchRecord, error) {
	if matchNumber != f.record.MatchNumber {
		return scouting.MatchRecord{}, &scouting.MatchNotFoundError{MatchNumber: matchNumber}
	}
	return f.record, nil
}
