package scouting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(t *testing.T) (*Report, *fakeFeed) {
	t.Helper()

	rules := ReefscapeRules()
	var rows []ScoutingRow
	for _, team := range []string{"5743", "5750", "1783", "2955", "9895", "8219", "254"} {
		rows = append(rows,
			ScoutingRow{MatchNumber: 1, TeamKey: team, TeleopCoralL1: 1, EndgameStatus: Parked},
			ScoutingRow{MatchNumber: 2, TeamKey: team, TeleopCoralL1: 3, EndgameStatus: DeepCage},
		)
	}
	store, err := NewStore(rows, rules)
	require.NoError(t, err)

	feed := &fakeFeed{matches: map[int]MatchRecord{
		7: {
			MatchNumber: 7,
			RedTeams:    [3]string{"frc5743", "frc5750", "frc1783"},
			BlueTeams:   [3]string{"frc2955", "frc9895", "frc8219"},
		},
		8: {
			MatchNumber: 8,
			RedTeams:    [3]string{"frc254", "frc5750", "frc1783"},
			BlueTeams:   [3]string{"frc2955", "frc9895", "frc8219"},
		},
	}}
	return NewReport(store, rules), feed
}

func TestReportSnapshot(t *testing.T) {
	t.Run("no selection yet", func(t *testing.T) {
		rep, _ := testReport(t)
		_, err := rep.Snapshot()
		require.ErrorIs(t, err, ErrNoSelection)
	})

	t.Run("snapshot follows the selected match", func(t *testing.T) {
		rep, feed := testReport(t)
		require.NoError(t, rep.SelectMatch(feed, 7))

		snap, err := rep.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, []string{"5743", "5750", "1783", "2955", "9895", "8219"},
			snap.Roster.AllTeams())
		assert.Empty(t, snap.MissingTeams)

		mode, matchNumber, _, ok := rep.Selection()
		assert.True(t, ok)
		assert.Equal(t, ModeMatch, mode)
		assert.Equal(t, 7, matchNumber)
	})

	t.Run("unchanged selection returns the cached snapshot", func(t *testing.T) {
		rep, feed := testReport(t)
		require.NoError(t, rep.SelectMatch(feed, 7))

		first, err := rep.Snapshot()
		require.NoError(t, err)
		second, err := rep.Snapshot()
		require.NoError(t, err)
		assert.Same(t, first, second)

		// Re-picking the same match keeps the cache warm too.
		require.NoError(t, rep.SelectMatch(feed, 7))
		third, err := rep.Snapshot()
		require.NoError(t, err)
		assert.Same(t, first, third)
	})

	t.Run("selection change invalidates atomically", func(t *testing.T) {
		rep, feed := testReport(t)
		require.NoError(t, rep.SelectMatch(feed, 7))
		old, err := rep.Snapshot()
		require.NoError(t, err)

		require.NoError(t, rep.SelectMatch(feed, 8))
		fresh, err := rep.Snapshot()
		require.NoError(t, err)

		assert.NotSame(t, old, fresh)
		assert.Equal(t, "254", fresh.Roster.Red[0])
		assert.Equal(t, "254", fresh.Aggregates[0].TeamKey,
			"every view in the new snapshot reflects the new roster")
		assert.Equal(t, "254", fresh.TotalBox[0].TeamKey)
	})

	t.Run("manual selection", func(t *testing.T) {
		rep, _ := testReport(t)
		require.NoError(t, rep.SelectTeams(
			[3]string{"254", "5750", "1783"},
			[3]string{"2955", "9895", "8219"},
		))

		snap, err := rep.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, "254", snap.Roster.Red[0])

		mode, matchNumber, _, ok := rep.Selection()
		assert.True(t, ok)
		assert.Equal(t, ModeManual, mode)
		assert.Zero(t, matchNumber)
	})

	t.Run("same six teams in a different mode recompute", func(t *testing.T) {
		rep, feed := testReport(t)
		require.NoError(t, rep.SelectMatch(feed, 7))
		matchSnap, err := rep.Snapshot()
		require.NoError(t, err)

		require.NoError(t, rep.SelectTeams(
			[3]string{"5743", "5750", "1783"},
			[3]string{"2955", "9895", "8219"},
		))
		manualSnap, err := rep.Snapshot()
		require.NoError(t, err)

		assert.NotSame(t, matchSnap, manualSnap)
		assert.Equal(t, matchSnap.Roster, manualSnap.Roster)
	})

	t.Run("failed selection leaves state untouched", func(t *testing.T) {
		rep, feed := testReport(t)
		require.NoError(t, rep.SelectMatch(feed, 7))

		var notFound *MatchNotFoundError
		err := rep.SelectMatch(feed, 99)
		require.ErrorAs(t, err, &notFound)

		var dup *DuplicateTeamError
		err = rep.SelectTeams([3]string{"1", "1", "3"}, [3]string{"4", "5", "6"})
		require.ErrorAs(t, err, &dup)

		snap, err := rep.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, 7, func() int { _, n, _, _ := rep.Selection(); return n }())
		assert.Equal(t, "5743", snap.Roster.Red[0])
	})
}

func TestReportAllTeams(t *testing.T) {
	rep, _ := testReport(t)

	all := rep.AllTeams()

	require.Len(t, all, 7, "event-wide aggregate covers every scouted team")
	keys := make([]string, len(all))
	for i, a := range all {
		keys[i] = a.TeamKey
	}
	assert.Equal(t, []string{"1783", "254", "2955", "5743", "5750", "8219", "9895"}, keys)

	// Independent of any selection, before and after.
	require.NoError(t, rep.SelectTeams(
		[3]string{"5743", "5750", "1783"},
		[3]string{"2955", "9895", "8219"},
	))
	assert.Equal(t, all, rep.AllTeams())
}
