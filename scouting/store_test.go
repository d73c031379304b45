package scouting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Match Number,Team Number," +
	"Coral L1 Auto,Coral L2 Auto,Coral L3 Auto,Coral L4 Auto," +
	"Algae in Net Auto,Algae in Processor Auto," +
	"Coral L1 Teleop,Coral L2 Teleop,Coral L3 Teleop,Coral L4 Teleop," +
	"Algae in Net Teleop,Algae in Processor Teleop," +
	"End Position"

func TestLoadCSV(t *testing.T) {
	rules := ReefscapeRules()

	t.Run("loads valid export", func(t *testing.T) {
		data := csvHeader + "\n" +
			"1,4467,1,0,0,2,1,0,3,0,0,1,0,2,DeepCage\n" +
			"2,4467,0,0,0,0,0,0,0,0,0,0,0,0,NotParked\n" +
			"1,254,0,1,0,0,0,0,2,2,0,0,1,0,Parked\n"

		store, err := LoadCSV(strings.NewReader(data), rules)
		require.NoError(t, err)

		rows := store.Rows()
		require.Len(t, rows, 3)
		assert.Equal(t, 1, rows[0].MatchNumber)
		assert.Equal(t, "4467", rows[0].TeamKey)
		assert.Equal(t, 2, rows[0].AutoCoralL4)
		assert.Equal(t, DeepCage, rows[0].EndgameStatus)

		assert.Len(t, store.RowsForTeam("4467"), 2)
		assert.Empty(t, store.RowsForTeam("9999"))
		assert.Equal(t, []string{"254", "4467"}, store.DistinctTeamKeys())
	})

	t.Run("missing column", func(t *testing.T) {
		data := "Match Number,Team Number\n1,4467\n"

		_, err := LoadCSV(strings.NewReader(data), rules)

		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
		assert.Equal(t, "required column missing", ingest.Reason)
	})

	t.Run("non-numeric counter", func(t *testing.T) {
		data := csvHeader + "\n" +
			"1,4467,lots,0,0,0,0,0,0,0,0,0,0,0,Parked\n"

		_, err := LoadCSV(strings.NewReader(data), rules)

		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
		assert.Equal(t, "Coral L1 Auto", ingest.Column)
		assert.Equal(t, 2, ingest.Line)
	})

	t.Run("negative counter", func(t *testing.T) {
		data := csvHeader + "\n" +
			"1,4467,0,0,0,0,0,-1,0,0,0,0,0,0,Parked\n"

		_, err := LoadCSV(strings.NewReader(data), rules)

		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
		assert.Equal(t, "Algae in Processor Auto", ingest.Column)
	})

	t.Run("unknown endgame label is rejected, not coerced", func(t *testing.T) {
		data := csvHeader + "\n" +
			"1,4467,0,0,0,0,0,0,0,0,0,0,0,0,Hanging\n"

		_, err := LoadCSV(strings.NewReader(data), rules)

		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
		assert.Equal(t, "End Position", ingest.Column)
		assert.Contains(t, ingest.Reason, "Hanging")
	})

	t.Run("duplicate team-match rows are kept", func(t *testing.T) {
		data := csvHeader + "\n" +
			"5,118,1,0,0,0,0,0,0,0,0,0,0,0,Parked\n" +
			"5,118,0,2,0,0,0,0,0,0,0,0,0,0,Parked\n"

		store, err := LoadCSV(strings.NewReader(data), rules)
		require.NoError(t, err)
		assert.Len(t, store.RowsForTeam("118"), 2, "re-scouts collapse at aggregation, not at load")
	})
}

func TestNewStore(t *testing.T) {
	rules := ReefscapeRules()

	t.Run("accepts valid rows", func(t *testing.T) {
		store, err := NewStore([]ScoutingRow{
			{MatchNumber: 1, TeamKey: "33", EndgameStatus: ShallowCage},
		}, rules)
		require.NoError(t, err)
		assert.Len(t, store.Rows(), 1)
	})

	t.Run("rejects empty team key", func(t *testing.T) {
		_, err := NewStore([]ScoutingRow{{MatchNumber: 1, EndgameStatus: Parked}}, rules)
		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
	})

	t.Run("rejects out-of-domain status", func(t *testing.T) {
		_, err := NewStore([]ScoutingRow{
			{MatchNumber: 1, TeamKey: "33", EndgameStatus: "Levitating"},
		}, rules)
		var ingest *IngestError
		require.ErrorAs(t, err, &ingest)
	})
}
