package main

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjreiniger/gos-scouting-report/scouting"
)

func testDB(t *testing.T) {
	t.Helper()

	var err error
	db, err = sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
    CREATE TABLE IF NOT EXISTS scout_rows (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      event_key TEXT,
      match_num INTEGER,
      team_number TEXT,
      auto_coral_l1 INTEGER, auto_coral_l2 INTEGER, auto_coral_l3 INTEGER, auto_coral_l4 INTEGER,
      auto_algae_net INTEGER, auto_algae_processor INTEGER,
      teleop_coral_l1 INTEGER, teleop_coral_l2 INTEGER, teleop_coral_l3 INTEGER, teleop_coral_l4 INTEGER,
      teleop_algae_net INTEGER, teleop_algae_processor INTEGER,
      end_position TEXT,
      created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );`)
	require.NoError(t, err)
}

func TestScoutRowsRoundTrip(t *testing.T) {
	testDB(t)
	rules := scouting.ReefscapeRules()

	rows := []scouting.ScoutingRow{
		{MatchNumber: 1, TeamKey: "4467", AutoCoralL4: 2, TeleopAlgaeNet: 1, EndgameStatus: scouting.DeepCage},
		{MatchNumber: 2, TeamKey: "254", TeleopCoralL1: 3, EndgameStatus: scouting.Parked},
	}
	require.NoError(t, replaceScoutRows("2025txwac", rows))

	store, err := loadScoutRows("2025txwac", rules)
	require.NoError(t, err)
	require.Equal(t, rows, store.Rows())

	t.Run("other events are untouched", func(t *testing.T) {
		other, err := loadScoutRows("2025paca", rules)
		require.NoError(t, err)
		assert.Empty(t, other.Rows())
	})

	t.Run("replace swaps, not appends", func(t *testing.T) {
		fresh := []scouting.ScoutingRow{
			{MatchNumber: 3, TeamKey: "148", EndgameStatus: scouting.NotParked},
		}
		require.NoError(t, replaceScoutRows("2025txwac", fresh))

		store, err := loadScoutRows("2025txwac", rules)
		require.NoError(t, err)
		require.Equal(t, fresh, store.Rows())
	})
}
