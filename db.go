package main

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pjreiniger/gos-scouting-report/scouting"

	_ "github.com/glebarez/go-sqlite"
)

var db *sql.DB

func initDB() {
	var err error

	// Check for Railway volume mount path
	if mountPath := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); mountPath != "" {
		dbPath := filepath.Join(mountPath, "gos_scouting.db")
		db, err = sql.Open("sqlite", dbPath)
	} else {
		// Local development
		db, err = sql.Open("sqlite", "./gos_scouting.db")
	}

	if err != nil {
		panic(err)
	}

	// Cached copy of the scoutradioz match-scouting export, so the dashboard
	// restarts without re-downloading.
	db.Exec(`
    CREATE TABLE IF NOT EXISTS scout_rows (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      event_key TEXT,
      match_num INTEGER,
      team_number TEXT,

      -- Auto fields
      auto_coral_l1 INTEGER,
      auto_coral_l2 INTEGER,
      auto_coral_l3 INTEGER,
      auto_coral_l4 INTEGER,
      auto_algae_net INTEGER,
      auto_algae_processor INTEGER,

      -- Teleop fields
      teleop_coral_l1 INTEGER,
      teleop_coral_l2 INTEGER,
      teleop_coral_l3 INTEGER,
      teleop_coral_l4 INTEGER,
      teleop_algae_net INTEGER,
      teleop_algae_processor INTEGER,

      end_position TEXT,
      created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `)
}

// replaceScoutRows swaps the cached export for an event with a fresh download.
func replaceScoutRows(eventKey string, rows []scouting.ScoutingRow) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scout_rows WHERE event_key = ?`, eventKey); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO scout_rows (event_key, match_num, team_number,
				auto_coral_l1, auto_coral_l2, auto_coral_l3, auto_coral_l4,
				auto_algae_net, auto_algae_processor,
				teleop_coral_l1, teleop_coral_l2, teleop_coral_l3, teleop_coral_l4,
				teleop_algae_net, teleop_algae_processor, end_position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			eventKey, r.MatchNumber, r.TeamKey,
			r.AutoCoralL1, r.AutoCoralL2, r.AutoCoralL3, r.AutoCoralL4,
			r.AutoAlgaeNet, r.AutoAlgaeProcessor,
			r.TeleopCoralL1, r.TeleopCoralL2, r.TeleopCoralL3, r.TeleopCoralL4,
			r.TeleopAlgaeNet, r.TeleopAlgaeProcessor, string(r.EndgameStatus))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// loadScoutRows reads the cached export back into a validated store.
func loadScoutRows(eventKey string, rules scouting.ScoringRules) (*scouting.Store, error) {
	dbRows, err := db.Query(`
		SELECT match_num, team_number,
			auto_coral_l1, auto_coral_l2, auto_coral_l3, auto_coral_l4,
			auto_algae_net, auto_algae_processor,
			teleop_coral_l1, teleop_coral_l2, teleop_coral_l3, teleop_coral_l4,
			teleop_algae_net, teleop_algae_processor, end_position
		FROM scout_rows WHERE event_key = ? ORDER BY id`, eventKey)
	if err != nil {
		return nil, err
	}
	defer dbRows.Close()

	var rows []scouting.ScoutingRow
	for dbRows.Next() {
		var r scouting.ScoutingRow
		var status string
		err := dbRows.Scan(&r.MatchNumber, &r.TeamKey,
			&r.AutoCoralL1, &r.AutoCoralL2, &r.AutoCoralL3, &r.AutoCoralL4,
			&r.AutoAlgaeNet, &r.AutoAlgaeProcessor,
			&r.TeleopCoralL1, &r.TeleopCoralL2, &r.TeleopCoralL3, &r.TeleopCoralL4,
			&r.TeleopAlgaeNet, &r.TeleopAlgaeProcessor, &status)
		if err != nil {
			return nil, err
		}
		r.EndgameStatus = scouting.EndgameStatus(status)
		rows = append(rows, r)
	}
	if err := dbRows.Err(); err != nil {
		return nil, err
	}

	return scouting.NewStore(rows, rules)
}
