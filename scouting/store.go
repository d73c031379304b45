package scouting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CSV header names as exported by the scouting app.
const (
	colMatchNumber = "Match Number"
	colTeamNumber  = "Team Number"
	colEndPosition = "End Position"
)

// counterColumns maps each counter header to its field setter, in export order.
var counterColumns = []struct {
	name string
	set  func(*ScoutingRow, int)
}{
	{"Coral L1 Auto", func(r *ScoutingRow, v int) { r.AutoCoralL1 = v }},
	{"Coral L2 Auto", func(r *ScoutingRow, v int) { r.AutoCoralL2 = v }},
	{"Coral L3 Auto", func(r *ScoutingRow, v int) { r.AutoCoralL3 = v }},
	{"Coral L4 Auto", func(r *ScoutingRow, v int) { r.AutoCoralL4 = v }},
	{"Algae in Net Auto", func(r *ScoutingRow, v int) { r.AutoAlgaeNet = v }},
	{"Algae in Processor Auto", func(r *ScoutingRow, v int) { r.AutoAlgaeProcessor = v }},
	{"Coral L1 Teleop", func(r *ScoutingRow, v int) { r.TeleopCoralL1 = v }},
	{"Coral L2 Teleop", func(r *ScoutingRow, v int) { r.TeleopCoralL2 = v }},
	{"Coral L3 Teleop", func(r *ScoutingRow, v int) { r.TeleopCoralL3 = v }},
	{"Coral L4 Teleop", func(r *ScoutingRow, v int) { r.TeleopCoralL4 = v }},
	{"Algae in Net Teleop", func(r *ScoutingRow, v int) { r.TeleopAlgaeNet = v }},
	{"Algae in Processor Teleop", func(r *ScoutingRow, v int) { r.TeleopAlgaeProcessor = v }},
}

// Store holds the immutable raw scouting rows for one event, one row per team
// per match. Read-only after load.
type Store struct {
	rows []ScoutingRow
}

// NewStore validates already-typed rows (counters non-negative, endgame status
// in the rule set) and wraps them in a read-only store.
func NewStore(rows []ScoutingRow, rules ScoringRules) (*Store, error) {
	for i, row := range rows {
		if err := validateRow(row, rules, i+1); err != nil {
			return nil, err
		}
	}
	return &Store{rows: rows}, nil
}

// LoadCSV reads the match-scouting export. It fails with an IngestError on a
// missing required column, a non-numeric or negative counter, or an endgame
// label outside the rule set.
func LoadCSV(r io.Reader, rules ScoringRules) (*Store, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &IngestError{Reason: fmt.Sprintf("reading header: %v", err)}
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	required := []string{colMatchNumber, colTeamNumber, colEndPosition}
	for _, c := range counterColumns {
		required = append(required, c.name)
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, &IngestError{Column: name, Reason: "required column missing"}
		}
	}

	var rows []ScoutingRow
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &IngestError{Line: line, Reason: err.Error()}
		}

		var row ScoutingRow
		row.MatchNumber, err = parseCounter(record[idx[colMatchNumber]])
		if err != nil {
			return nil, &IngestError{Line: line, Column: colMatchNumber, Reason: err.Error()}
		}
		row.TeamKey = record[idx[colTeamNumber]]
		for _, c := range counterColumns {
			v, err := parseCounter(record[idx[c.name]])
			if err != nil {
				return nil, &IngestError{Line: line, Column: c.name, Reason: err.Error()}
			}
			c.set(&row, v)
		}
		row.EndgameStatus = EndgameStatus(record[idx[colEndPosition]])

		if err := validateRow(row, rules, line); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &Store{rows: rows}, nil
}

func parseCounter(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative count: %d", v)
	}
	return v, nil
}

func validateRow(row ScoutingRow, rules ScoringRules, line int) error {
	if row.TeamKey == "" {
		return &IngestError{Line: line, Column: colTeamNumber, Reason: "empty team key"}
	}
	if row.MatchNumber < 0 {
		return &IngestError{Line: line, Column: colMatchNumber, Reason: "negative match number"}
	}
	for _, c := range []struct {
		name  string
		value int
	}{
		{"Coral L1 Auto", row.AutoCoralL1}, {"Coral L2 Auto", row.AutoCoralL2},
		{"Coral L3 Auto", row.AutoCoralL3}, {"Coral L4 Auto", row.AutoCoralL4},
		{"Algae in Net Auto", row.AutoAlgaeNet}, {"Algae in Processor Auto", row.AutoAlgaeProcessor},
		{"Coral L1 Teleop", row.TeleopCoralL1}, {"Coral L2 Teleop", row.TeleopCoralL2},
		{"Coral L3 Teleop", row.TeleopCoralL3}, {"Coral L4 Teleop", row.TeleopCoralL4},
		{"Algae in Net Teleop", row.TeleopAlgaeNet}, {"Algae in Processor Teleop", row.TeleopAlgaeProcessor},
	} {
		if c.value < 0 {
			return &IngestError{Line: line, Column: c.name, Reason: fmt.Sprintf("negative count: %d", c.value)}
		}
	}
	if _, ok := rules.EndgamePointsFor(row.EndgameStatus); !ok {
		return &IngestError{Line: line, Column: colEndPosition, Reason: fmt.Sprintf("unknown endgame status %q", row.EndgameStatus)}
	}
	return nil
}

// Rows returns every loaded row in load order.
func (s *Store) Rows() []ScoutingRow {
	return s.rows
}

// RowsForTeam returns every row scouted for one team, in load order.
func (s *Store) RowsForTeam(teamKey string) []ScoutingRow {
	var out []ScoutingRow
	for _, row := range s.rows {
		if row.TeamKey == teamKey {
			out = append(out, row)
		}
	}
	return out
}

// DistinctTeamKeys returns the sorted set of team keys present in the store.
func (s *Store) DistinctTeamKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, row := range s.rows {
		if !seen[row.TeamKey] {
			seen[row.TeamKey] = true
			keys = append(keys, row.TeamKey)
		}
	}
	sort.Strings(keys)
	return keys
}
