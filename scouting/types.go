// Package scouting implements the match-scouting analytics pipeline: raw
// per-match scouting rows are validated on load, extended with derived scoring
// columns, and aggregated per team for the six-team alliance currently under
// analysis. The package is a library; it performs no I/O beyond reading the
// tabular export it is handed.
package scouting

import "strings"

// EndgameStatus is the robot's end-of-match position category.
type EndgameStatus string

const (
	NotParked   EndgameStatus = "NotParked"
	Parked      EndgameStatus = "Parked"
	ShallowCage EndgameStatus = "ShallowCage"
	DeepCage    EndgameStatus = "DeepCage"
)

// Alliance is the color of a three-team alliance.
type Alliance string

const (
	RedAlliance  Alliance = "red"
	BlueAlliance Alliance = "blue"
)

// ScoutingRow is one team's performance in one match as recorded by a scouter.
// Rows are immutable after load. (MatchNumber, TeamKey) is not unique: a match
// may be re-scouted, and aggregation averages the duplicates.
type ScoutingRow struct {
	MatchNumber int    `json:"match_number"`
	TeamKey     string `json:"team_key"`

	AutoCoralL1        int `json:"auto_coral_l1"`
	AutoCoralL2        int `json:"auto_coral_l2"`
	AutoCoralL3        int `json:"auto_coral_l3"`
	AutoCoralL4        int `json:"auto_coral_l4"`
	AutoAlgaeNet       int `json:"auto_algae_net"`
	AutoAlgaeProcessor int `json:"auto_algae_processor"`

	TeleopCoralL1        int `json:"teleop_coral_l1"`
	TeleopCoralL2        int `json:"teleop_coral_l2"`
	TeleopCoralL3        int `json:"teleop_coral_l3"`
	TeleopCoralL4        int `json:"teleop_coral_l4"`
	TeleopAlgaeNet       int `json:"teleop_algae_net"`
	TeleopAlgaeProcessor int `json:"teleop_algae_processor"`

	EndgameStatus EndgameStatus `json:"endgame_status"`
}

// DerivedRow is a ScoutingRow plus the computed scoring columns. Every derived
// column is a function of the row's own raw fields only.
type DerivedRow struct {
	ScoutingRow

	TotalAutoCoral         int `json:"total_auto_coral"`
	TotalTeleopCoral       int `json:"total_teleop_coral"`
	TotalAutoCoralPoints   int `json:"total_auto_coral_points"`
	TotalTeleopCoralPoints int `json:"total_teleop_coral_points"`
	TotalAutoAlgaePoints   int `json:"total_auto_algae_points"`
	TotalTeleopAlgaePoints int `json:"total_teleop_algae_points"`
	TotalAutoPoints        int `json:"total_auto_points"`
	TotalTeleopPoints      int `json:"total_teleop_points"`
	EndgamePoints          int `json:"endgame_points"`
	TotalPoints            int `json:"total_points"`
	TotalPieces            int `json:"total_pieces"`

	// Synthetic marks an all-zero placeholder for a roster team with no
	// scouted rows. The dashboard discloses these instead of presenting
	// fabricated zeros as measured data.
	Synthetic bool `json:"synthetic,omitempty"`
}

// MatchRecord is a single qualification match as reported by the match feed,
// with team keys still carrying whatever prefix decoration the feed uses.
type MatchRecord struct {
	MatchNumber int       `json:"match_number"`
	RedTeams    [3]string `json:"red_teams"`
	BlueTeams   [3]string `json:"blue_teams"`
}

// Roster is the six team identifiers currently under analysis, three red and
// three blue. It is the single source of truth for which teams every panel
// shows; nothing downstream reconstructs a team set on its own.
type Roster struct {
	Red  [3]string `json:"red"`
	Blue [3]string `json:"blue"`
}

// AllTeams returns the six team keys, red first, in slot order.
func (r Roster) AllTeams() []string {
	return []string{r.Red[0], r.Red[1], r.Red[2], r.Blue[0], r.Blue[1], r.Blue[2]}
}

// AllianceOf reports the alliance color a team belongs to. This is the one
// team-to-color lookup shared by every panel.
func (r Roster) AllianceOf(teamKey string) (Alliance, bool) {
	for _, t := range r.Red {
		if t == teamKey {
			return RedAlliance, true
		}
	}
	for _, t := range r.Blue {
		if t == teamKey {
			return BlueAlliance, true
		}
	}
	return "", false
}

// cacheKey identifies the roster for snapshot memoization.
func (r Roster) cacheKey() string {
	return strings.Join(r.AllTeams(), ",")
}

// TeamAggregate is one roster team's arithmetic mean over all of its derived
// rows (real or placeholder). Aggregates always appear in roster order.
type TeamAggregate struct {
	TeamKey  string   `json:"team_key"`
	Alliance Alliance `json:"alliance,omitempty"`
	// Matches counts real scouted rows; 0 means the team's averages are
	// synthesized zeros.
	Matches int `json:"matches"`

	AutoCoralL1        float64 `json:"auto_coral_l1"`
	AutoCoralL2        float64 `json:"auto_coral_l2"`
	AutoCoralL3        float64 `json:"auto_coral_l3"`
	AutoCoralL4        float64 `json:"auto_coral_l4"`
	AutoAlgaeNet       float64 `json:"auto_algae_net"`
	AutoAlgaeProcessor float64 `json:"auto_algae_processor"`

	TeleopCoralL1        float64 `json:"teleop_coral_l1"`
	TeleopCoralL2        float64 `json:"teleop_coral_l2"`
	TeleopCoralL3        float64 `json:"teleop_coral_l3"`
	TeleopCoralL4        float64 `json:"teleop_coral_l4"`
	TeleopAlgaeNet       float64 `json:"teleop_algae_net"`
	TeleopAlgaeProcessor float64 `json:"teleop_algae_processor"`

	TotalAutoCoral         float64 `json:"total_auto_coral"`
	TotalTeleopCoral       float64 `json:"total_teleop_coral"`
	TotalAutoCoralPoints   float64 `json:"total_auto_coral_points"`
	TotalTeleopCoralPoints float64 `json:"total_teleop_coral_points"`
	TotalAutoAlgaePoints   float64 `json:"total_auto_algae_points"`
	TotalTeleopAlgaePoints float64 `json:"total_teleop_algae_points"`
	TotalAutoPoints        float64 `json:"total_auto_points"`
	TotalTeleopPoints      float64 `json:"total_teleop_points"`
	EndgamePoints          float64 `json:"endgame_points"`
	TotalPoints            float64 `json:"total_points"`
	TotalPieces            float64 `json:"total_pieces"`
}

// EndgameTally is one roster team's count of each endgame status across its
// rows. Every status in the active rules appears, absent ones as 0.
type EndgameTally struct {
	TeamKey  string                `json:"team_key"`
	Alliance Alliance              `json:"alliance"`
	Counts   map[EndgameStatus]int `json:"counts"`
}

// BoxStats is a five-number summary of one roster team's total points,
// precomputed so the box plot panel reads the same snapshot as everything else.
type BoxStats struct {
	TeamKey  string   `json:"team_key"`
	Alliance Alliance `json:"alliance"`
	Min      float64  `json:"min"`
	Q1       float64  `json:"q1"`
	Median   float64  `json:"median"`
	Q3       float64  `json:"q3"`
	Max      float64  `json:"max"`
}
