package scouting

// EndgameRule maps one endgame status to its point value. The slice order in
// ScoringRules is the display order for tallies and charts.
type EndgameRule struct {
	Status EndgameStatus `json:"status"`
	Points int           `json:"points"`
}

// ScoringRules carries the game-specific point values used by derivation.
// Coral point arrays are indexed by level (index 0 = L1).
type ScoringRules struct {
	AutoCoralPoints   [4]int `json:"auto_coral_points"`
	TeleopCoralPoints [4]int `json:"teleop_coral_points"`

	AutoNetPoints         int `json:"auto_net_points"`
	AutoProcessorPoints   int `json:"auto_processor_points"`
	TeleopNetPoints       int `json:"teleop_net_points"`
	TeleopProcessorPoints int `json:"teleop_processor_points"`

	Endgame []EndgameRule `json:"endgame"`
}

// ReefscapeRules returns the 2025 REEFSCAPE point values.
func ReefscapeRules() ScoringRules {
	return ScoringRules{
		AutoCoralPoints:   [4]int{3, 4, 6, 7},
		TeleopCoralPoints: [4]int{2, 3, 4, 5},

		AutoNetPoints:         4,
		AutoProcessorPoints:   6,
		TeleopNetPoints:       4,
		TeleopProcessorPoints: 6,

		Endgame: []EndgameRule{
			{NotParked, 0},
			{Parked, 2},
			{ShallowCage, 6},
			{DeepCage, 12},
		},
	}
}

// EndgamePointsFor returns the point value for a status and whether the status
// is part of the rules at all.
func (r ScoringRules) EndgamePointsFor(s EndgameStatus) (int, bool) {
	for _, eg := range r.Endgame {
		if eg.Status == s {
			return eg.Points, true
		}
	}
	return 0, false
}

// Statuses returns the endgame label set in display order.
func (r ScoringRules) Statuses() []EndgameStatus {
	out := make([]EndgameStatus, len(r.Endgame))
	for i, eg := range r.Endgame {
		out[i] = eg.Status
	}
	return out
}
