package scouting

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Snapshot is one atomic recomputation of every roster-dependent view. All
// slices appear in Roster.AllTeams order; every panel reads the same Snapshot
// value so no panel can mix data from two different rosters.
type Snapshot struct {
	Roster Roster `json:"roster"`

	// Rows is the roster-filtered, gap-filled row set, ordered by roster
	// position and then by match number.
	Rows []DerivedRow `json:"rows"`

	Aggregates []TeamAggregate `json:"aggregates"`
	Endgame    []EndgameTally  `json:"endgame"`
	TotalBox   []BoxStats      `json:"total_box"`

	// MissingTeams lists roster teams with zero scouted rows, whose
	// aggregates are synthesized zeros. Non-fatal; the dashboard shows the
	// warning next to the data.
	MissingTeams []string `json:"missing_teams,omitempty"`
}

// fillGaps appends one all-zero placeholder row for each roster team with no
// rows in the input, and returns the list of teams it fabricated. Teams with
// any real data, however partial, are never touched.
func fillGaps(roster Roster, rows []DerivedRow) ([]DerivedRow, []string) {
	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		present[row.TeamKey] = true
	}

	var missing []string
	for _, team := range roster.AllTeams() {
		if !present[team] {
			missing = append(missing, team)
			rows = append(rows, placeholderRow(team))
		}
	}
	return rows, missing
}

func placeholderRow(teamKey string) DerivedRow {
	return DerivedRow{
		ScoutingRow: ScoutingRow{TeamKey: teamKey, EndgameStatus: NotParked},
		Synthetic:   true,
	}
}

// buildView runs the roster-scoped aggregation: filter to roster teams, fill
// gaps, group by team with per-column means, and reorder everything to exact
// roster order. The reorder is explicit; grouping output order is never
// trusted.
func buildView(roster Roster, derived []DerivedRow, rules ScoringRules) *Snapshot {
	inRoster := make(map[string]bool, 6)
	for _, t := range roster.AllTeams() {
		inRoster[t] = true
	}

	var filtered []DerivedRow
	for _, row := range derived {
		if inRoster[row.TeamKey] {
			filtered = append(filtered, row)
		}
	}
	filtered, missing := fillGaps(roster, filtered)

	byTeam := groupByTeam(filtered)

	order := roster.AllTeams()
	slot := make(map[string]int, len(order))
	for i, t := range order {
		slot[t] = i
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if slot[filtered[i].TeamKey] != slot[filtered[j].TeamKey] {
			return slot[filtered[i].TeamKey] < slot[filtered[j].TeamKey]
		}
		return filtered[i].MatchNumber < filtered[j].MatchNumber
	})

	snap := &Snapshot{
		Roster:       roster,
		Rows:         filtered,
		MissingTeams: missing,
	}
	for _, team := range order {
		group := byTeam[team]
		alliance, _ := roster.AllianceOf(team)

		agg := aggregateGroup(team, group)
		agg.Alliance = alliance
		snap.Aggregates = append(snap.Aggregates, agg)

		snap.Endgame = append(snap.Endgame, tallyEndgame(team, alliance, group, rules))
		snap.TotalBox = append(snap.TotalBox, totalPointsBox(team, alliance, group))
	}
	return snap
}

// AggregateAll is the roster-independent, event-wide per-team aggregate over
// the entire derived row set, sorted by team key.
func AggregateAll(derived []DerivedRow) []TeamAggregate {
	byTeam := groupByTeam(derived)

	keys := make([]string, 0, len(byTeam))
	for team := range byTeam {
		keys = append(keys, team)
	}
	sort.Strings(keys)

	out := make([]TeamAggregate, 0, len(keys))
	for _, team := range keys {
		out = append(out, aggregateGroup(team, byTeam[team]))
	}
	return out
}

func groupByTeam(rows []DerivedRow) map[string][]DerivedRow {
	byTeam := make(map[string][]DerivedRow)
	for _, row := range rows {
		byTeam[row.TeamKey] = append(byTeam[row.TeamKey], row)
	}
	return byTeam
}

func aggregateGroup(teamKey string, group []DerivedRow) TeamAggregate {
	agg := TeamAggregate{TeamKey: teamKey}
	for _, row := range group {
		if !row.Synthetic {
			agg.Matches++
		}
	}

	agg.AutoCoralL1 = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoCoralL1) })
	agg.AutoCoralL2 = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoCoralL2) })
	agg.AutoCoralL3 = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoCoralL3) })
	agg.AutoCoralL4 = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoCoralL4) })
	agg.AutoAlgaeNet = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoAlgaeNet) })
	agg.AutoAlgaeProcessor = meanOf(group, func(r DerivedRow) float64 { return float64(r.AutoAlgaeProcessor) })

	agg.TeleopCoralL1 = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopCoralL1) })
	agg.TeleopCoralL2 = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopCoralL2) })
	agg.TeleopCoralL3 = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopCoralL3) })
	agg.TeleopCoralL4 = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopCoralL4) })
	agg.TeleopAlgaeNet = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopAlgaeNet) })
	agg.TeleopAlgaeProcessor = meanOf(group, func(r DerivedRow) float64 { return float64(r.TeleopAlgaeProcessor) })

	agg.TotalAutoCoral = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalAutoCoral) })
	agg.TotalTeleopCoral = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalTeleopCoral) })
	agg.TotalAutoCoralPoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalAutoCoralPoints) })
	agg.TotalTeleopCoralPoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalTeleopCoralPoints) })
	agg.TotalAutoAlgaePoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalAutoAlgaePoints) })
	agg.TotalTeleopAlgaePoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalTeleopAlgaePoints) })
	agg.TotalAutoPoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalAutoPoints) })
	agg.TotalTeleopPoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalTeleopPoints) })
	agg.EndgamePoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.EndgamePoints) })
	agg.TotalPoints = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalPoints) })
	agg.TotalPieces = meanOf(group, func(r DerivedRow) float64 { return float64(r.TotalPieces) })

	return agg
}

func meanOf(group []DerivedRow, get func(DerivedRow) float64) float64 {
	if len(group) == 0 {
		return 0
	}
	vals := make([]float64, len(group))
	for i, row := range group {
		vals[i] = get(row)
	}
	return stat.Mean(vals, nil)
}

// tallyEndgame counts each endgame status for one team. Every status in the
// rules is present in the result, absent ones as 0.
func tallyEndgame(teamKey string, alliance Alliance, group []DerivedRow, rules ScoringRules) EndgameTally {
	counts := make(map[EndgameStatus]int, len(rules.Endgame))
	for _, s := range rules.Statuses() {
		counts[s] = 0
	}
	for _, row := range group {
		counts[row.EndgameStatus]++
	}
	return EndgameTally{TeamKey: teamKey, Alliance: alliance, Counts: counts}
}
