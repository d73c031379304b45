package scouting

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// totalPointsBox computes the five-number summary of one team's per-match
// total points. The empirical quartiles match what the plot library would
// compute client-side, but doing it here keeps the box plot on the same
// snapshot as the other panels.
func totalPointsBox(teamKey string, alliance Alliance, group []DerivedRow) BoxStats {
	box := BoxStats{TeamKey: teamKey, Alliance: alliance}
	if len(group) == 0 {
		return box
	}

	vals := make([]float64, len(group))
	for i, row := range group {
		vals[i] = float64(row.TotalPoints)
	}
	sort.Float64s(vals)

	box.Min = vals[0]
	box.Max = vals[len(vals)-1]
	box.Q1 = stat.Quantile(0.25, stat.Empirical, vals, nil)
	box.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
	box.Q3 = stat.Quantile(0.75, stat.Empirical, vals, nil)
	return box
}
