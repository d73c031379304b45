package scouting

// Derive computes the scoring columns for one row. It is pure and total over
// any row that passed ingestion: deriving the same row twice yields identical
// values, and a status missing from the rules simply scores zero (ingestion
// guarantees that cannot happen for loaded rows).
func Derive(row ScoutingRow, rules ScoringRules) DerivedRow {
	d := DerivedRow{ScoutingRow: row}

	d.TotalAutoCoral = row.AutoCoralL1 + row.AutoCoralL2 + row.AutoCoralL3 + row.AutoCoralL4
	d.TotalTeleopCoral = row.TeleopCoralL1 + row.TeleopCoralL2 + row.TeleopCoralL3 + row.TeleopCoralL4

	d.TotalAutoCoralPoints = row.AutoCoralL1*rules.AutoCoralPoints[0] +
		row.AutoCoralL2*rules.AutoCoralPoints[1] +
		row.AutoCoralL3*rules.AutoCoralPoints[2] +
		row.AutoCoralL4*rules.AutoCoralPoints[3]
	d.TotalTeleopCoralPoints = row.TeleopCoralL1*rules.TeleopCoralPoints[0] +
		row.TeleopCoralL2*rules.TeleopCoralPoints[1] +
		row.TeleopCoralL3*rules.TeleopCoralPoints[2] +
		row.TeleopCoralL4*rules.TeleopCoralPoints[3]

	d.TotalAutoAlgaePoints = row.AutoAlgaeNet*rules.AutoNetPoints + row.AutoAlgaeProcessor*rules.AutoProcessorPoints
	d.TotalTeleopAlgaePoints = row.TeleopAlgaeNet*rules.TeleopNetPoints + row.TeleopAlgaeProcessor*rules.TeleopProcessorPoints

	d.TotalAutoPoints = d.TotalAutoCoralPoints + d.TotalAutoAlgaePoints
	d.TotalTeleopPoints = d.TotalTeleopCoralPoints + d.TotalTeleopAlgaePoints

	d.EndgamePoints, _ = rules.EndgamePointsFor(row.EndgameStatus)
	d.TotalPoints = d.TotalAutoPoints + d.TotalTeleopPoints + d.EndgamePoints

	d.TotalPieces = d.TotalAutoCoral + d.TotalTeleopCoral +
		row.AutoAlgaeNet + row.AutoAlgaeProcessor +
		row.TeleopAlgaeNet + row.TeleopAlgaeProcessor

	return d
}

// DeriveAll derives every row in order.
func DeriveAll(rows []ScoutingRow, rules ScoringRules) []DerivedRow {
	out := make([]DerivedRow, len(rows))
	for i, row := range rows {
		out[i] = Derive(row, rules)
	}
	return out
}
