package main

import (
	"fmt"

	"github.com/pjreiniger/gos-scouting-report/scouting"
)

// Alliance marker colors and the stacked-bar palettes used across every panel.
const (
	redColor  = "#FF5733"
	blueColor = "#1F77B4"
)

var (
	coralPalette   = []string{"#9BE3DF", "#F7898A", "#FACE9F", "#FFE493"}
	algaePalette   = []string{"#83DCDD", "#FFB480"}
	endgamePalette = []string{"#D9D9D9", "#EB89B5", "#FFD7E9", "#FFF2AF"}
)

type figure map[string]any
type trace map[string]any

// panelStyle is the roster-derived lookup every panel shares: marker colors
// and colored x-axis tick labels, computed once per snapshot, never rebuilt
// inside a panel.
type panelStyle struct {
	teams    []string
	colors   []string
	tickText []string
}

func styleFor(snap *scouting.Snapshot) panelStyle {
	style := panelStyle{teams: snap.Roster.AllTeams()}
	for _, team := range style.teams {
		color := blueColor
		if a, _ := snap.Roster.AllianceOf(team); a == scouting.RedAlliance {
			color = redColor
		}
		style.colors = append(style.colors, color)
		style.tickText = append(style.tickText,
			fmt.Sprintf(`<span style="color:%s;">%s</span>`, color, team))
	}
	return style
}

func (s panelStyle) teamAxis(title string) map[string]any {
	return map[string]any{
		"title":    title,
		"tickmode": "array",
		"tickvals": s.teams,
		"ticktext": s.tickText,
		"tickfont": map[string]any{"size": 14},
	}
}

// scatterFigure plots one per-team average against another, one labeled
// marker per roster team in alliance colors.
func scatterFigure(snap *scouting.Snapshot, style panelStyle, title, xLabel, yLabel string,
	x, y func(scouting.TeamAggregate) float64) figure {

	xs := make([]float64, len(snap.Aggregates))
	ys := make([]float64, len(snap.Aggregates))
	for i, agg := range snap.Aggregates {
		xs[i] = x(agg)
		ys[i] = y(agg)
	}

	return figure{
		"data": []trace{{
			"type":         "scatter",
			"mode":         "markers+text",
			"x":            xs,
			"y":            ys,
			"text":         style.teams,
			"textposition": "middle left",
			"marker":       map[string]any{"color": style.colors, "symbol": "circle", "size": 10},
		}},
		"layout": map[string]any{
			"title":    title,
			"xaxis":    map[string]any{"title": xLabel},
			"yaxis":    map[string]any{"title": yLabel},
			"template": "plotly_white",
		},
	}
}

type barSeries struct {
	name  string
	color string
	value func(scouting.TeamAggregate) float64
}

// stackedBarFigure renders one stacked bar per roster team.
func stackedBarFigure(snap *scouting.Snapshot, style panelStyle, title, yLabel, legend string,
	series []barSeries) figure {

	var traces []trace
	for _, s := range series {
		ys := make([]float64, len(snap.Aggregates))
		for i, agg := range snap.Aggregates {
			ys[i] = s.value(agg)
		}
		traces = append(traces, trace{
			"type":   "bar",
			"name":   s.name,
			"x":      style.teams,
			"y":      ys,
			"marker": map[string]any{"color": s.color, "line": map[string]any{"color": "white", "width": 1}},
		})
	}

	return figure{
		"data": traces,
		"layout": map[string]any{
			"barmode":  "stack",
			"title":    title,
			"xaxis":    style.teamAxis("Team"),
			"yaxis":    map[string]any{"title": yLabel},
			"legend":   map[string]any{"title": map[string]any{"text": legend}},
			"template": "plotly_white",
		},
	}
}

// boxFigure renders the precomputed per-team total-points summaries.
func boxFigure(snap *scouting.Snapshot, style panelStyle) figure {
	var traces []trace
	for i, box := range snap.TotalBox {
		traces = append(traces, trace{
			"type":       "box",
			"name":       box.TeamKey,
			"x":          []string{box.TeamKey},
			"q1":         []float64{box.Q1},
			"median":     []float64{box.Median},
			"q3":         []float64{box.Q3},
			"lowerfence": []float64{box.Min},
			"upperfence": []float64{box.Max},
			"marker":     map[string]any{"color": style.colors[i]},
		})
	}

	return figure{
		"data": traces,
		"layout": map[string]any{
			"title":      "Total Points per Match",
			"xaxis":      style.teamAxis("Team"),
			"yaxis":      map[string]any{"title": "Total Points Scored"},
			"showlegend": false,
			"template":   "plotly_white",
		},
	}
}

// endgameFigure stacks the per-team endgame status counts.
func endgameFigure(snap *scouting.Snapshot, style panelStyle, rules scouting.ScoringRules) figure {
	var traces []trace
	for i, status := range rules.Statuses() {
		ys := make([]int, len(snap.Endgame))
		for j, tally := range snap.Endgame {
			ys[j] = tally.Counts[status]
		}
		traces = append(traces, trace{
			"type":   "bar",
			"name":   string(status),
			"x":      style.teams,
			"y":      ys,
			"marker": map[string]any{"color": endgamePalette[i%len(endgamePalette)], "line": map[string]any{"color": "white", "width": 1}},
		})
	}

	return figure{
		"data": traces,
		"layout": map[string]any{
			"barmode":  "stack",
			"title":    "Endgame Status",
			"xaxis":    style.teamAxis("Team"),
			"yaxis":    map[string]any{"title": "Matches"},
			"legend":   map[string]any{"title": map[string]any{"text": "Status"}},
			"template": "plotly_white",
		},
	}
}

func coralLevelSeries(auto bool, points *scouting.ScoringRules) []barSeries {
	level := func(i int) barSeries {
		name := fmt.Sprintf("Coral L%d", i+1)
		getters := []func(scouting.TeamAggregate) float64{
			func(a scouting.TeamAggregate) float64 { return a.TeleopCoralL1 },
			func(a scouting.TeamAggregate) float64 { return a.TeleopCoralL2 },
			func(a scouting.TeamAggregate) float64 { return a.TeleopCoralL3 },
			func(a scouting.TeamAggregate) float64 { return a.TeleopCoralL4 },
		}
		if auto {
			getters = []func(scouting.TeamAggregate) float64{
				func(a scouting.TeamAggregate) float64 { return a.AutoCoralL1 },
				func(a scouting.TeamAggregate) float64 { return a.AutoCoralL2 },
				func(a scouting.TeamAggregate) float64 { return a.AutoCoralL3 },
				func(a scouting.TeamAggregate) float64 { return a.AutoCoralL4 },
			}
		}
		get := getters[i]
		if points != nil {
			per := points.TeleopCoralPoints[i]
			if auto {
				per = points.AutoCoralPoints[i]
			}
			inner := get
			get = func(a scouting.TeamAggregate) float64 { return inner(a) * float64(per) }
		}
		return barSeries{name: name, color: coralPalette[i], value: get}
	}
	return []barSeries{level(0), level(1), level(2), level(3)}
}

// reportPayload is the JSON body for one consistent render of every panel.
type reportPayload struct {
	Mode         scouting.SelectionMode   `json:"mode"`
	MatchNumber  int                      `json:"match_number,omitempty"`
	Roster       scouting.Roster          `json:"roster"`
	MissingTeams []string                 `json:"missing_teams,omitempty"`
	Prediction   *MatchPrediction         `json:"prediction,omitempty"`
	KeyStats     []scouting.TeamAggregate `json:"key_stats"`
	Figures      map[string]figure        `json:"figures"`
}

// buildReportPayload turns one snapshot into every panel's figure. All figures
// come from the same snapshot, so a roster change can never leave one panel
// showing the previous lineup.
func buildReportPayload(rep *scouting.Report, cfg Config) (reportPayload, error) {
	snap, err := rep.Snapshot()
	if err != nil {
		return reportPayload{}, err
	}
	mode, matchNumber, _, _ := rep.Selection()
	rules := rep.Rules()
	style := styleFor(snap)

	payload := reportPayload{
		Mode:         mode,
		MatchNumber:  matchNumber,
		Roster:       snap.Roster,
		MissingTeams: snap.MissingTeams,
		KeyStats:     snap.Aggregates,
		Figures:      map[string]figure{},
	}
	if mode == scouting.ModeMatch {
		payload.Prediction = predictionFor(cfg.EventKey, matchNumber)
	}

	payload.Figures["teleop_auto_points"] = scatterFigure(snap, style,
		"Teleop vs Auto Points", "Avg Teleop Points", "Avg Auto Points",
		func(a scouting.TeamAggregate) float64 { return a.TotalTeleopPoints },
		func(a scouting.TeamAggregate) float64 { return a.TotalAutoPoints })

	payload.Figures["total_points_box"] = boxFigure(snap, style)

	payload.Figures["coral_algae_auto"] = scatterFigure(snap, style,
		"Coral vs Algae AUTO", "Avg Coral Scored", "Avg Algae Scored",
		func(a scouting.TeamAggregate) float64 { return a.TotalAutoCoral },
		func(a scouting.TeamAggregate) float64 { return a.AutoAlgaeNet + a.AutoAlgaeProcessor })

	payload.Figures["coral_algae_teleop"] = scatterFigure(snap, style,
		"Coral vs Algae TELEOP", "Avg Coral Scored", "Avg Algae Scored",
		func(a scouting.TeamAggregate) float64 { return a.TotalTeleopCoral },
		func(a scouting.TeamAggregate) float64 { return a.TeleopAlgaeNet + a.TeleopAlgaeProcessor })

	payload.Figures["coral_levels_auto"] = stackedBarFigure(snap, style,
		"Coral Level Distribution Auto", "Avg Coral in L1-L4", "Coral Levels",
		coralLevelSeries(true, nil))
	payload.Figures["coral_levels_teleop"] = stackedBarFigure(snap, style,
		"Coral Level Distribution Teleop", "Avg Coral in L1-L4", "Coral Levels",
		coralLevelSeries(false, nil))

	payload.Figures["coral_points_auto"] = stackedBarFigure(snap, style,
		"Coral Point Distribution by Level Auto", "Avg Points by Level", "Coral Levels",
		coralLevelSeries(true, &rules))
	payload.Figures["coral_points_teleop"] = stackedBarFigure(snap, style,
		"Coral Point Distribution by Level Teleop", "Avg Points by Level", "Coral Levels",
		coralLevelSeries(false, &rules))

	payload.Figures["net_processor_teleop"] = stackedBarFigure(snap, style,
		"Algae in Processor and Net TELEOP", "Avg Algae in Net / Processor", "Algae Type",
		[]barSeries{
			{name: "Net", color: algaePalette[0], value: func(a scouting.TeamAggregate) float64 { return a.TeleopAlgaeNet }},
			{name: "Processor", color: algaePalette[1], value: func(a scouting.TeamAggregate) float64 { return a.TeleopAlgaeProcessor }},
		})

	payload.Figures["endgame"] = endgameFigure(snap, style, rules)

	return payload, nil
}
