package templates

// ReportPageData drives the dashboard shell. Panels are filled client-side
// from /api/report so every chart renders from one consistent payload.
type ReportPageData struct {
	EventKey string
	Title    string
	// Panels maps nav-tab names to the figure keys rendered in that tab.
	Panels []PanelGroup
}

type PanelGroup struct {
	Name    string
	Figures []string
}

// DefaultPanels mirrors the report's nav layout: general, auto, teleop,
// endgame, and the alliance-selection stats table.
func DefaultPanels() []PanelGroup {
	return []PanelGroup{
		{Name: "General Data", Figures: []string{"teleop_auto_points", "total_points_box"}},
		{Name: "Auto Data", Figures: []string{"coral_algae_auto", "coral_levels_auto", "coral_points_auto"}},
		{Name: "Teleop Data", Figures: []string{"coral_algae_teleop", "net_processor_teleop", "coral_levels_teleop", "coral_points_teleop"}},
		{Name: "Endgame Data", Figures: []string{"endgame"}},
	}
}
