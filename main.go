package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/pjreiniger/gos-scouting-report/scouting"
	"github.com/pjreiniger/gos-scouting-report/templates"

	"github.com/a-h/templ"
)

type app struct {
	cfg  Config
	feed scouting.MatchFeed

	// report is swapped wholesale on a data refresh; the pointer is guarded,
	// the Report itself is safe for concurrent use.
	mu     sync.Mutex
	report *scouting.Report
}

func (a *app) getReport() *scouting.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.report
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("❌ Config error: %v\n", err)
		return
	}

	initDB()

	rules := scouting.ReefscapeRules()
	store, err := loadScoutingData(cfg, rules)
	if err != nil {
		fmt.Printf("❌ Could not load scouting data: %v\n", err)
		return
	}

	a := &app{
		cfg:    cfg,
		report: scouting.NewReport(store, rules),
		feed:   &tbaMatchFeed{tba: &tbaClient{authKey: cfg.TBAKey}, eventKey: cfg.EventKey},
	}

	// Route for the report page
	http.HandleFunc("/", a.reportPageHandler)

	// Selection routes
	http.HandleFunc("/api/select-match", a.selectMatchHandler)
	http.HandleFunc("/api/select-teams", a.selectTeamsHandler)

	// Data routes
	http.HandleFunc("/api/report", a.reportHandler)
	http.HandleFunc("/api/all-teams", a.allTeamsHandler)
	http.HandleFunc("/api/refresh-data", a.refreshDataHandler)

	fmt.Printf("🤖 GoS Scouting Report for %s is running on http://localhost:%s\n", cfg.EventKey, cfg.Port)
	http.ListenAndServe(":"+cfg.Port, nil)
}

func (a *app) reportPageHandler(w http.ResponseWriter, r *http.Request) {
	data := templates.ReportPageData{
		EventKey: a.cfg.EventKey,
		Title:    "GoS REEFSCAPE Data Science Report",
		Panels:   templates.DefaultPanels(),
	}
	templ.Handler(templates.ReportPage(data)).ServeHTTP(w, r)
}

func (a *app) selectMatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	matchNum, err := strconv.Atoi(r.FormValue("match_num"))
	if err != nil || matchNum < 1 {
		http.Error(w, "A qualification match number is required", http.StatusBadRequest)
		return
	}

	if err := a.getReport().SelectMatch(a.feed, matchNum); err != nil {
		var notFound *scouting.MatchNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, notFound.Error(), http.StatusNotFound)
			return
		}
		fmt.Printf("❌ Match selection failed: %v\n", err)
		http.Error(w, "Match lookup failed", http.StatusBadGateway)
		return
	}

	fmt.Printf("🎯 Selected qualification match %d\n", matchNum)
	w.WriteHeader(http.StatusOK)
}

func (a *app) selectTeamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	red := [3]string{r.FormValue("red1"), r.FormValue("red2"), r.FormValue("red3")}
	blue := [3]string{r.FormValue("blue1"), r.FormValue("blue2"), r.FormValue("blue3")}

	if err := a.getReport().SelectTeams(red, blue); err != nil {
		var dup *scouting.DuplicateTeamError
		if errors.As(err, &dup) {
			http.Error(w, dup.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("🎯 Selected manual roster: red %v, blue %v\n", red, blue)
	w.WriteHeader(http.StatusOK)
}

// reportHandler returns one atomic payload for every panel. Each fetch is one
// snapshot: a chart and the table can never disagree about the roster.
func (a *app) reportHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := buildReportPayload(a.getReport(), a.cfg)
	if err != nil {
		if errors.Is(err, scouting.ErrNoSelection) {
			http.Error(w, "Pick a match or six teams to build the report", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(payload.MissingTeams) > 0 {
		fmt.Printf("⚠️ No scouting data for teams %v; showing synthesized zeros\n", payload.MissingTeams)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// allTeamsHandler serves the event-wide aggregates for comparison views.
func (a *app) allTeamsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.getReport().AllTeams())
}

// refreshDataHandler re-downloads the scouting export and rebuilds the report.
func (a *app) refreshDataHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	old := a.getReport()
	rules := old.Rules()
	store, err := refreshScoutingData(a.cfg, rules)
	if err != nil {
		fmt.Printf("❌ Refresh failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	fresh := scouting.NewReport(store, rules)
	if mode, matchNumber, roster, ok := old.Selection(); ok {
		// Carry the selection over so the operator's view survives a refresh.
		if mode == scouting.ModeMatch {
			err = fresh.SelectMatch(a.feed, matchNumber)
		} else {
			err = fresh.SelectTeams(roster.Red, roster.Blue)
		}
		if err != nil {
			fmt.Printf("⚠️ Could not restore selection after refresh: %v\n", err)
		}
	}

	a.mu.Lock()
	a.report = fresh
	a.mu.Unlock()

	fmt.Printf("✅ Reloaded scouting data for %s\n", a.cfg.EventKey)
	w.WriteHeader(http.StatusOK)
}
