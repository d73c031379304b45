package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/pjreiniger/gos-scouting-report/scouting"
)

const srExportURL = "https://scoutradioz.com/reports/exportdata?type=matchscouting"

// downloadMatchScouting fetches the raw match-scouting CSV export for the org.
func downloadMatchScouting(orgKey string) ([]byte, error) {
	req, err := http.NewRequest("GET", srExportURL, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "org_key", Value: orgKey})
	// The export endpoint rejects non-browser user agents.
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows; U; Windows NT 5.1; en-US; rv:1.9.0.7) Gecko/2009021910 Firefox/3.0.7")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoutradioz export returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// refreshScoutingData downloads the export, validates it, and replaces the
// sqlite cache for the event.
func refreshScoutingData(cfg Config, rules scouting.ScoringRules) (*scouting.Store, error) {
	if cfg.SROrgKey == "" {
		return nil, fmt.Errorf("SR_ORG_KEY is not set; cannot download scouting data")
	}

	raw, err := downloadMatchScouting(cfg.SROrgKey)
	if err != nil {
		return nil, fmt.Errorf("downloading scouting export: %w", err)
	}

	store, err := scouting.LoadCSV(bytes.NewReader(raw), rules)
	if err != nil {
		return nil, err
	}

	if err := replaceScoutRows(cfg.EventKey, store.Rows()); err != nil {
		return nil, fmt.Errorf("caching scouting rows: %w", err)
	}
	fmt.Printf("📝 Downloaded %d scouting rows for %s\n", len(store.Rows()), cfg.EventKey)
	return store, nil
}

// loadScoutingData prefers the sqlite cache and falls back to a fresh
// download when the cache is empty.
func loadScoutingData(cfg Config, rules scouting.ScoringRules) (*scouting.Store, error) {
	store, err := loadScoutRows(cfg.EventKey, rules)
	if err != nil {
		return nil, err
	}
	if len(store.Rows()) > 0 {
		fmt.Printf("📦 Loaded %d cached scouting rows for %s\n", len(store.Rows()), cfg.EventKey)
		return store, nil
	}
	return refreshScoutingData(cfg, rules)
}
