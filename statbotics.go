package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const STATBOTICS_BASE = "https://api.statbotics.io/v3"

// MatchPrediction is the Statbotics predicted outcome for one qualification
// match. Shown next to the roster; the core pipeline never depends on it.
type MatchPrediction struct {
	MatchNumber int     `json:"match_number"`
	RedScore    float64 `json:"red_score"`
	BlueScore   float64 `json:"blue_score"`
	RedWinProb  float64 `json:"red_win_prob"`
}

type sbMatch struct {
	Key         string `json:"key"`
	CompLevel   string `json:"comp_level"`
	MatchNumber int    `json:"match_number"`
	Pred        struct {
		RedScore   float64 `json:"red_score"`
		BlueScore  float64 `json:"blue_score"`
		RedWinProb float64 `json:"red_win_prob"`
	} `json:"pred"`
}

var (
	sbCache     = make(map[string][]sbMatch)
	sbTimestamp = make(map[string]time.Time)
	sbMutex     sync.Mutex
)

func getPredictionsCached(eventKey string) ([]sbMatch, error) {
	sbMutex.Lock()
	defer sbMutex.Unlock()

	// Predictions move slowly; an hour of staleness is fine
	if m, ok := sbCache[eventKey]; ok && time.Since(sbTimestamp[eventKey]) < time.Hour {
		return m, nil
	}

	url := fmt.Sprintf("%s/matches?event=%s&elims=false", STATBOTICS_BASE, eventKey)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matches []sbMatch
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, err
	}

	sbCache[eventKey] = matches
	sbTimestamp[eventKey] = time.Now()
	return matches, nil
}

// predictionFor returns the prediction for one qualification match, or nil if
// Statbotics has nothing for it. Missing predictions never block the report.
func predictionFor(eventKey string, matchNumber int) *MatchPrediction {
	matches, err := getPredictionsCached(eventKey)
	if err != nil {
		fmt.Printf("⚠️ Statbotics unavailable: %v\n", err)
		return nil
	}

	for _, m := range matches {
		if m.CompLevel == "qm" && m.MatchNumber == matchNumber {
			return &MatchPrediction{
				MatchNumber: matchNumber,
				RedScore:    m.Pred.RedScore,
				BlueScore:   m.Pred.BlueScore,
				RedWinProb:  m.Pred.RedWinProb,
			}
		}
	}
	return nil
}
