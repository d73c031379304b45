package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pjreiniger/gos-scouting-report/scouting"
)

const TBA_BASE = "https://www.thebluealliance.com/api/v3"

type Match struct {
	Key         string `json:"key"`
	MatchNumber int    `json:"match_number"`
	CompLevel   string `json:"comp_level"` // "qm", "qf", "sf", "f"
	Alliances   struct {
		Red  Alliance `json:"red"`
		Blue Alliance `json:"blue"`
	} `json:"alliances"`
}

type Alliance struct {
	TeamKeys []string `json:"team_keys"`
}

// Cache variables
var (
	matchCache     = make(map[string][]Match)
	matchTimestamp = make(map[string]time.Time)
	matchMutex     sync.Mutex
)

type tbaClient struct {
	authKey string
}

func (c *tbaClient) getMatchesCached(eventKey string) ([]Match, error) {
	matchMutex.Lock()
	defer matchMutex.Unlock()

	// Cache check (valid for 10 minutes since schedules change)
	if m, ok := matchCache[eventKey]; ok && time.Since(matchTimestamp[eventKey]) < 10*time.Minute {
		return m, nil
	}

	req, _ := http.NewRequest("GET", fmt.Sprintf("%s/event/%s/matches/simple", TBA_BASE, eventKey), nil)
	req.Header.Set("X-TBA-Auth-Key", c.authKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matches []Match
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, err
	}

	matchCache[eventKey] = matches
	matchTimestamp[eventKey] = time.Now()
	return matches, nil
}

// filterQualMatches drops elimination matches. Only quals reach the core;
// match numbers are unique within that level.
func filterQualMatches(matches []Match) []Match {
	var quals []Match
	for _, m := range matches {
		if m.CompLevel == "qm" {
			quals = append(quals, m)
		}
	}
	return quals
}

// matchRecordFor resolves one qualification match number against the schedule.
func matchRecordFor(quals []Match, matchNumber int) (scouting.MatchRecord, error) {
	var found []Match
	for _, m := range quals {
		if m.MatchNumber == matchNumber {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return scouting.MatchRecord{}, &scouting.MatchNotFoundError{
			MatchNumber: matchNumber,
			Count:       len(found),
		}
	}

	m := found[0]
	if len(m.Alliances.Red.TeamKeys) != 3 || len(m.Alliances.Blue.TeamKeys) != 3 {
		return scouting.MatchRecord{}, fmt.Errorf("match %d has a malformed alliance lineup", matchNumber)
	}

	record := scouting.MatchRecord{MatchNumber: matchNumber}
	copy(record.RedTeams[:], m.Alliances.Red.TeamKeys)
	copy(record.BlueTeams[:], m.Alliances.Blue.TeamKeys)
	return record, nil
}

// tbaMatchFeed implements scouting.MatchFeed on top of the cached TBA schedule
// for one event.
type tbaMatchFeed struct {
	tba      *tbaClient
	eventKey string
}

func (f *tbaMatchFeed) GetMatch(matchNumber int) (scouting.MatchRecord, error) {
	matches, err := f.tba.getMatchesCached(f.eventKey)
	if err != nil {
		return scouting.MatchRecord{}, fmt.Errorf("fetching TBA schedule: %w", err)
	}
	return matchRecordFor(filterQualMatches(matches), matchNumber)
}
