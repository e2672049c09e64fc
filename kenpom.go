package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const KENPOM_BASE = "https://kenpom.com/api.php"

// Team is one row of the KenPom ratings table.
type Team struct {
	Name     string  `json:"TeamName"`
	AdjTempo float64 `json:"AdjTempo"` // possessions per 40 minutes, pace-adjusted
	AdjEM    float64 `json:"AdjEM"`    // offensive minus defensive efficiency
}

// flexFloat accepts both 68.4 and "68.4"; the ratings endpoint has served
// numbers quoted depending on the season requested.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse rating %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

type apiTeam struct {
	TeamName string    `json:"TeamName"`
	AdjTempo flexFloat `json:"AdjTempo"`
	AdjEM    flexFloat `json:"AdjEM"`
}

// fetchRatings pulls the full ratings table for a season from the KenPom
// API. year is the ending year of the season (2025 = the 2024-25 season).
func fetchRatings(apiKey string, year int) ([]Team, error) {
	req, _ := http.NewRequest("GET", fmt.Sprintf("%s?endpoint=ratings&y=%d", KENPOM_BASE, year), nil)
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kenpom API returned %s", resp.Status)
	}

	teams, err := decodeRatings(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("kenpom API returned no teams for %d", year)
	}
	return teams, nil
}

func decodeRatings(r io.Reader) ([]Team, error) {
	var rows []apiTeam
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}
	teams := make([]Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, Team{
			Name:     row.TeamName,
			AdjTempo: float64(row.AdjTempo),
			AdjEM:    float64(row.AdjEM),
		})
	}
	return teams, nil
}
