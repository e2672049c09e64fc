package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// loadCSV reads a local ratings file with columns TeamName, AdjTempo, AdjEM.
// A header row is recognized and skipped.
func loadCSV(path string) ([]Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	start := 0
	if _, err := strconv.ParseFloat(rows[0][1], 64); err != nil {
		start = 1 // header row
	}
	if len(rows) == start {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	teams := make([]Team, 0, len(rows)-start)
	for i, row := range rows[start:] {
		tempo, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad AdjTempo %q", path, start+i+1, row[1])
		}
		em, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad AdjEM %q", path, start+i+1, row[2])
		}
		teams = append(teams, Team{Name: row[0], AdjTempo: tempo, AdjEM: em})
	}
	return teams, nil
}
