package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	inside := []Team{
		{Name: "Houston", AdjTempo: 68, AdjEM: 25},
		{Name: "Tennessee", AdjTempo: 66, AdjEM: 28},
	}
	outside := []Team{
		{Name: "Alabama", AdjTempo: 80, AdjEM: 5},
		{Name: "Saint Mary's", AdjTempo: 61.6, AdjEM: 20.5},
	}

	path := filepath.Join(t.TempDir(), "kenpom_ratings.png")
	if err := writePNG(inside, outside, 2025, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("PNG file is empty")
	}
}

func TestChartRangesCoverZoneAndTeams(t *testing.T) {
	outside := []Team{{Name: "Alabama", AdjTempo: 80, AdjEM: 5}}
	xr, yr := chartRanges(nil, outside)

	if xr.Min >= 62.5 || xr.Max <= 80 {
		t.Errorf("x range [%v,%v] does not cover zone and data", xr.Min, xr.Max)
	}
	if yr.Min >= 5 || yr.Max <= 40 {
		t.Errorf("y range [%v,%v] does not cover zone and data", yr.Min, yr.Max)
	}
}
