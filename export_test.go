package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteHTML(t *testing.T) {
	inside := []Team{{Name: "Houston", AdjTempo: 68, AdjEM: 25}}
	outside := []Team{{Name: "Alabama", AdjTempo: 80, AdjEM: 5}}
	fig := buildFigure(inside, outside, 2025)

	path := filepath.Join(t.TempDir(), "kenpom_ratings.html")
	if err := writeHTML(fig, "KenPom Ratings - 2024-2025 Season", path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(raw)
	for _, want := range []string{"KenPom Ratings - 2024-2025 Season", "Houston", "Alabama", "Zone of Excellence", "Plotly.newPlot", "cdn.plot.ly"} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

// The PNG step is best-effort: its failure must leave the HTML artifact
// behind and the run treats it as a skip.
func TestHTMLSurvivesPNGFailure(t *testing.T) {
	fig := buildFigure(nil, []Team{{Name: "Alabama", AdjTempo: 80, AdjEM: 5}}, 2025)

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "kenpom_ratings.html")
	if err := writeHTML(fig, "KenPom Ratings", htmlPath); err != nil {
		t.Fatal(err)
	}

	badPath := filepath.Join(dir, "missing", "kenpom_ratings.png")
	if err := writePNG(nil, nil, 2025, badPath); err == nil {
		t.Fatal("expected PNG write to an unwritable path to fail")
	}
	if _, err := os.Stat(htmlPath); err != nil {
		t.Fatalf("HTML artifact gone after PNG failure: %v", err)
	}
}
