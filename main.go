package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	year := seasonYear(time.Now())
	outDir := envDefault("OUTPUT_DIR", "output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatalf("Could not create output directory %s: %v", outDir, err)
	}
	if err := initDB(); err != nil {
		fmt.Printf("⚠️  Ratings cache unavailable, continuing without it: %v\n", err)
	}

	teams, source, err := loadTeams(year)
	if err != nil {
		fatalf("No usable ratings source: %v", err)
	}
	fmt.Printf("📥 Loaded %d teams from %s\n", len(teams), source)

	inside, outside := classifyTeams(teams)
	fig := buildFigure(inside, outside, year)

	htmlPath := filepath.Join(outDir, "kenpom_ratings.html")
	title := fmt.Sprintf("KenPom Ratings - %s", seasonLabel(year))
	if err := writeHTML(fig, title, htmlPath); err != nil {
		fatalf("Could not write HTML plot: %v", err)
	}
	fmt.Printf("✅ Plot saved to %s\n", htmlPath)

	pngPath := filepath.Join(outDir, "kenpom_ratings.png")
	if err := writePNG(inside, outside, year, pngPath); err != nil {
		fmt.Printf("⚠️  Could not save PNG image: %v\n", err)
		fmt.Println("   HTML plot was saved successfully; skipping static export.")
	} else {
		fmt.Printf("✅ PNG saved to %s\n", pngPath)
	}

	fmt.Printf("⭐ Teams inside the zone: %d\n", len(inside))
	for _, t := range inside {
		fmt.Printf("   - %s (Tempo: %.1f, AdjEM: %.1f)\n", t.Name, t.AdjTempo, t.AdjEM)
	}
}

// loadTeams walks the ratings sources in order of freshness: live API,
// then the local cache, then a CSV file. Only when all three come up
// empty is the run fatal. A disabled cache (db == nil) is skipped, not
// an error.
func loadTeams(year int) ([]Team, string, error) {
	var firstErr error

	if apiKey := os.Getenv("KENPOM_API_KEY"); apiKey != "" {
		fmt.Printf("🔍 Fetching KenPom ratings for %d\n", year)
		teams, err := fetchRatings(apiKey, year)
		if err == nil {
			if db != nil {
				if err := saveRatings(year, teams); err != nil {
					fmt.Printf("⚠️  Could not cache ratings: %v\n", err)
				}
			}
			return teams, "kenpom API", nil
		}
		fmt.Printf("⚠️  API fetch failed: %v\n", err)
		firstErr = err
	}

	if db != nil {
		if teams, err := loadRatings(year); err == nil && len(teams) > 0 {
			return teams, "ratings cache", nil
		}
	}

	csvPath := envDefault("RATINGS_CSV", filepath.Join("data", "ratings.csv"))
	teams, err := loadCSV(csvPath)
	if err == nil {
		return teams, csvPath, nil
	}
	if firstErr == nil {
		firstErr = err
	}
	return nil, "", firstErr
}

// seasonYear resolves the season to plot: KENPOM_YEAR if set, otherwise
// the ending year of the season in progress (November flips to next year).
func seasonYear(now time.Time) int {
	if s := os.Getenv("KENPOM_YEAR"); s != "" {
		if y, err := strconv.Atoi(s); err == nil {
			return y
		}
		fmt.Printf("⚠️  Ignoring bad KENPOM_YEAR %q\n", s)
	}
	if now.Month() >= time.November {
		return now.Year() + 1
	}
	return now.Year()
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
	os.Exit(1)
}
