package main

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"
)

var db *sql.DB

func initDB() error {
	var err error

	// KENPOM_DATA_DIR moves the cache off the working directory
	// (volume mounts, scheduled runs)
	if dataDir := os.Getenv("KENPOM_DATA_DIR"); dataDir != "" {
		db, err = sql.Open("sqlite", filepath.Join(dataDir, "kenpom_cache.db"))
	} else {
		db, err = sql.Open("sqlite", "./kenpom_cache.db")
	}
	if err != nil {
		db = nil
		return err
	}

	_, err = db.Exec(`
    CREATE TABLE IF NOT EXISTS ratings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        season INTEGER,
        team_name TEXT,
        adj_tempo REAL,
        adj_em REAL,
        fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );`)
	if err != nil {
		db.Close()
		db = nil
		return err
	}
	return nil
}

// saveRatings replaces the cached table for a season with a fresh fetch.
func saveRatings(season int, teams []Team) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ratings WHERE season = ?`, season); err != nil {
		return err
	}
	for _, t := range teams {
		_, err := tx.Exec(`INSERT INTO ratings (season, team_name, adj_tempo, adj_em) VALUES (?, ?, ?, ?)`,
			season, t.Name, t.AdjTempo, t.AdjEM)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// loadRatings returns the cached table for a season, in insertion order.
func loadRatings(season int) ([]Team, error) {
	rows, err := db.Query(`SELECT team_name, adj_tempo, adj_em FROM ratings WHERE season = ? ORDER BY id`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.Name, &t.AdjTempo, &t.AdjEM); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
