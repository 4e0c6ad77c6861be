package searchcache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/glebarez/sqlite"

	"boolsearch/internal/query"
)

// SQLiteCache persists query results across process restarts, adapting
// sqlite_index.go's table-per-concern schema: one row per distinct query
// string, with its ranked results serialized as JSON rather than
// normalized into per-posting rows, since a cache entry is read back
// whole or not at all.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (creating if necessary) a cache database at
// dbPath.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database %s: %w", dbPath, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS query_cache (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query_text TEXT UNIQUE NOT NULL,
			total_matches INTEGER NOT NULL,
			results_json TEXT NOT NULL,
			hit_count INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema in %s: %w", dbPath, err)
	}

	return &SQLiteCache{db: db}, nil
}

// Get looks up queryText and bumps its hit_count on a hit.
func (c *SQLiteCache) Get(queryText string) (query.Outcome, bool) {
	var totalMatches int
	var resultsJSON string
	err := c.db.QueryRow(
		"SELECT total_matches, results_json FROM query_cache WHERE query_text = ?",
		queryText,
	).Scan(&totalMatches, &resultsJSON)
	if err != nil {
		return query.Outcome{}, false
	}

	var results []query.Result
	if err := json.Unmarshal([]byte(resultsJSON), &results); err != nil {
		return query.Outcome{}, false
	}

	_, _ = c.db.Exec("UPDATE query_cache SET hit_count = hit_count + 1 WHERE query_text = ?", queryText)

	return query.Outcome{Results: results, TotalMatches: totalMatches}, true
}

// Put stores outcome under queryText, replacing any existing entry.
func (c *SQLiteCache) Put(queryText string, outcome query.Outcome) {
	resultsJSON, err := json.Marshal(outcome.Results)
	if err != nil {
		return
	}

	_, _ = c.db.Exec(`
		INSERT INTO query_cache (query_text, total_matches, results_json, hit_count)
		VALUES (?, ?, ?, 0)
		ON CONFLICT(query_text) DO UPDATE SET
			total_matches = excluded.total_matches,
			results_json = excluded.results_json
	`, queryText, outcome.TotalMatches, string(resultsJSON))
}

// Close closes the underlying database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
