// Package searchcache caches query.Outcome results by their raw query
// text, so a repeated query skips re-walking the posting lists and
// re-scoring every match. Search is a pure function of (query text,
// index state), which makes it an obvious memoization target;
// SQLiteCache adapts sqlite_index.go's schema-and-driver approach from
// indexing documents to indexing query results instead.
package searchcache

import "boolsearch/internal/query"

// Cache looks up and stores query.Outcome values by the exact query
// text that produced them.
type Cache interface {
	Get(queryText string) (query.Outcome, bool)
	Put(queryText string, outcome query.Outcome)
	Close() error
}
