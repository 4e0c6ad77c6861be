// Package engine wires a loaded on-disk index together with the query
// package and an optional result cache into the single Search entry
// point cmd/querycli drives.
package engine

import (
	"boolsearch/internal/query"
	"boolsearch/internal/searchcache"
)

// Engine answers boolean queries against a loaded index, optionally
// caching results by exact query text.
type Engine struct {
	idx   query.Index
	cache searchcache.Cache
}

// New wraps idx. cache may be nil to disable result caching.
func New(idx query.Index, cache searchcache.Cache) *Engine {
	return &Engine{idx: idx, cache: cache}
}

// Search runs queryText against the wrapped index, consulting and
// populating the cache (if any) around the underlying query.Search call.
func (e *Engine) Search(queryText string) query.Outcome {
	if e.cache != nil {
		if cached, ok := e.cache.Get(queryText); ok {
			return cached
		}
	}

	outcome := query.Search(e.idx, queryText)

	if e.cache != nil {
		e.cache.Put(queryText, outcome)
	}
	return outcome
}

// Close releases the engine's cache, if any.
func (e *Engine) Close() error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Close()
}
