// Command querycli loads a boolean search index and answers queries
// read one per line from stdin, mirroring main_cli.cpp.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"boolsearch/internal/applog"
	"boolsearch/internal/config"
	"boolsearch/internal/diskindex"
	"boolsearch/internal/engine"
	"boolsearch/internal/searchcache"
)

const displayLimit = 100

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	indexDir := cfg.Index.Dir
	if flag.NArg() > 0 {
		indexDir = flag.Arg(0)
	}

	applog.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := applog.WithComponent("querycli")

	idx, err := diskindex.Load(indexDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load index from %s\n", indexDir)
		os.Exit(1)
	}

	var cache searchcache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.SQLitePath != "" {
			sqliteCache, err := searchcache.NewSQLiteCache(cfg.Cache.SQLitePath)
			if err != nil {
				log.Warn("opening persistent query cache, falling back to memory", "error", err)
				cache = searchcache.NewMemoryCache(cfg.Cache.MemoryLimit)
			} else {
				cache = sqliteCache
			}
		} else {
			cache = searchcache.NewMemoryCache(cfg.Cache.MemoryLimit)
		}
	}

	eng := engine.New(idx, cache)
	defer eng.Close()

	fmt.Println("\n=== Boolean Search Engine - CLI ===")
	fmt.Println("Enter queries (one per line). Operators: AND, OR, NOT")
	fmt.Println("Example: fallout AND vault OR pip-boy NOT nuka-cola")
	fmt.Println("Press Ctrl+D (Unix) or Ctrl+Z (Windows) to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		queryText := scanner.Text()
		if queryText == "" {
			continue
		}

		start := time.Now()
		outcome := eng.Search(queryText)
		elapsedMS := float64(time.Since(start)) / float64(time.Millisecond)

		fmt.Printf("Found %d documents (%.1f ms):\n", outcome.TotalMatches, elapsedMS)

		limit := len(outcome.Results)
		if limit > displayLimit {
			limit = displayLimit
		}
		for _, r := range outcome.Results[:limit] {
			fmt.Printf("%d\t%s\t%s\n", r.DocID, r.URL, r.Title)
		}
		if outcome.TotalMatches > limit {
			fmt.Printf("... and %d more results\n", outcome.TotalMatches-limit)
		}
		fmt.Println()
	}
}
