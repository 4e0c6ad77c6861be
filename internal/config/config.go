// Package config loads YAML configuration for cmd/indexer and
// cmd/querycli, grounded on pkg/config from the distributed-search
// reference repo's Load(path)-with-defaults pattern, scoped down to the
// settings this module actually has: index paths, logging, and cache
// sizing.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for both binaries. A binary
// only reads the sections it needs.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
	Cache   CacheConfig   `yaml:"cache"`
}

// IndexConfig points at the on-disk index and, for cmd/indexer, the
// input document stream and Zipf report destination.
type IndexConfig struct {
	Dir         string `yaml:"dir"`
	InputPath   string `yaml:"inputPath"`
	ZipfCSVPath string `yaml:"zipfCsvPath"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CacheConfig controls the query result cache cmd/querycli wraps its
// engine in.
type CacheConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MemoryLimit int    `yaml:"memoryLimit"`
	SQLitePath  string `yaml:"sqlitePath"`
}

// Load reads a YAML config file, if path is non-empty, layering it over
// defaultConfig. A missing path is not an error — callers can drive
// everything through flags instead.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Dir:         "index",
			InputPath:   "documents.jsonl",
			ZipfCSVPath: "zipf.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled:     true,
			MemoryLimit: 256,
		},
	}
}
