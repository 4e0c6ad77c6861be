// Package zipf tallies term frequencies across a build and writes them
// out as a rank/frequency/term CSV report, mirroring
// original_source/search_engine/src/zipf_analysis.cpp.
package zipf

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// csvRowLimit caps how many ranks save_to_csv ever writes, regardless of
// vocabulary size.
const csvRowLimit = 10000

// TermFrequency is one ranked row of the report.
type TermFrequency struct {
	Term      string
	Frequency int
	Rank      int
}

// Counter tallies how many times each stemmed term was seen across a
// build. It implements corpus.TermSink so a Builder can feed it
// directly. Counter is not safe for concurrent use.
type Counter struct {
	frequencies map[string]int
	sorted      []TermFrequency
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{frequencies: make(map[string]int)}
}

// AddTerm records one occurrence of term.
func (c *Counter) AddTerm(term string) {
	c.frequencies[term]++
}

// Finalize ranks every term by descending frequency, breaking ties by
// term ascending for determinism (the original's HashMap iteration
// order is unspecified, so it has no equivalent tie-break to preserve).
// Must be called before SaveCSV, which writes no rows otherwise.
// VocabularySize and TotalTerms read the raw counts and do not need it.
func (c *Counter) Finalize() {
	c.sorted = make([]TermFrequency, 0, len(c.frequencies))
	for term, freq := range c.frequencies {
		c.sorted = append(c.sorted, TermFrequency{Term: term, Frequency: freq})
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		if c.sorted[i].Frequency != c.sorted[j].Frequency {
			return c.sorted[i].Frequency > c.sorted[j].Frequency
		}
		return c.sorted[i].Term < c.sorted[j].Term
	})
	for i := range c.sorted {
		c.sorted[i].Rank = i + 1
	}
}

// VocabularySize returns the number of distinct terms seen.
func (c *Counter) VocabularySize() int {
	return len(c.frequencies)
}

// TotalTerms returns the sum of every term's frequency.
func (c *Counter) TotalTerms() int64 {
	var total int64
	for _, freq := range c.frequencies {
		total += int64(freq)
	}
	return total
}

// SaveCSV writes the ranked report to path as "rank,frequency,term",
// capped at the first csvRowLimit rows, mirroring save_to_csv.
func (c *Counter) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"rank", "frequency", "term"}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	limit := len(c.sorted)
	if limit > csvRowLimit {
		limit = csvRowLimit
	}
	for _, tf := range c.sorted[:limit] {
		row := []string{
			strconv.Itoa(tf.Rank),
			strconv.Itoa(tf.Frequency),
			tf.Term,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
