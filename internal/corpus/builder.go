package corpus

import (
	"boolsearch/internal/analyze"
)

// TermSink receives every stem the builder produces, in document order.
// internal/zipf.Counter implements this; Builder does not import the zipf
// package directly so the two stay decoupled (cmd/indexer wires them
// together).
type TermSink interface {
	AddTerm(term string)
}

// Stats mirrors original_source/search_engine/src/index_builder.h's
// BuildStats: build-time counters for diagnostics only, not load-bearing.
type Stats struct {
	DocCount        int
	TotalTokens     int64
	TotalStems      int64
	TotalTokenChars int64
	TotalStemChars  int64
	TotalTextBytes  int64
}

// Builder accumulates documents into an in-memory inverted index. It is
// not safe for concurrent use, matching add_document's non-reentrancy.
type Builder struct {
	terms     []string
	termIndex map[string]int
	postings  [][]Posting

	docs Documents

	sink  TermSink
	stats Stats
}

// NewBuilder creates an empty builder. sink may be nil.
func NewBuilder(sink TermSink) *Builder {
	return &Builder{
		termIndex: make(map[string]int),
		sink:      sink,
	}
}

// AddDocument analyzes text and folds it into the inverted index, growing
// the document arrays to cover docID (inserting holes for any gap).
func (b *Builder) AddDocument(docID int, url, title, text string) {
	b.docs.GrowTo(docID)
	b.docs.URL[docID] = url
	b.docs.Title[docID] = title

	b.stats.TotalTextBytes += int64(len(text))

	pairs := analyze.Analyze(text)
	b.docs.Length[docID] = int32(len(pairs))
	b.stats.TotalTokens += int64(len(pairs))

	termFreq := make(map[string]int32, len(pairs))
	for _, p := range pairs {
		b.stats.TotalTokenChars += int64(len(p.Surface))
		b.stats.TotalStems++
		b.stats.TotalStemChars += int64(len(p.Stem))
		if b.sink != nil {
			b.sink.AddTerm(p.Stem)
		}
		termFreq[p.Stem]++
	}

	for term, tf := range termFreq {
		idx, ok := b.termIndex[term]
		if !ok {
			idx = len(b.terms)
			b.terms = append(b.terms, term)
			b.termIndex[term] = idx
			b.postings = append(b.postings, nil)
		}
		b.postings[idx] = append(b.postings[idx], Posting{DocID: int32(docID), TF: tf})
	}
}

// Terms returns the vocabulary in insertion order — the order save
// assigns dense term_ids in.
func (b *Builder) Terms() []string {
	return b.terms
}

// Postings returns the (unsorted-by-call-order) posting list for term.
func (b *Builder) Postings(term string) []Posting {
	idx, ok := b.termIndex[term]
	if !ok {
		return nil
	}
	return b.postings[idx]
}

// Docs returns the builder's document arrays.
func (b *Builder) Docs() *Documents {
	return &b.docs
}

// Stats returns build-time counters.
func (b *Builder) Stats() Stats {
	s := b.stats
	s.DocCount = 0
	for i := range b.docs.URL {
		if !b.docs.IsHole(i) {
			s.DocCount++
		}
	}
	return s
}

// VocabularySize returns the number of distinct terms seen so far.
func (b *Builder) VocabularySize() int {
	return len(b.terms)
}

// TotalPostings returns the sum of every posting list's length.
func (b *Builder) TotalPostings() int64 {
	var total int64
	for _, p := range b.postings {
		total += int64(len(p))
	}
	return total
}
