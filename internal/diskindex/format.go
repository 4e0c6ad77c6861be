// Package diskindex implements the four-file on-disk index format
// (vocabulary.txt, index.bin, documents.txt, doc_lengths.txt) and the
// Save/Load pair that produces and consumes it, mirroring
// index_builder.cpp's save_index and search_engine.cpp's load_index.
package diskindex

import "boolsearch/internal/corpus"

const (
	vocabularyFile = "vocabulary.txt"
	indexFile      = "index.bin"
	documentsFile  = "documents.txt"
	lengthsFile    = "doc_lengths.txt"
)

// Source is anything Save can serialize: corpus.Builder (at build time)
// and Index (for round-trip save-after-load tests) both implement it.
type Source interface {
	Terms() []string
	Postings(term string) []corpus.Posting
	Docs() *corpus.Documents
}
