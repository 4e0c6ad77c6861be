// Package corpus accumulates documents into an in-memory inverted index
// during a build, mirroring original_source/search_engine/src/index_builder.cpp's
// IndexBuilder but using Go's native slice/map containers in place of the
// original's hand-rolled DynamicArray/HashMap.
package corpus

// Posting is a (doc_id, term_freq) pair for one term in one document.
type Posting struct {
	DocID int32
	TF    int32
}

// Documents holds three dense, doc_id-indexed parallel arrays. A hole
// (doc_id never written) has empty URL/Title and Length 0.
type Documents struct {
	URL    []string
	Title  []string
	Length []int32
}

// GrowTo extends the arrays with holes, if necessary, so docID is a
// valid index.
func (d *Documents) GrowTo(docID int) {
	for len(d.URL) <= docID {
		d.URL = append(d.URL, "")
		d.Title = append(d.Title, "")
		d.Length = append(d.Length, 0)
	}
}

// IsHole reports whether docID has never had a document written to it.
func (d *Documents) IsHole(docID int) bool {
	if docID < 0 || docID >= len(d.URL) {
		return true
	}
	return d.URL[docID] == "" && d.Title[docID] == "" && d.Length[docID] == 0
}
