package diskindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"boolsearch/internal/corpus"
)

// Index is an on-disk index loaded into memory, ready for querying or
// re-saving. It implements Source so a loaded index can be round-tripped
// back through Save.
type Index struct {
	terms     []string
	termIndex map[string]int
	postings  [][]corpus.Posting
	docs      corpus.Documents
}

// Load reads the four-file format written by Save out of dir, mirroring
// search_engine.cpp's load_index. vocabulary.txt, index.bin and
// documents.txt must all be present; a missing doc_lengths.txt is
// tolerated and leaves every document's length at 0.
func Load(dir string) (*Index, error) {
	idx := &Index{termIndex: make(map[string]int)}

	if err := idx.loadVocabulary(dir); err != nil {
		return nil, err
	}
	if err := idx.loadIndexBin(dir); err != nil {
		return nil, err
	}
	if err := idx.loadDocuments(dir); err != nil {
		return nil, err
	}
	if err := idx.loadLengths(dir); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx *Index) loadVocabulary(dir string) error {
	path := filepath.Join(dir, vocabularyFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	type row struct {
		id   int
		term string
	}
	var rows []row

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("parsing %s: bad term_id %q", path, fields[0])
		}
		rows = append(rows, row{id: id, term: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	idx.terms = make([]string, len(rows))
	for _, r := range rows {
		if r.id < 0 || r.id >= len(rows) {
			return fmt.Errorf("parsing %s: term_id %d out of range for %d terms", path, r.id, len(rows))
		}
		idx.terms[r.id] = r.term
		idx.termIndex[r.term] = r.id
	}
	idx.postings = make([][]corpus.Posting, len(rows))
	return nil
}

func (idx *Index) loadIndexBin(dir string) error {
	path := filepath.Join(dir, indexFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var buf [4]byte
	for termID := range idx.terms {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return fmt.Errorf("reading %s: truncated list_size for term_id %d: %w", path, termID, err)
		}
		listSize := binary.NativeEndian.Uint32(buf[:])

		postings := make([]corpus.Posting, listSize)
		for i := range postings {
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return fmt.Errorf("reading %s: truncated posting in term_id %d: %w", path, termID, err)
			}
			postings[i].DocID = int32(binary.NativeEndian.Uint32(buf[:]))
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return fmt.Errorf("reading %s: truncated posting in term_id %d: %w", path, termID, err)
			}
			postings[i].TF = int32(binary.NativeEndian.Uint32(buf[:]))
		}
		idx.postings[termID] = postings
	}
	return nil
}

func (idx *Index) loadDocuments(dir string) error {
	path := filepath.Join(dir, documentsFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 1 {
			continue
		}
		docID, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("parsing %s: bad doc_id %q", path, fields[0])
		}
		idx.docs.GrowTo(docID)
		if len(fields) > 1 {
			idx.docs.URL[docID] = fields[1]
		}
		if len(fields) > 2 {
			idx.docs.Title[docID] = fields[2]
		}
	}
	return scanner.Err()
}

func (idx *Index) loadLengths(dir string) error {
	path := filepath.Join(dir, lengthsFile)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	docID := 0
	for scanner.Scan() {
		length, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return fmt.Errorf("parsing %s line %d: %w", path, docID+1, err)
		}
		idx.docs.GrowTo(docID)
		idx.docs.Length[docID] = int32(length)
		docID++
	}
	return scanner.Err()
}

// Terms returns the vocabulary in term_id order.
func (idx *Index) Terms() []string { return idx.terms }

// Postings returns term's posting list, already sorted ascending by
// doc_id.
func (idx *Index) Postings(term string) []corpus.Posting {
	id, ok := idx.termIndex[term]
	if !ok {
		return nil
	}
	return idx.postings[id]
}

// Docs returns the loaded document arrays.
func (idx *Index) Docs() *corpus.Documents { return &idx.docs }

// DocCount returns the number of doc_ids covered (including holes).
func (idx *Index) DocCount() int { return len(idx.docs.URL) }
