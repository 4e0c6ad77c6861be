package diskindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"boolsearch/internal/corpus"
)

// Save writes src out as the four-file on-disk index format, mirroring
// index_builder.cpp's save_index. dir is created if it does not already
// exist. Every posting list is sorted ascending by doc_id before it is
// written, regardless of the order AddDocument calls arrived in at
// build time.
func Save(dir string, src Source) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating index directory %s: %w", dir, err)
	}

	if err := saveVocabulary(dir, src); err != nil {
		return err
	}
	if err := saveIndexBin(dir, src); err != nil {
		return err
	}
	if err := saveDocuments(dir, src); err != nil {
		return err
	}
	if err := saveLengths(dir, src); err != nil {
		return err
	}
	return nil
}

func saveVocabulary(dir string, src Source) error {
	path := filepath.Join(dir, vocabularyFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for termID, term := range src.Terms() {
		fmt.Fprintf(w, "%d %s %d\n", termID, term, len(src.Postings(term)))
	}
	return w.Flush()
}

func saveIndexBin(dir string, src Source) error {
	path := filepath.Join(dir, indexFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	terms := src.Terms()
	for _, term := range terms {
		postings := append([]corpus.Posting(nil), src.Postings(term)...)
		sort.Slice(postings, func(i, j int) bool { return postings[i].DocID < postings[j].DocID })

		var buf [4]byte
		binary.NativeEndian.PutUint32(buf[:], uint32(len(postings)))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		for _, p := range postings {
			binary.NativeEndian.PutUint32(buf[:], uint32(p.DocID))
			if _, err := w.Write(buf[:]); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			binary.NativeEndian.PutUint32(buf[:], uint32(p.TF))
			if _, err := w.Write(buf[:]); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}
	return w.Flush()
}

func saveDocuments(dir string, src Source) error {
	path := filepath.Join(dir, documentsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	docs := src.Docs()
	for docID := range docs.URL {
		fmt.Fprintf(w, "%d\t%s\t%s\n", docID, docs.URL[docID], docs.Title[docID])
	}
	return w.Flush()
}

func saveLengths(dir string, src Source) error {
	path := filepath.Join(dir, lengthsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, length := range src.Docs().Length {
		fmt.Fprintf(w, "%d\n", length)
	}
	return w.Flush()
}
