package diskindex

import (
	"os"
	"path/filepath"
	"testing"

	"boolsearch/internal/corpus"
)

func buildSample() *corpus.Builder {
	b := corpus.NewBuilder(nil)
	b.AddDocument(0, "http://vault.example/101", "Vault 101", "The vault dweller left the vault to explore the wasteland.")
	b.AddDocument(2, "http://raiders.example/1", "Raider Camp", "Raiders ambushed the caravan near the old highway overpass.")
	b.AddDocument(3, "http://nuka.example/cola", "Nuka-Cola", "Nuka Cola Quantum is a rare glowing variant of Nuka Cola.")
	return b
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	b := buildSample()

	if err := Save(dir, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := idx.DocCount(), 4; got != want {
		t.Fatalf("DocCount = %d, want %d", got, want)
	}
	if idx.Docs().IsHole(0) || idx.Docs().IsHole(2) || idx.Docs().IsHole(3) {
		t.Fatalf("loaded index lost a document")
	}
	if !idx.Docs().IsHole(1) {
		t.Fatalf("loaded index fabricated doc 1")
	}
	if idx.Docs().URL[3] != "http://nuka.example/cola" {
		t.Fatalf("URL[3] = %q", idx.Docs().URL[3])
	}
	if idx.Docs().Title[2] != "Raider Camp" {
		t.Fatalf("Title[2] = %q", idx.Docs().Title[2])
	}

	vaultPostings := idx.Postings("vault")
	if len(vaultPostings) != 1 || vaultPostings[0].DocID != 0 || vaultPostings[0].TF != 2 {
		t.Fatalf("Postings(vault) = %#v", vaultPostings)
	}

	nukaPostings := idx.Postings("nuka")
	if len(nukaPostings) != 1 || nukaPostings[0].DocID != 3 {
		t.Fatalf("Postings(nuka) = %#v", nukaPostings)
	}

	if idx.Postings("nonexistent") != nil {
		t.Fatalf("expected nil postings for unknown term")
	}
}

func TestPostingListsAreSortedByDocIDRegardlessOfInsertionOrder(t *testing.T) {
	dir := t.TempDir()
	b := corpus.NewBuilder(nil)
	b.AddDocument(5, "u5", "Five", "raider raider raider appears only in the later document here.")
	b.AddDocument(1, "u1", "One", "a single raider appears in this earlier document as well now.")

	if err := Save(dir, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	postings := idx.Postings("raider")
	if len(postings) != 2 {
		t.Fatalf("Postings(raider) = %#v, want 2 entries", postings)
	}
	if postings[0].DocID != 1 || postings[1].DocID != 5 {
		t.Fatalf("Postings(raider) not sorted ascending by doc_id: %#v", postings)
	}
}

func TestLoadToleratesMissingDocLengthsFile(t *testing.T) {
	dir := t.TempDir()
	b := buildSample()
	if err := Save(dir, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, lengthsFile)); err != nil {
		t.Fatalf("removing %s: %v", lengthsFile, err)
	}

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load without doc_lengths.txt: %v", err)
	}
	if idx.Docs().URL[3] != "http://nuka.example/cola" {
		t.Fatalf("documents should still load without doc_lengths.txt")
	}
}

func TestLoadFailsOnMissingVocabulary(t *testing.T) {
	dir := t.TempDir()
	b := buildSample()
	if err := Save(dir, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, vocabularyFile)); err != nil {
		t.Fatalf("removing %s: %v", vocabularyFile, err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected Load to fail without vocabulary.txt")
	}
}

func TestSaveRoundTripIsStable(t *testing.T) {
	dir1 := filepath.Join(t.TempDir(), "first")
	dir2 := filepath.Join(t.TempDir(), "second")
	b := buildSample()

	if err := Save(dir1, b); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	idx, err := Load(dir1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Save(dir2, idx); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	idx2, err := Load(dir2)
	if err != nil {
		t.Fatalf("Load second: %v", err)
	}
	if idx2.DocCount() != idx.DocCount() {
		t.Fatalf("DocCount drifted across re-save: %d vs %d", idx2.DocCount(), idx.DocCount())
	}
	if len(idx2.Postings("vault")) != len(idx.Postings("vault")) {
		t.Fatalf("vault postings drifted across re-save")
	}
}
