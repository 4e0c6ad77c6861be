package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddDocumentTracksLengthAndPostings(t *testing.T) {
	b := NewBuilder(nil)
	b.AddDocument(0, "u0", "Vault", "The vault dweller found a pip-boy in the vault.")

	if got := b.Docs().Length[0]; got == 0 {
		t.Fatalf("expected non-zero surface token count, got %d", got)
	}

	postings := b.Postings("vault")
	if len(postings) != 1 || postings[0].DocID != 0 || postings[0].TF != 2 {
		t.Fatalf("Postings(vault) = %#v, want one posting with tf=2", postings)
	}
}

func TestAddDocumentLeavesHoles(t *testing.T) {
	b := NewBuilder(nil)
	b.AddDocument(2, "u2", "Two", "Some filler text that is long enough to count as content here.")

	if !b.Docs().IsHole(0) || !b.Docs().IsHole(1) {
		t.Fatalf("expected doc 0 and 1 to be holes")
	}
	if b.Docs().IsHole(2) {
		t.Fatalf("expected doc 2 to not be a hole")
	}
}

func TestBuildFromStreamSkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.jsonl")

	lines := `{"doc_id": 0, "url": "u0", "title": "Vault", "text": "The vault dweller found a pip-boy in the vault, deep underground."}
short
{"doc_id": 1, "url": "u1", "title": "Short", "text": "too short"}
{"url": "u2", "title": "NoDocID", "text": "This document is missing its doc_id field entirely, so it must be skipped."}
{"doc_id": 2, "url": "u2", "title": "Escapes", "text": "Line one\nLine two\tindented \"quoted\" text that is long enough to pass the length check."}
`
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBuilder(nil)
	if err := b.BuildFromStream(path); err != nil {
		t.Fatalf("BuildFromStream: %v", err)
	}

	if b.Docs().IsHole(0) {
		t.Fatalf("doc 0 should have been indexed")
	}
	if !b.Docs().IsHole(1) {
		t.Fatalf("doc 1 (too-short text) should have been skipped")
	}
	if b.Docs().IsHole(2) {
		t.Fatalf("doc 2 (with escapes) should have been indexed")
	}
	if b.Docs().Title[2] != "Escapes" {
		t.Fatalf("title = %q, want %q", b.Docs().Title[2], "Escapes")
	}
}
