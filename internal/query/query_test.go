package query

import (
	"testing"

	"boolsearch/internal/corpus"
)

// fakeIndex lets tests build a small in-memory index without going
// through corpus.Builder or the disk format.
type fakeIndex struct {
	postings map[string][]corpus.Posting
	docs     corpus.Documents
}

func (f *fakeIndex) Postings(term string) []corpus.Posting { return f.postings[term] }
func (f *fakeIndex) Docs() *corpus.Documents { return &f.docs }

// buildVaultCorpus constructs a small fixture corpus: doc 0 is about
// the vault, doc 1 about nuka-cola, doc 2 about raiders, doc 3 about
// both the vault and raiders.
func buildVaultCorpus() *fakeIndex {
	b := corpus.NewBuilder(nil)
	b.AddDocument(0, "http://example.com/vault101", "Vault 101", "The vault dweller left the vault to explore the wasteland outside.")
	b.AddDocument(1, "http://example.com/nuka", "Nuka-Cola Quantum", "Nuka Cola Quantum is a rare glowing variant of classic Nuka Cola soda.")
	b.AddDocument(2, "http://example.com/raiders", "Raider Gang", "A raider gang ambushed the caravan near the old highway overpass today.")
	b.AddDocument(3, "http://example.com/vault-raiders", "Vault Under Siege", "Raiders attacked the vault entrance but the vault door held against the raiders.")

	f := &fakeIndex{postings: make(map[string][]corpus.Posting)}
	for _, term := range b.Terms() {
		f.postings[term] = append([]corpus.Posting(nil), b.Postings(term)...)
	}
	f.docs = *b.Docs()
	return f
}

func docIDsOf(results []Result) []int32 {
	ids := make([]int32, len(results))
	for i, r := range results {
		ids[i] = r.DocID
	}
	return ids
}

func containsID(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestSearchSingleTerm(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "vault")
	if out.TotalMatches != 2 {
		t.Fatalf("TotalMatches = %d, want 2", out.TotalMatches)
	}
	ids := docIDsOf(out.Results)
	if !containsID(ids, 0) || !containsID(ids, 3) {
		t.Fatalf("results = %v, want docs 0 and 3", ids)
	}
}

func TestSearchAnd(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "vault and raiders")
	ids := docIDsOf(out.Results)
	if len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("vault and raiders = %v, want only doc 3", ids)
	}
}

func TestSearchOr(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "nuka or raiders")
	ids := docIDsOf(out.Results)
	if len(ids) != 3 || !containsID(ids, 1) || !containsID(ids, 2) || !containsID(ids, 3) {
		t.Fatalf("nuka or raiders = %v, want docs 1, 2 and 3", ids)
	}
}

func TestSearchNotBinary(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "vault not raiders")
	ids := docIDsOf(out.Results)
	if len(ids) != 1 || ids[0] != 0 {
		t.Fatalf("vault not raiders = %v, want only doc 0", ids)
	}
}

func TestSearchLeadingNotUsesUniverse(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "not nuka")
	ids := docIDsOf(out.Results)
	if containsID(ids, 1) {
		t.Fatalf("not nuka should exclude doc 1, got %v", ids)
	}
	if len(ids) != 3 {
		t.Fatalf("not nuka = %v, want the other 3 docs", ids)
	}
}

func TestSearchParenthesesOverridePrecedence(t *testing.T) {
	idx := buildVaultCorpus()
	withParens := Search(idx, "vault and (raiders or nuka)")
	ids := docIDsOf(withParens.Results)
	if len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("vault and (raiders or nuka) = %v, want only doc 3", ids)
	}
}

func TestSearchEmptyQueryReturnsNoResults(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "   ")
	if out.TotalMatches != 0 || len(out.Results) != 0 {
		t.Fatalf("empty query should match nothing, got %+v", out)
	}
}

func TestSearchUnknownTermReturnsNoResults(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "brotherhood")
	if out.TotalMatches != 0 {
		t.Fatalf("unknown term should match nothing, got %d", out.TotalMatches)
	}
}

func TestSearchSortsResultsByDescendingScore(t *testing.T) {
	idx := buildVaultCorpus()
	out := Search(idx, "vault")
	if len(out.Results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(out.Results))
	}
	// docs 0 and 3 both contain "vault" in their title and URL. Whatever
	// their scores, results must come back sorted by descending score.
	for i := 1; i < len(out.Results); i++ {
		if out.Results[i-1].Score < out.Results[i].Score {
			t.Fatalf("results not sorted by descending score: %+v", out.Results)
		}
	}
}

func TestToRPNOperatorPrecedence(t *testing.T) {
	tokens := Tokenize("vault or raiders and nuka")
	rpn := ToRPN(tokens)
	want := []string{"vault", "raiders", "nuka", "and", "or"}
	if len(rpn) != len(want) {
		t.Fatalf("ToRPN = %v, want %v", rpn, want)
	}
	for i := range want {
		if rpn[i] != want[i] {
			t.Fatalf("ToRPN = %v, want %v", rpn, want)
		}
	}
}

func TestTokenizeStripsPunctuationAndKeepsApostrophes(t *testing.T) {
	got := Tokenize("Don't AND (raiders!)")
	want := []string{"don't", "and", "(", "raiders", ")"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize = %v, want %v", got, want)
		}
	}
}
