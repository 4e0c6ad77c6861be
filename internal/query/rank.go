package query

import (
	"math"
	"sort"
	"strings"

	"boolsearch/internal/analyze"
)

// maxResults caps how many ranked hits Search returns, mirroring
// search()'s "i < 100" loop bound.
const maxResults = 100

// Result is one ranked search hit.
type Result struct {
	DocID int32
	URL   string
	Title string
	Score float64
}

// Outcome is everything a caller needs to report on a query: the capped,
// ranked hits plus how many documents matched before the cap was
// applied.
type Outcome struct {
	Results      []Result
	TotalMatches int
}

// extractQueryTerms stems every non-operator, non-paren token once,
// de-duplicating in first-seen order, mirroring extract_query_terms.
func extractQueryTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || tok == "(" || tok == ")" || isOperatorToken(tok) {
			continue
		}
		stem := analyze.Stem(tok)
		if stem == "" {
			continue
		}
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		terms = append(terms, stem)
	}
	return terms
}

// computeScores mirrors compute_doc_score across every candidate at
// once. docIDs must already be ascending (Eval's set operations
// guarantee this). For each query term, tf lookup is a merge-join
// between docIDs and the term's own ascending posting list — O(n+m)
// per term instead of a linear posting-list scan per (doc, term) pair —
// rather than changing the scoring formula itself.
func computeScores(idx Index, docIDs []int32, queryTerms []string) []float64 {
	docs := idx.Docs()
	totalDocs := float64(len(docs.URL))
	scores := make([]float64, len(docIDs))

	titleLower := make([]string, len(docIDs))
	urlLower := make([]string, len(docIDs))
	for i, docID := range docIDs {
		if docID < 0 || int(docID) >= len(docs.URL) {
			continue
		}
		titleLower[i] = strings.ToLower(docs.Title[docID])
		urlLower[i] = strings.ToLower(docs.URL[docID])
	}

	for _, term := range queryTerms {
		postings := idx.Postings(term)
		if len(postings) == 0 {
			continue
		}
		df := float64(len(postings))
		idf := math.Log((totalDocs+1.0)/(df+1.0)) + 1.0

		i, j := 0, 0
		for i < len(docIDs) && j < len(postings) {
			switch {
			case docIDs[i] == postings[j].DocID:
				if postings[j].TF > 0 {
					tfWeight := 1.0 + math.Log(float64(postings[j].TF))
					scores[i] += tfWeight * idf
					if strings.Contains(titleLower[i], term) {
						scores[i] += 0.35
					}
					if strings.Contains(urlLower[i], term) {
						scores[i] += 0.15
					}
				}
				i++
				j++
			case docIDs[i] < postings[j].DocID:
				i++
			default:
				j++
			}
		}
	}

	for i, docID := range docIDs {
		if docID < 0 || int(docID) >= len(docs.URL) {
			scores[i] = -1
			continue
		}
		if int(docID) < len(docs.Length) && docs.Length[docID] > 0 {
			scores[i] /= math.Sqrt(float64(docs.Length[docID]))
		}
	}
	return scores
}

// Search runs queryText end to end: tokenize, convert to RPN, evaluate
// against idx's postings, then rank the matching doc_ids by
// computeScores (descending score, doc_id ascending on ties) and cap
// at maxResults. Mirrors search().
func Search(idx Index, queryText string) Outcome {
	tokens := Tokenize(queryText)
	if len(tokens) == 0 {
		return Outcome{}
	}

	rpn := ToRPN(tokens)
	docIDs := Eval(idx, rpn)
	outcome := Outcome{TotalMatches: len(docIDs)}
	if len(docIDs) == 0 {
		return outcome
	}

	queryTerms := extractQueryTerms(tokens)
	scores := computeScores(idx, docIDs, queryTerms)

	order := make([]int, len(docIDs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		return docIDs[i] < docIDs[j]
	})

	docs := idx.Docs()
	limit := len(order)
	if limit > maxResults {
		limit = maxResults
	}
	outcome.Results = make([]Result, 0, limit)
	for _, i := range order[:limit] {
		docID := docIDs[i]
		if docID < 0 || int(docID) >= len(docs.URL) {
			continue
		}
		outcome.Results = append(outcome.Results, Result{
			DocID: docID,
			URL:   docs.URL[docID],
			Title: docs.Title[docID],
			Score: scores[i],
		})
	}
	return outcome
}
