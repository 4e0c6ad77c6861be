package query

import (
	"boolsearch/internal/analyze"
	"boolsearch/internal/corpus"
)

// Index is the read side Eval and Search need: posting lists keyed by
// stemmed term, plus the document arrays to enumerate "not" queries'
// universe against. Every posting list Postings returns must already be
// ascending by doc_id — diskindex.Index guarantees this on load;
// corpus.Builder only holds to it if AddDocument was called in ascending
// doc_id order, so it is a fine Index for tests but not a substitute for
// diskindex.Index once documents can arrive out of order.
type Index interface {
	Postings(term string) []corpus.Posting
	Docs() *corpus.Documents
}

func intersect(a, b []int32) []int32 {
	result := make([]int32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return result
}

func unionLists(a, b []int32) []int32 {
	result := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && (j >= len(b) || a[i] < b[j]):
			result = append(result, a[i])
			i++
		case j < len(b) && (i >= len(a) || b[j] < a[i]):
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}

func difference(a, b []int32) []int32 {
	result := make([]int32, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j >= len(b):
			result = append(result, a[i])
			i++
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		default:
			j++
		}
	}
	return result
}

// allDocumentIDs returns every non-hole doc_id, ascending — the
// universe a leading "not" negates against.
func allDocumentIDs(docs *corpus.Documents) []int32 {
	ids := make([]int32, 0, len(docs.URL))
	for i := range docs.URL {
		if !docs.IsHole(i) {
			ids = append(ids, int32(i))
		}
	}
	return ids
}

// postingDocIDs returns the doc_ids (already ascending, per the on-disk
// sort invariant) carrying stemmedTerm.
func postingDocIDs(idx Index, stemmedTerm string) []int32 {
	postings := idx.Postings(stemmedTerm)
	ids := make([]int32, len(postings))
	for i, p := range postings {
		ids[i] = p.DocID
	}
	return ids
}

// Eval evaluates an RPN token stream over idx, mirroring eval_rpn.
// Malformed RPN underflows the operand stack rather than erroring: a
// leading binary operator with nothing pushed yet is simply skipped, and
// a leading "not" treats the missing left operand as the full document
// universe.
func Eval(idx Index, rpn []string) []int32 {
	var stack [][]int32

	for _, tok := range rpn {
		if !isOperatorToken(tok) {
			stack = append(stack, postingDocIDs(idx, analyze.Stem(tok)))
			continue
		}

		if tok == "not" {
			if len(stack) == 0 {
				continue
			}
			right := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var left []int32
			if len(stack) > 0 {
				left = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			} else {
				left = allDocumentIDs(idx.Docs())
			}
			stack = append(stack, difference(left, right))
			continue
		}

		if len(stack) < 2 {
			continue
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		if tok == "and" {
			stack = append(stack, intersect(left, right))
		} else {
			stack = append(stack, unionLists(left, right))
		}
	}

	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}
