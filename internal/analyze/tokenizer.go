// Package analyze implements the linguistic pipeline shared by the index
// builder and the query engine: tokenization followed by Porter stemming.
// Both sides of the system must call Analyze (or Stem directly, for query
// terms) so that indexing and querying never diverge.
package analyze

import "strings"

// stopWords is the closed set of words filtered out before stemming. It
// matches the original tokenizer's list exactly, including "not" and "or"
// — both are stop words in document text and reserved operators in
// queries, so both paths consistently remove them from term positions.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {}, "for": {}, "from": {},
	"has": {}, "he": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "this": {}, "but": {}, "they": {}, "have": {},
	"had": {}, "what": {}, "when": {}, "where": {}, "who": {}, "which": {}, "why": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"no": {}, "nor": {}, "not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"can": {}, "just": {}, "should": {}, "now": {},
	"you": {}, "your": {}, "we": {}, "our": {}, "us": {}, "or": {}, "if": {}, "do": {}, "did": {}, "does": {},
	"about": {}, "up": {}, "out": {}, "would": {}, "could": {}, "may": {}, "might": {}, "been": {},
	"also": {}, "into": {}, "over": {}, "after": {}, "before": {}, "through": {}, "between": {},
	"her": {}, "him": {}, "his": {}, "she": {}, "them": {}, "their": {}, "my": {}, "me": {},
	"any": {}, "there": {}, "then": {}, "these": {}, "those": {}, "am": {}, "being": {},
	"here": {}, "while": {}, "during": {}, "under": {}, "again": {}, "once": {},
}

// IsStopWord reports whether w (already lower-cased) is in the stop-word set.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Tokenize splits text into surface tokens: maximal runs of ASCII letters
// that may also contain an apostrophe, provided the run is already
// non-empty ("don't" is one token; a leading "'" is a separator). Each
// surface token is lower-cased and kept only if its length is at least 2
// and it is not a stop word.
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		lower := strings.ToLower(cur.String())
		cur.Reset()
		if len(lower) >= 2 && !IsStopWord(lower) {
			tokens = append(tokens, lower)
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isAlpha(c) || (c == '\'' && cur.Len() > 0) {
			cur.WriteByte(c)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
