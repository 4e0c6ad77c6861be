// Package query implements the boolean query language: tokenizing and
// normalizing raw query text, converting infix to RPN via shunting-yard,
// evaluating RPN over posting lists, and tf-idf-style ranking of the
// matching documents. Grounded on
// original_source/search_engine/src/search_engine.cpp.
package query

import (
	"strings"
)

// Tokenize splits raw query text into normalized tokens, mirroring
// search()'s prepared_query pass: "(" and ")" are padded with spaces so
// they always split off as their own tokens, then every whitespace-
// separated piece is run through normalizeToken. Empty results after
// normalization (e.g. a lone "---") are dropped.
func Tokenize(queryText string) []string {
	var prepared strings.Builder
	prepared.Grow(len(queryText) * 2)
	for i := 0; i < len(queryText); i++ {
		c := queryText[i]
		if c == '(' || c == ')' {
			prepared.WriteByte(' ')
			prepared.WriteByte(c)
			prepared.WriteByte(' ')
		} else {
			prepared.WriteByte(c)
		}
	}

	fields := strings.Fields(prepared.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := normalizeToken(f); n != "" {
			tokens = append(tokens, n)
		}
	}
	return tokens
}

// normalizeToken lowercases (ASCII-only, matching to_lower_ascii) and
// trims any leading/trailing character that is neither alphanumeric nor
// an apostrophe, so "Raiders!" becomes "raiders" and "don't" keeps its
// apostrophe. "(" and ")" pass through untouched.
func normalizeToken(token string) string {
	if token == "(" || token == ")" {
		return token
	}

	lowered := toLowerASCII(token)

	left := 0
	for left < len(lowered) && !isAlnum(lowered[left]) && lowered[left] != '\'' {
		left++
	}
	right := len(lowered)
	for right > left && !isAlnum(lowered[right-1]) && lowered[right-1] != '\'' {
		right--
	}
	if right <= left {
		return ""
	}
	return lowered[left:right]
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isOperatorToken(tok string) bool {
	return tok == "and" || tok == "or" || tok == "not"
}
