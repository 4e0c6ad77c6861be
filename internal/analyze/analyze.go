package analyze

// TokenStem pairs a surface token with its Porter stem.
type TokenStem struct {
	Surface string
	Stem    string
}

// Analyze tokenizes text and stems each surface token. This is the single
// entrypoint both the index builder and the query engine must call so
// that their linguistic pipelines never diverge (spec §4.1's contract).
func Analyze(text string) []TokenStem {
	tokens := Tokenize(text)
	out := make([]TokenStem, 0, len(tokens))
	for _, tok := range tokens {
		st := Stem(tok)
		if st == "" {
			continue
		}
		out = append(out, TokenStem{Surface: tok, Stem: st})
	}
	return out
}
