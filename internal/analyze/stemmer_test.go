package analyze

import "testing"

func TestStemCanonicalExamples(t *testing.T) {
	cases := map[string]string{
		"running":        "run",
		"ponies":         "poni",
		"national":       "nation",
		"generalization": "gener",
		"effective":      "effect",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStemShortWordsAreUnchanged(t *testing.T) {
	for _, w := range []string{"a", "an", "ox", "to"} {
		if got := Stem(w); got != w {
			t.Errorf("Stem(%q) = %q, want unchanged %q", w, got, w)
		}
	}
}

func TestStemIsStableAcrossInflections(t *testing.T) {
	forms := []string{"running", "ran", "runs", "run"}
	want := Stem("running")
	for _, f := range forms {
		if f == "ran" {
			// "ran" is an irregular form; Porter stemming is
			// suffix-based and does not normalize irregulars.
			continue
		}
		if got := Stem(f); got != want {
			t.Errorf("Stem(%q) = %q, want %q (parity with %q)", f, got, want, "running")
		}
	}
}
