package analyze

// Stem reduces word to its Porter stem. It implements the classic Porter
// algorithm (steps 1a/1b/1c, 2, 3, 4, 5a/5b) in the form of Porter's
// reference C implementation, which departs from the original paper in
// step 2 (bli -> ble in place of abli -> able, plus logi -> log),
// translated from
// original_source/search_engine/src/stemmer.cpp. Words of length <= 2 are
// returned unchanged, matching the short-circuit in the original.
//
// This is deliberately not a call into a Snowball/Porter2 implementation:
// the canonical examples this algorithm must reproduce
// (generalization -> gener, effective -> effect) are Porter1-specific
// reductions that a Porter2 stemmer does not always match. See DESIGN.md.
func Stem(word string) string {
	if len(word) <= 2 {
		return word
	}
	st := &stemmer{word: []byte(word), k: len(word) - 1}
	st.step1ab()
	st.step1c()
	st.step2()
	st.step3()
	st.step4()
	st.step5()
	return string(st.word[:st.k+1])
}

// stemmer holds the mutable cursor state threaded through the Porter
// steps. k is the index of the last letter of the current word; j is the
// index set by ends() marking the boundary before the last-matched
// suffix.
type stemmer struct {
	word []byte
	k    int
	j    int
}

func (s *stemmer) isConsonant(i int) bool {
	switch s.word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !s.isConsonant(i - 1)
	}
	return true
}

// measure computes the Porter "m" value: the number of consonant-vowel
// sequences in word[0..j].
func (s *stemmer) measure() int {
	n := 0
	i := 0
	for {
		if i > s.j {
			return n
		}
		if !s.isConsonant(i) {
			break
		}
		i++
	}
	i++
	for {
		for {
			if i > s.j {
				return n
			}
			if s.isConsonant(i) {
				break
			}
			i++
		}
		i++
		n++
		for {
			if i > s.j {
				return n
			}
			if !s.isConsonant(i) {
				break
			}
			i++
		}
		i++
	}
}

func (s *stemmer) vowelInStem() bool {
	for i := 0; i <= s.j; i++ {
		if !s.isConsonant(i) {
			return true
		}
	}
	return false
}

func (s *stemmer) doubleConsonant(i int) bool {
	if i < 1 {
		return false
	}
	if s.word[i] != s.word[i-1] {
		return false
	}
	return s.isConsonant(i)
}

func (s *stemmer) cvc(i int) bool {
	if i < 2 || !s.isConsonant(i) || s.isConsonant(i-1) || !s.isConsonant(i-2) {
		return false
	}
	switch s.word[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// ends reports whether the current word ends in suf, and if so sets j to
// the index just before the matched suffix.
func (s *stemmer) ends(suf string) bool {
	n := len(suf)
	if suf[n-1] != s.word[s.k] {
		return false
	}
	if n > s.k+1 {
		return false
	}
	if string(s.word[s.k-n+1:s.k+1]) != suf {
		return false
	}
	s.j = s.k - n
	return true
}

// setTo replaces the suffix after j with suf.
func (s *stemmer) setTo(suf string) {
	s.word = append(s.word[:s.j+1:s.j+1], []byte(suf)...)
	s.k = s.j + len(suf)
}

// r replaces the matched suffix with suf only if the stem before it has
// measure > 0.
func (s *stemmer) r(suf string) {
	if s.measure() > 0 {
		s.setTo(suf)
	}
}

func (s *stemmer) step1ab() {
	if s.word[s.k] == 's' {
		switch {
		case s.ends("sses"):
			s.k -= 2
		case s.ends("ies"):
			s.setTo("i")
		case s.word[s.k-1] != 's':
			s.k--
		}
	}
	switch {
	case s.ends("eed"):
		if s.measure() > 0 {
			s.k--
		}
	case (s.ends("ed") || s.ends("ing")) && s.vowelInStem():
		s.k = s.j
		switch {
		case s.ends("at"):
			s.setTo("ate")
		case s.ends("bl"):
			s.setTo("ble")
		case s.ends("iz"):
			s.setTo("ize")
		case s.doubleConsonant(s.k):
			s.k--
			switch s.word[s.k] {
			case 'l', 's', 'z':
				s.k++
			}
		case s.measure() == 1 && s.cvc(s.k):
			s.setTo("e")
		}
	}
}

func (s *stemmer) step1c() {
	if s.ends("y") && s.vowelInStem() {
		s.word[s.k] = 'i'
	}
}

func (s *stemmer) step2() {
	if s.k == 0 {
		return
	}
	switch s.word[s.k-1] {
	case 'a':
		if s.ends("ational") {
			s.r("ate")
		} else if s.ends("tional") {
			s.r("tion")
		}
	case 'c':
		if s.ends("enci") {
			s.r("ence")
		} else if s.ends("anci") {
			s.r("ance")
		}
	case 'e':
		if s.ends("izer") {
			s.r("ize")
		}
	case 'l':
		switch {
		case s.ends("bli"):
			s.r("ble")
		case s.ends("alli"):
			s.r("al")
		case s.ends("entli"):
			s.r("ent")
		case s.ends("eli"):
			s.r("e")
		case s.ends("ousli"):
			s.r("ous")
		}
	case 'o':
		switch {
		case s.ends("ization"):
			s.r("ize")
		case s.ends("ation"):
			s.r("ate")
		case s.ends("ator"):
			s.r("ate")
		}
	case 's':
		switch {
		case s.ends("alism"):
			s.r("al")
		case s.ends("iveness"):
			s.r("ive")
		case s.ends("fulness"):
			s.r("ful")
		case s.ends("ousness"):
			s.r("ous")
		}
	case 't':
		switch {
		case s.ends("aliti"):
			s.r("al")
		case s.ends("iviti"):
			s.r("ive")
		case s.ends("biliti"):
			s.r("ble")
		}
	case 'g':
		if s.ends("logi") {
			s.r("log")
		}
	}
}

func (s *stemmer) step3() {
	switch s.word[s.k] {
	case 'e':
		switch {
		case s.ends("icate"):
			s.r("ic")
		case s.ends("ative"):
			s.r("")
		case s.ends("alize"):
			s.r("al")
		}
	case 'i':
		if s.ends("iciti") {
			s.r("ic")
		}
	case 'l':
		switch {
		case s.ends("ical"):
			s.r("ic")
		case s.ends("ful"):
			s.r("")
		}
	case 's':
		if s.ends("ness") {
			s.r("")
		}
	}
}

func (s *stemmer) step4() {
	if s.k < 1 {
		return
	}
	matched := false
	switch s.word[s.k-1] {
	case 'a':
		if s.ends("al") {
			matched = true
		} else {
			return
		}
	case 'c':
		if s.ends("ance") || s.ends("ence") {
			matched = true
		} else {
			return
		}
	case 'e':
		if s.ends("er") {
			matched = true
		} else {
			return
		}
	case 'i':
		if s.ends("ic") {
			matched = true
		} else {
			return
		}
	case 'l':
		if s.ends("able") || s.ends("ible") {
			matched = true
		} else {
			return
		}
	case 'n':
		if s.ends("ant") || s.ends("ement") || s.ends("ment") || s.ends("ent") {
			matched = true
		} else {
			return
		}
	case 'o':
		if s.ends("ion") && s.j >= 0 && (s.word[s.j] == 's' || s.word[s.j] == 't') {
			matched = true
		} else if s.ends("ou") {
			matched = true
		} else {
			return
		}
	case 's':
		if s.ends("ism") {
			matched = true
		} else {
			return
		}
	case 't':
		if s.ends("ate") || s.ends("iti") {
			matched = true
		} else {
			return
		}
	case 'u':
		if s.ends("ous") {
			matched = true
		} else {
			return
		}
	case 'v':
		if s.ends("ive") {
			matched = true
		} else {
			return
		}
	case 'z':
		if s.ends("ize") {
			matched = true
		} else {
			return
		}
	default:
		return
	}
	if matched && s.measure() > 1 {
		s.k = s.j
	}
}

func (s *stemmer) step5() {
	s.j = s.k
	if s.word[s.k] == 'e' {
		a := s.measure()
		if a > 1 || (a == 1 && !s.cvc(s.k-1)) {
			s.k--
		}
	}
	if s.word[s.k] == 'l' && s.doubleConsonant(s.k) && s.measure() > 1 {
		s.k--
	}
}
