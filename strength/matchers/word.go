package matchers

import (
	"bytes"

	"github.com/passguard/passguard/wordlist"
)

type wordMatcher struct {
	words     wordlist.Set
	minLength int
}

// Word matches when any contiguous substring of the lowercased candidate,
// at least minLength bytes long, is a member of the reference set. Offsets
// are tried left to right and longest-first at each offset, so the reported
// range depends only on set membership, never on map iteration order.
//
// The returned offsets index the lowercased form of the candidate, which
// can differ in byte length from the original when lowercasing changes a
// rune's encoding.
func Word(words wordlist.Set, minLength int) Matcher {
	return &wordMatcher{
		words:     words,
		minLength: minLength,
	}
}

func (m *wordMatcher) Match(candidate []byte) (bool, int, int) {
	if m.words.Len() == 0 || len(candidate) < m.minLength {
		return false, 0, 0
	}

	lowered := bytes.ToLower(candidate)

	for start := 0; start+m.minLength <= len(lowered); start++ {
		for end := len(lowered); end-start >= m.minLength; end-- {
			if m.words.Contains(string(lowered[start:end])) {
				return true, start, end
			}
		}
	}

	return false, 0, 0
}
