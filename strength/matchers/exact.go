package matchers

import (
	"bytes"

	"github.com/passguard/passguard/wordlist"
)

type exactMatcher struct {
	words wordlist.Set
}

// Exact matches when the whole candidate, lowercased, is a member of the
// reference set. Substrings never match.
func Exact(words wordlist.Set) Matcher {
	return &exactMatcher{
		words: words,
	}
}

func (m *exactMatcher) Match(candidate []byte) (bool, int, int) {
	if m.words.Len() == 0 || len(candidate) == 0 {
		return false, 0, 0
	}

	if m.words.Contains(string(bytes.ToLower(candidate))) {
		return true, 0, len(candidate)
	}

	return false, 0, 0
}
