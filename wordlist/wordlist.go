package wordlist

import "strings"

// Set holds lowercased reference words for membership testing. A nil Set
// behaves like an empty one; lookups expect already-lowercased input.
type Set map[string]struct{}

func New(words ...string) Set {
	s := make(Set, len(words))
	for _, word := range words {
		s.Add(word)
	}
	return s
}

func (s Set) Add(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}
