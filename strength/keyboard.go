package strength

// KeyboardPatterns is the fixed table of keyboard-adjacency substrings the
// pattern detector scans for, case-insensitively. Entries are lowercase and
// none is a substring of another, so a password never pays twice for the
// same stretch of keys. The table is read-only; do not mutate it.
var KeyboardPatterns = []string{
	"qwerty",
	"qwertz",
	"azerty",
	"asdf",
	"zxcvbn",
	"qazwsx",
	"1234",
	"4321",
}
