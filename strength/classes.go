package strength

const (
	lowerPoolSize  = 26
	upperPoolSize  = 26
	digitPoolSize  = 10
	symbolPoolSize = 32
)

// Classes records which character classes appear in a password. Anything
// outside the ASCII letter and digit ranges counts toward the symbol pool.
type Classes struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

func AnalyzeClasses(password string) Classes {
	var classes Classes

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			classes.Lower = true
		case r >= 'A' && r <= 'Z':
			classes.Upper = true
		case r >= '0' && r <= '9':
			classes.Digit = true
		default:
			classes.Symbol = true
		}
	}

	return classes
}

func (c Classes) Count() int {
	count := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			count++
		}
	}
	return count
}

// AlphabetSize returns the size of the character pool a uniform attacker
// would have to search, given the classes present.
func (c Classes) AlphabetSize() int {
	size := 0
	if c.Lower {
		size += lowerPoolSize
	}
	if c.Upper {
		size += upperPoolSize
	}
	if c.Digit {
		size += digitPoolSize
	}
	if c.Symbol {
		size += symbolPoolSize
	}
	return size
}
