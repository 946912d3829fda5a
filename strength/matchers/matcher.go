package matchers

// Matcher reports whether a candidate password trips a reference-set check,
// along with the byte range of the offending portion.
type Matcher interface {
	Match([]byte) (bool, int, int)
}
