package strength

import "math"

// BaseEntropy estimates the bits of randomness in a password of the given
// length drawn uniformly from an alphabet of the given size. A degenerate
// alphabet (0 or 1 characters) yields zero bits rather than a log of 0 or 1.
func BaseEntropy(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 1 {
		return 0
	}

	return float64(length) * math.Log2(float64(alphabetSize))
}
