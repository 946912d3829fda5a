package strength

import (
	"fmt"
	"strings"
)

// Rating is the discrete strength tier derived from effective entropy.
type Rating int

const (
	VeryWeak Rating = iota
	Weak
	Reasonable
	Strong
	VeryStrong
)

// Tier boundaries in bits of effective entropy. Each bound is inclusive on
// the stronger side: exactly 28.0 bits rates Weak, exactly 128.0 Very Strong.
const (
	WeakThreshold       = 28.0
	ReasonableThreshold = 36.0
	StrongThreshold     = 60.0
	VeryStrongThreshold = 128.0
)

func RatingFor(effectiveEntropy float64) Rating {
	switch {
	case effectiveEntropy < WeakThreshold:
		return VeryWeak
	case effectiveEntropy < ReasonableThreshold:
		return Weak
	case effectiveEntropy < StrongThreshold:
		return Reasonable
	case effectiveEntropy < VeryStrongThreshold:
		return Strong
	default:
		return VeryStrong
	}
}

func (r Rating) String() string {
	switch r {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Reasonable:
		return "Reasonable"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// ParseRating turns a tier name back into a Rating. Matching ignores case.
func ParseRating(name string) (Rating, error) {
	for _, r := range []Rating{VeryWeak, Weak, Reasonable, Strong, VeryStrong} {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return VeryWeak, fmt.Errorf("unknown rating: %q", name)
}
