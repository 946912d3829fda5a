package guess

import "github.com/nbutton23/zxcvbn-go"

// Passwords above this many bits per character look machine-generated
// rather than human-chosen.
const machineGeneratedBitsPerChar = 3.7

// Estimate is a guess-based cross-check of a password, independent of the
// alphabet-entropy model used for the Assessment rating.
type Estimate struct {
	Score            int
	CrackTimeDisplay string
	MachineGenerated bool
}

// Crack runs the zxcvbn estimator over a password. Score ranges 0 (worst)
// to 4 (best).
func Crack(password string) Estimate {
	if password == "" {
		return Estimate{CrackTimeDisplay: "instant"}
	}

	match := zxcvbn.PasswordStrength(password, nil)

	return Estimate{
		Score:            match.Score,
		CrackTimeDisplay: match.CrackTimeDisplay,
		MachineGenerated: match.Entropy/float64(len(password)) > machineGeneratedBitsPerChar,
	}
}
