package strength

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/passguard/passguard/strength/matchers"
	"github.com/passguard/passguard/wordlist"
)

// MinDictionaryWordLength is the shortest dictionary word the scanner will
// look for inside a password.
const MinDictionaryWordLength = 4

// Length suggestions: below MinLength the password is flagged as too short,
// below RecommendedLength a longer one is suggested.
const (
	MinLength         = 8
	RecommendedLength = 12
)

// Assessment is the result of evaluating one password. Entropy figures are
// in bits; EffectiveEntropy is BaseEntropy minus TotalPenalty, floored at
// zero. Feedback ordering is deterministic: pattern notes in password
// order, then reference-set hits, then length and composition suggestions.
type Assessment struct {
	Length           int
	BaseEntropy      float64
	TotalPenalty     float64
	EffectiveEntropy float64
	Rating           Rating
	Feedback         []string
}

//go:generate counterfeiter . Evaluator

type Evaluator interface {
	Evaluate(lager.Logger, string) Assessment
}

type evaluator struct {
	penalties  Penalties
	common     matchers.Matcher
	dictionary matchers.Matcher
}

// NewEvaluator builds an Evaluator with the default penalty constants. The
// reference sets are read, never retained past a call or mutated; a nil
// dictionary skips the substring scan entirely.
func NewEvaluator(common, dictionary wordlist.Set) Evaluator {
	return NewTunedEvaluator(DefaultPenalties(), common, dictionary)
}

func NewTunedEvaluator(penalties Penalties, common, dictionary wordlist.Set) Evaluator {
	e := &evaluator{
		penalties: penalties,
		common:    matchers.Exact(common),
	}

	if dictionary != nil {
		e.dictionary = matchers.Word(dictionary, MinDictionaryWordLength)
	}

	return e
}

func (e *evaluator) Evaluate(logger lager.Logger, password string) Assessment {
	logger = logger.Session("evaluate")
	logger.Debug("starting")

	classes := AnalyzeClasses(password)
	length := len([]rune(password))
	baseEntropy := BaseEntropy(length, classes.AlphabetSize())

	record := e.penalties.DetectPatterns(password)
	totalPenalty := record.Bits
	feedback := append([]string(nil), record.Notes...)

	if found, _, _ := e.common.Match([]byte(password)); found {
		totalPenalty += e.penalties.CommonPassword
		feedback = append(feedback, "found in common password list")
	}

	if e.dictionary != nil {
		if found, start, end := e.dictionary.Match([]byte(password)); found {
			totalPenalty += e.penalties.DictionaryWord

			// The offsets index the lowered bytes; lowercasing can change a
			// rune's byte length, so slicing the original would be wrong.
			word := strings.ToLower(password)[start:end]
			feedback = append(feedback, fmt.Sprintf("contains dictionary word %q", word))
		}
	}

	effectiveEntropy := baseEntropy - totalPenalty
	if effectiveEntropy < 0 {
		effectiveEntropy = 0
	}

	feedback = append(feedback, suggestions(length, classes)...)

	rating := RatingFor(effectiveEntropy)

	logger.Debug("done", lager.Data{
		"length":            length,
		"effective-entropy": effectiveEntropy,
		"rating":            rating.String(),
	})

	return Assessment{
		Length:           length,
		BaseEntropy:      baseEntropy,
		TotalPenalty:     totalPenalty,
		EffectiveEntropy: effectiveEntropy,
		Rating:           rating,
		Feedback:         feedback,
	}
}

func suggestions(length int, classes Classes) []string {
	var notes []string

	switch {
	case length == 0:
		notes = append(notes, fmt.Sprintf("password is empty; choose at least %d characters", MinLength))
	case length < MinLength:
		notes = append(notes, fmt.Sprintf("use at least %d characters", MinLength))
	case length < RecommendedLength:
		notes = append(notes, fmt.Sprintf("consider using %d or more characters", RecommendedLength))
	}

	if !classes.Lower {
		notes = append(notes, "add at least one lowercase letter")
	}
	if !classes.Upper {
		notes = append(notes, "add at least one uppercase letter")
	}
	if !classes.Digit {
		notes = append(notes, "add at least one digit")
	}
	if !classes.Symbol {
		notes = append(notes, "add at least one symbol")
	}

	return notes
}
