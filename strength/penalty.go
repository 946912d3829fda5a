package strength

import (
	"fmt"
	"sort"
	"strings"
)

// Penalties holds the deduction, in bits, charged for each weak-pattern
// rule. All rules are additive and independent.
type Penalties struct {
	// RepeatUnit is charged for every character beyond the second in a run
	// of 3+ identical characters.
	RepeatUnit float64

	// SequenceRun is charged once per maximal run of 3+ characters stepping
	// by exactly +1 or -1 ("abcd", "4321").
	SequenceRun float64

	// KeyboardPattern is charged once per distinct KeyboardPatterns entry
	// found in the password.
	KeyboardPattern float64

	// CommonPassword is charged when the whole password appears in the
	// common-password set. Large enough to floor any realistic entropy.
	CommonPassword float64

	// DictionaryWord is charged when a dictionary word of 4+ characters
	// appears anywhere in the password.
	DictionaryWord float64
}

func DefaultPenalties() Penalties {
	return Penalties{
		RepeatUnit:      3.0,
		SequenceRun:     5.0,
		KeyboardPattern: 10.0,
		CommonPassword:  100.0,
		DictionaryWord:  20.0,
	}
}

// PenaltyRecord is the accumulated deduction for one password along with a
// note per triggered rule, ordered by position in the password.
type PenaltyRecord struct {
	Bits  float64
	Notes []string
}

type patternNote struct {
	position int
	text     string
}

// DetectPatterns scans for repeated-character runs, ascending or descending
// sequences, and keyboard patterns. Repeat and sequence notes come out in
// password order; keyboard notes follow in table order.
func (p Penalties) DetectPatterns(password string) PenaltyRecord {
	var record PenaltyRecord

	runes := []rune(password)

	var notes []patternNote

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if run := j - i; run >= 3 {
			record.Bits += p.RepeatUnit * float64(run-2)
			notes = append(notes, patternNote{
				position: i,
				text:     fmt.Sprintf("repeated character %q (%d in a row)", runes[i], run),
			})
		}
		i = j
	}

	for i := 0; i < len(runes)-2; {
		step := int(runes[i+1]) - int(runes[i])
		if step != 1 && step != -1 {
			i++
			continue
		}
		j := i + 1
		for j < len(runes)-1 && int(runes[j+1])-int(runes[j]) == step {
			j++
		}
		if run := j - i + 1; run >= 3 {
			direction := "ascending"
			if step == -1 {
				direction = "descending"
			}
			record.Bits += p.SequenceRun
			notes = append(notes, patternNote{
				position: i,
				text:     fmt.Sprintf("%s sequence %q", direction, string(runes[i:j+1])),
			})
		}
		i = j
	}

	sort.SliceStable(notes, func(a, b int) bool {
		return notes[a].position < notes[b].position
	})

	for _, note := range notes {
		record.Notes = append(record.Notes, note.text)
	}

	lowered := strings.ToLower(password)
	for _, pattern := range KeyboardPatterns {
		if strings.Contains(lowered, pattern) {
			record.Bits += p.KeyboardPattern
			record.Notes = append(record.Notes, fmt.Sprintf("keyboard pattern %q", pattern))
		}
	}

	return record
}
