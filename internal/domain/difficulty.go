package domain

// Difficulty is the self-assessed review outcome for a studied structure.
// The raw values match the legacy study-log format.
type Difficulty string

const (
	// DifficultyHard means the structure was not recalled; the review
	// interval resets.
	DifficultyHard Difficulty = "dificil"

	// DifficultyMedium means the structure was recalled with effort; the
	// interval is kept.
	DifficultyMedium Difficulty = "medio"

	// DifficultyEasy means the structure was recalled easily; the interval
	// doubles.
	DifficultyEasy Difficulty = "facil"
)

// AllDifficulties lists every difficulty in declaration order.
var AllDifficulties = []Difficulty{DifficultyHard, DifficultyMedium, DifficultyEasy}

// IsValid reports whether the difficulty is one of the known outcomes.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyHard, DifficultyMedium, DifficultyEasy:
		return true
	}
	return false
}
