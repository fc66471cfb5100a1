package srs

import "github.com/neurorad/neurograph/internal/domain"

// Params defines all configurable parameters for the scheduling algorithm.
type Params struct {
	// FirstReviewIntervals maps a difficulty to the interval in days used
	// when a structure has no prior review history.
	FirstReviewIntervals map[domain.Difficulty]int

	// EasyMultiplier scales the previous interval on an easy review.
	EasyMultiplier int

	// HardResetInterval is the interval in days a hard review resets to.
	HardResetInterval int

	// BasePriority is the score given to never-studied structures and the
	// floor of the overdue branch; it is the ceiling that not-yet-due
	// structures approach as their due date nears.
	BasePriority float64
}

// NewDefaultParams returns the standard scheduling parameters.
//
// Defaults:
//   - First review: hard 1 day, medium 3 days, easy 5 days
//   - Later reviews: hard resets to 1 day, medium keeps the interval,
//     easy doubles it
//   - Base priority 100, so overdue structures (priority > 100) always
//     outrank structures that are not yet due (priority < 100)
func NewDefaultParams() Params {
	return Params{
		FirstReviewIntervals: map[domain.Difficulty]int{
			domain.DifficultyHard:   1,
			domain.DifficultyMedium: 3,
			domain.DifficultyEasy:   5,
		},
		EasyMultiplier:    2,
		HardResetInterval: 1,
		BasePriority:      100.0,
	}
}
