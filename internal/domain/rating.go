package domain

import "time"

// Level is a 5-step ordinal answer, 1 (lowest) to 5 (highest).
type Level int

const (
	LevelVeryLow  Level = 1
	LevelLow      Level = 2
	LevelMedium   Level = 3
	LevelHigh     Level = 4
	LevelVeryHigh Level = 5
)

func (l Level) IsValid() bool {
	return l >= LevelVeryLow && l <= LevelVeryHigh
}

// Value centers the level on zero: 1..5 maps to -2..2.
func (l Level) Value() int {
	return int(l) - int(LevelMedium)
}

type Rating struct {
	ID                string
	UnitID            string
	Concentration     Level
	PerceivedDuration Level
	Achievement       Level
	CreatedAt         time.Time
}

func (r *Rating) Validate() error {
	if !r.Concentration.IsValid() || !r.PerceivedDuration.IsValid() || !r.Achievement.IsValid() {
		return ErrInvalidLevel
	}
	return nil
}

// Cost converts the rating into the optimizer's cost signal. The concentration term
// is truncated toward zero before the achievement term is added.
func (r *Rating) Cost() int {
	concentration := int(1.5 * float64(r.Concentration.Value()))
	return -(concentration + r.Achievement.Value())
}
