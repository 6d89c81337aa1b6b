package domain

import (
	"fmt"
	"strings"
)

// TimeBand is a coarse time-of-day label understood by the optimizer.
type TimeBand string

const (
	TimeBandMorning   TimeBand = "morning"
	TimeBandForenoon  TimeBand = "forenoon"
	TimeBandNoon      TimeBand = "noon"
	TimeBandAfternoon TimeBand = "afternoon"
	TimeBandEvening   TimeBand = "evening"
)

func (b TimeBand) IsValid() bool {
	switch b {
	case TimeBandMorning, TimeBandForenoon, TimeBandNoon, TimeBandAfternoon, TimeBandEvening:
		return true
	}
	return false
}

type LearningPreferences struct {
	UserID                  string
	MinUnitMinutes          int
	MaxUnitMinutes          int
	MaxDailyWorkloadMinutes int
	BreakMinutes            int
	DeadlineBufferDays      int
	PreferredTimeBands      []TimeBand
	// PreferredWeekdays holds ISO weekdays (Monday = 1). Empty means every day.
	PreferredWeekdays []int
}

func (p *LearningPreferences) Validate() error {
	if p.MinUnitMinutes < 0 || p.MaxUnitMinutes < 0 || p.BreakMinutes < 0 || p.DeadlineBufferDays < 0 {
		return fmt.Errorf("%w: preference values must not be negative", ErrValidation)
	}
	if p.MaxUnitMinutes > 0 && p.MinUnitMinutes > p.MaxUnitMinutes {
		return fmt.Errorf("%w: min unit duration exceeds max unit duration", ErrValidation)
	}
	for _, b := range p.PreferredTimeBands {
		if !b.IsValid() {
			return fmt.Errorf("%w: unknown time band %q", ErrValidation, b)
		}
	}
	for _, d := range p.PreferredWeekdays {
		if d < 1 || d > 7 {
			return fmt.Errorf("%w: weekday must be between 1 and 7", ErrValidation)
		}
	}
	return nil
}

// PreferenceTime joins the band labels the way the optimizer expects them.
func (p *LearningPreferences) PreferenceTime() string {
	labels := make([]string, 0, len(p.PreferredTimeBands))
	for _, b := range p.PreferredTimeBands {
		labels = append(labels, string(b))
	}
	return strings.Join(labels, ",")
}
