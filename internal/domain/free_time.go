package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time of day %q", ErrValidation, s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// FreeTime is a user-declared blocked interval. Recurring entries repeat every week on
// Weekday (ISO, Monday = 1); single entries apply to Date only.
type FreeTime struct {
	ID        string
	UserID    string
	Recurring bool
	Weekday   int
	Date      *time.Time
	StartTime TimeOfDay
	EndTime   TimeOfDay
}

func (f *FreeTime) DurationMinutes() int {
	return int(f.EndTime - f.StartTime)
}

func (f *FreeTime) Validate() error {
	if f.StartTime >= f.EndTime {
		return ErrInvalidInterval
	}
	if f.Recurring {
		if f.Weekday < 1 || f.Weekday > 7 {
			return fmt.Errorf("%w: weekday must be between 1 and 7", ErrValidation)
		}
		return nil
	}
	if f.Date == nil {
		return fmt.Errorf("%w: single free time requires a date", ErrValidation)
	}
	return nil
}
