// Package slot converts between wall-clock time and 5-minute slot indices within a
// one-week horizon that starts on Monday at midnight.
package slot

import (
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

const (
	MinutesPerSlot = 5
	SlotsPerHour   = 60 / MinutesPerSlot
	SlotsPerDay    = 24 * SlotsPerHour
	DaysPerWeek    = 7
	// Horizon is the number of slots in one planning week.
	Horizon = DaysPerWeek * SlotsPerDay
)

// DayIndex returns the position of t's weekday in the week, Monday = 0.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

// TimeOfDaySlot truncates a time of day to its slot within the day.
func TimeOfDaySlot(hour, minute int) int {
	return (hour*60 + minute) / MinutesPerSlot
}

// ToSlot maps t to its slot within the week. Times off the grid are truncated to the
// earlier slot.
func ToSlot(t time.Time) int {
	return DayIndex(t)*SlotsPerDay + TimeOfDaySlot(t.Hour(), t.Minute())
}

// FromSlot returns the wall-clock start of slot relative to weekStart's date. Day
// arithmetic is done on the calendar so DST transitions do not shift the result.
func FromSlot(weekStart time.Time, slot int) time.Time {
	day := floorDiv(slot, SlotsPerDay)
	minutes := (slot - day*SlotsPerDay) * MinutesPerSlot
	y, m, d := weekStart.Date()
	return time.Date(y, m, d+day, 0, minutes, 0, 0, weekStart.Location())
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-DayIndex(t), 0, 0, 0, 0, t.Location())
}

// Offset returns the number of whole slots between weekStart's midnight and t. The
// result is negative for instants before the week and may exceed Horizon.
func Offset(weekStart, t time.Time) int {
	y, m, d := weekStart.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, weekStart.Location())
	minutes := int(t.Sub(midnight) / time.Minute)
	if t.Before(midnight) && t.Sub(midnight)%time.Minute != 0 {
		minutes--
	}
	return floorDiv(minutes, MinutesPerSlot)
}

// WeekSlot is the wall-clock inverse of FromSlot: the slot of t counted from
// weekStart's date. Unlike Offset it ignores DST shifts.
func WeekSlot(weekStart, t time.Time) int {
	t = t.In(weekStart.Location())
	return DaysBetween(weekStart, t)*SlotsPerDay + TimeOfDaySlot(t.Hour(), t.Minute())
}

// Clamp limits slot to [0, Horizon].
func Clamp(slot int) int {
	return min(max(slot, 0), Horizon)
}

// DurationSlots converts minutes to the number of slots needed to hold them.
func DurationSlots(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + MinutesPerSlot - 1) / MinutesPerSlot
}

// DaysBetween counts calendar days from a to b, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Block is a slot range the optimizer must treat as occupied.
type Block struct {
	Start    int
	Duration int
}

// UnitBlock returns the slots covered by a unit, padded with breakMinutes at its tail.
func UnitBlock(weekStart time.Time, unit *domain.LearningUnit, breakMinutes int) Block {
	start := WeekSlot(weekStart, unit.Start)
	minutes := int(unit.End.Sub(unit.Start)/time.Minute) + breakMinutes
	return Block{
		Start:    start,
		Duration: DurationSlots(minutes),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
