package freetime

import (
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
)

// Project converts free-time records into absolute slot blocks for the week starting at
// weekStart. Recurring entries contribute one block per week, single entries only when
// their date lies inside the week.
//
// A block is expected to end within its own day; that is a property of the stored data
// and is not enforced here.
func Project(weekStart time.Time, freeTimes []*domain.FreeTime) []slot.Block {
	blocks := make([]slot.Block, 0, len(freeTimes))

	for _, ft := range freeTimes {
		dayIndex, ok := dayIndexInWeek(weekStart, ft)
		if !ok {
			continue
		}

		start := dayIndex*slot.SlotsPerDay + slot.TimeOfDaySlot(ft.StartTime.Hour(), ft.StartTime.Minute())
		duration := ft.DurationMinutes() / slot.MinutesPerSlot
		if duration <= 0 {
			continue
		}

		blocks = append(blocks, slot.Block{
			Start:    start,
			Duration: duration,
		})
	}

	return blocks
}

func dayIndexInWeek(weekStart time.Time, ft *domain.FreeTime) (int, bool) {
	if ft.Recurring {
		if ft.Weekday < 1 || ft.Weekday > slot.DaysPerWeek {
			return 0, false
		}
		return ft.Weekday - 1, true
	}

	if ft.Date == nil {
		return 0, false
	}
	days := slot.DaysBetween(weekStart, *ft.Date)
	if days < 0 || days >= slot.DaysPerWeek {
		return 0, false
	}
	return days, true
}
