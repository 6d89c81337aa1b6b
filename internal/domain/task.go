package domain

import "time"

// Category is the closed set of task kinds. Each kind derives its hard deadline differently.
type Category string

const (
	CategoryDeadline Category = "deadline"
	CategoryExam     Category = "exam"
	CategoryOpen     Category = "open"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryDeadline, CategoryExam, CategoryOpen:
		return true
	}
	return false
}

type Module struct {
	ID     string
	UserID string
	Title  string
}

func (m *Module) BelongsTo(userID string) bool {
	return m.UserID == userID
}

type Task struct {
	ID                    string
	ModuleID              string
	Title                 string
	WeeklyDurationMinutes int
	Category              Category
	StartDate             *time.Time
	DueDate               *time.Time
	ExamDate              *time.Time
}

// HardDeadline returns the instant after which the task cannot be worked on.
// Open-ended tasks have none.
func (t *Task) HardDeadline() (time.Time, bool) {
	switch t.Category {
	case CategoryDeadline:
		if t.DueDate == nil {
			return time.Time{}, false
		}
		return *t.DueDate, true
	case CategoryExam:
		if t.ExamDate == nil {
			return time.Time{}, false
		}
		d := *t.ExamDate
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()), true
	default:
		return time.Time{}, false
	}
}

// SoftDeadline is the hard deadline pulled forward by bufferDays.
func (t *Task) SoftDeadline(bufferDays int) (time.Time, bool) {
	hard, ok := t.HardDeadline()
	if !ok {
		return time.Time{}, false
	}
	return hard.AddDate(0, 0, -bufferDays), true
}

// IsActive reports whether the task should still be scheduled at now.
func (t *Task) IsActive(now time.Time, bufferDays int) bool {
	soft, ok := t.SoftDeadline(bufferDays)
	if !ok {
		return true
	}
	return now.Before(soft)
}
