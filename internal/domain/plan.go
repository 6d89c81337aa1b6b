package domain

import (
	"fmt"
	"sort"
	"time"
)

type UnitStatus string

const (
	UnitStatusPlanned   UnitStatus = "planned"
	UnitStatusCompleted UnitStatus = "completed"
	UnitStatusMissed    UnitStatus = "missed"
)

func (s UnitStatus) String() string {
	return string(s)
}

type LearningUnit struct {
	ID                    string
	PlanID                string
	TaskID                string
	Start                 time.Time
	End                   time.Time
	Status                UnitStatus
	ActualDurationMinutes *int
	Rating                *Rating
}

func NewLearningUnit(id, taskID string, start, end time.Time) (*LearningUnit, error) {
	u := &LearningUnit{
		ID:     id,
		TaskID: taskID,
		Start:  start,
		End:    end,
		Status: UnitStatusPlanned,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *LearningUnit) Validate() error {
	if !u.Start.Before(u.End) {
		return ErrInvalidInterval
	}
	return nil
}

func (u *LearningUnit) Duration() time.Duration {
	return u.End.Sub(u.Start)
}

// Overlaps uses half-open [Start, End) intervals, so touching units do not overlap.
func (u *LearningUnit) Overlaps(other *LearningUnit) bool {
	return u.Start.Before(other.End) && other.Start.Before(u.End)
}

func (u *LearningUnit) Complete(actualMinutes int) error {
	if actualMinutes < 0 {
		return ErrNegativeDuration
	}
	u.Status = UnitStatusCompleted
	u.ActualDurationMinutes = &actualMinutes
	return nil
}

func (u *LearningUnit) MarkMissed() {
	u.Status = UnitStatusMissed
}

// LearningPlan is one revision of a user's plan for a week. Regeneration creates a
// new revision; earlier revisions are kept.
type LearningPlan struct {
	ID        string
	UserID    string
	WeekStart time.Time
	WeekEnd   time.Time
	Revision  int
	Units     []*LearningUnit
	PlannedAt time.Time
}

func NewLearningPlan(id, userID string, weekStart time.Time, revision int, plannedAt time.Time) *LearningPlan {
	return &LearningPlan{
		ID:        id,
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Revision:  revision,
		Units:     make([]*LearningUnit, 0),
		PlannedAt: plannedAt,
	}
}

func (p *LearningPlan) AddUnit(unit *LearningUnit) {
	unit.PlanID = p.ID
	p.Units = append(p.Units, unit)
}

func (p *LearningPlan) FindUnit(unitID string) (*LearningUnit, bool) {
	for _, u := range p.Units {
		if u.ID == unitID {
			return u, true
		}
	}
	return nil, false
}

func (p *LearningPlan) BelongsTo(userID string) bool {
	return p.UserID == userID
}

// CheckOverlaps verifies that no two units share any part of their intervals.
func (p *LearningPlan) CheckOverlaps() error {
	return CheckUnitOverlaps(p.Units)
}

func CheckUnitOverlaps(units []*LearningUnit) error {
	sorted := make([]*LearningUnit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Overlaps(cur) {
			return fmt.Errorf("%w: unit %s [%s, %s) and unit %s [%s, %s)",
				ErrUnitOverlap,
				prev.ID, prev.Start.Format(time.RFC3339), prev.End.Format(time.RFC3339),
				cur.ID, cur.Start.Format(time.RFC3339), cur.End.Format(time.RFC3339),
			)
		}
	}
	return nil
}
