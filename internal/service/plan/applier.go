package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
)

// Applier turns optimizer assignments into learning units.
//
// Assignments include the break the request padded each demand with. The break is
// assumed to sit at the tail of the interval and is cut off before persisting.
type Applier struct {
	newID func() string
}

func NewApplier() *Applier {
	return &Applier{
		newID: uuid.NewString,
	}
}

// Interval converts one assignment to wall-clock bounds with the trailing break removed.
func Interval(weekStart time.Time, a optimizer.Assignment, breakMinutes int) (time.Time, time.Time, error) {
	if a.Start < 0 || a.End > slot.Horizon || a.End <= a.Start {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: assignment %s [%d, %d) outside the week",
			domain.ErrOptimizerResponse, a.ID, a.Start, a.End)
	}

	start := slot.FromSlot(weekStart, a.Start)
	end := slot.FromSlot(weekStart, a.End).Add(-time.Duration(breakMinutes) * time.Minute)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("assignment %s shorter than the break: %w", a.ID, domain.ErrInvalidInterval)
	}
	return start, end, nil
}

// Apply adds one unit per assignment to plan. Nothing is added unless every
// assignment is valid and the resulting unit set is free of overlaps.
func (a *Applier) Apply(
	plan *domain.LearningPlan,
	resp optimizer.Response,
	tasks map[string]*domain.Task,
	breakMinutes int,
) ([]*domain.LearningUnit, error) {
	units := make([]*domain.LearningUnit, 0, len(resp))
	for _, asg := range resp {
		taskID, err := asg.TaskID()
		if err != nil {
			return nil, err
		}
		if _, ok := tasks[taskID]; !ok {
			return nil, fmt.Errorf("%w: assignment %s references unknown task", domain.ErrOptimizerResponse, asg.ID)
		}

		start, end, err := Interval(plan.WeekStart, asg, breakMinutes)
		if err != nil {
			return nil, err
		}

		unit, err := domain.NewLearningUnit(a.newID(), taskID, start, end)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	all := make([]*domain.LearningUnit, 0, len(plan.Units)+len(units))
	all = append(all, plan.Units...)
	all = append(all, units...)
	if err := domain.CheckUnitOverlaps(all); err != nil {
		return nil, err
	}

	for _, u := range units {
		plan.AddUnit(u)
	}
	return units, nil
}

// Move places unit at the assignment's interval after checking it against every
// sibling in plan. The unit is left untouched on error.
func (a *Applier) Move(
	plan *domain.LearningPlan,
	unit *domain.LearningUnit,
	asg optimizer.Assignment,
	breakMinutes int,
) error {
	taskID, err := asg.TaskID()
	if err != nil {
		return err
	}
	if taskID != unit.TaskID {
		return fmt.Errorf("%w: assignment %s does not belong to task %s", domain.ErrOptimizerResponse, asg.ID, unit.TaskID)
	}

	start, end, err := Interval(plan.WeekStart, asg, breakMinutes)
	if err != nil {
		return err
	}

	moved := *unit
	moved.Start = start
	moved.End = end

	candidate := make([]*domain.LearningUnit, 0, len(plan.Units))
	for _, u := range plan.Units {
		if u.ID == unit.ID {
			candidate = append(candidate, &moved)
			continue
		}
		candidate = append(candidate, u)
	}
	if err := domain.CheckUnitOverlaps(candidate); err != nil {
		return err
	}

	unit.Start = start
	unit.End = end
	return nil
}
