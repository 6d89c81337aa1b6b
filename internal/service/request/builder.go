// Package request assembles optimizer requests from a user's tasks, constraints
// and cost profiles.
package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/freetime"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
)

// CostProfiler resolves a task's slot preferences.
type CostProfiler interface {
	GetCostProfile(ctx context.Context, task *domain.Task) ([]domain.CostEntry, error)
}

// Defaults apply when the user has not stored preferences.
type Defaults struct {
	BreakMinutes       int
	DeadlineBufferDays int
}

type Builder struct {
	tasks       domain.TaskRepository
	constraints domain.ConstraintRepository
	profiler    CostProfiler
	defaults    Defaults
}

func NewBuilder(
	tasks domain.TaskRepository,
	constraints domain.ConstraintRepository,
	profiler CostProfiler,
	defaults Defaults,
) *Builder {
	return &Builder{
		tasks:       tasks,
		constraints: constraints,
		profiler:    profiler,
		defaults:    defaults,
	}
}

// Target identifies the single unit being moved in reschedule mode.
type Target struct {
	Plan *domain.LearningPlan
	Unit *domain.LearningUnit
	Task *domain.Task
}

type Input struct {
	UserID    string
	WeekStart time.Time
	Now       time.Time
	// Reschedule switches the builder to single-unit mode when set.
	Reschedule *Target
}

type Result struct {
	Request      *optimizer.Request
	Tasks        map[string]*domain.Task
	BreakMinutes int
}

func (b *Builder) Build(ctx context.Context, in Input) (*Result, error) {
	prefs, err := b.preferences(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	freeTimes, err := b.constraints.ListFreeTimes(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("list free times: %w", err)
	}

	var tasks []*domain.Task
	if in.Reschedule != nil {
		tasks = []*domain.Task{in.Reschedule.Task}
	} else {
		tasks, err = b.tasks.ListTasksByOwner(ctx, in.UserID)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
	}

	demands := make([]Demand, 0, len(tasks))
	for _, task := range tasks {
		if in.Reschedule == nil && !task.IsActive(in.Now, prefs.DeadlineBufferDays) {
			continue
		}

		costs, err := b.profiler.GetCostProfile(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("cost profile for task %s: %w", task.ID, err)
		}

		minutes := task.WeeklyDurationMinutes
		if in.Reschedule != nil {
			minutes = int(in.Reschedule.Unit.Duration() / time.Minute)
		}

		demands = append(demands, Demand{
			Task:    task,
			Minutes: minutes,
			Costs:   costs,
		})
	}

	req := Assemble(Params{
		WeekStart:   in.WeekStart,
		Now:         in.Now,
		Preferences: prefs,
		FreeTimes:   freeTimes,
		Demands:     demands,
		Reschedule:  in.Reschedule,
	})

	byID := make(map[string]*domain.Task, len(demands))
	for _, d := range demands {
		byID[d.Task.ID] = d.Task
	}

	slog.DebugContext(ctx, "optimizer request built",
		slog.String("user_id", in.UserID),
		slog.String("week_start", in.WeekStart.Format(time.DateOnly)),
		slog.Int("task_count", len(req.Tasks)),
		slog.Int("fixed_block_count", len(req.FixedBlocks)),
		slog.Bool("reschedule", in.Reschedule != nil),
	)

	return &Result{
		Request:      req,
		Tasks:        byID,
		BreakMinutes: prefs.BreakMinutes,
	}, nil
}

func (b *Builder) preferences(ctx context.Context, userID string) (*domain.LearningPreferences, error) {
	prefs, err := b.constraints.GetPreferences(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.LearningPreferences{
			UserID:             userID,
			BreakMinutes:       b.defaults.BreakMinutes,
			DeadlineBufferDays: b.defaults.DeadlineBufferDays,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// Demand is one task's share of the week.
type Demand struct {
	Task    *domain.Task
	Minutes int
	Costs   []domain.CostEntry
}

type Params struct {
	WeekStart   time.Time
	Now         time.Time
	Preferences *domain.LearningPreferences
	FreeTimes   []*domain.FreeTime
	Demands     []Demand
	Reschedule  *Target
}

// Assemble maps already loaded inputs onto the optimizer contract. It performs no I/O.
func Assemble(p Params) *optimizer.Request {
	breakMinutes := p.Preferences.BreakMinutes

	blocks := freetime.Project(p.WeekStart, p.FreeTimes)
	if p.Reschedule != nil {
		for _, u := range p.Reschedule.Plan.Units {
			if u.ID == p.Reschedule.Unit.ID {
				continue
			}
			blocks = append(blocks, slot.UnitBlock(p.WeekStart, u, breakMinutes))
		}
		// The vacated interval is forced so the unit has to move.
		blocks = append(blocks, slot.UnitBlock(p.WeekStart, p.Reschedule.Unit, breakMinutes))
	}

	fixed := make([]optimizer.FixedBlock, 0, len(blocks))
	for _, b := range blocks {
		fixed = append(fixed, optimizer.FixedBlock{Start: b.Start, Duration: b.Duration})
	}

	tasks := make([]optimizer.TaskDemand, 0, len(p.Demands))
	for _, d := range p.Demands {
		start := earliestSlot(p.WeekStart, d.Task)
		deadline := deadlineSlot(p.WeekStart, d.Task, p.Preferences.DeadlineBufferDays)
		if start >= deadline {
			continue
		}

		costs := d.Costs
		if costs == nil {
			costs = []domain.CostEntry{}
		}

		tasks = append(tasks, optimizer.TaskDemand{
			ID:       d.Task.ID,
			Duration: slot.DurationSlots(d.Minutes + breakMinutes),
			Start:    start,
			Deadline: deadline,
			Costs:    costs,
		})
	}

	return &optimizer.Request{
		Horizon:        slot.Horizon,
		CurrentSlot:    slot.Offset(p.WeekStart, p.Now),
		BlockedDays:    blockedDays(p.Preferences.PreferredWeekdays),
		PreferenceTime: p.Preferences.PreferenceTime(),
		FixedBlocks:    fixed,
		Tasks:          tasks,
	}
}

// blockedDays lists the day indices (Monday = 0) the user did not select.
func blockedDays(preferred []int) []int {
	blocked := []int{}
	if len(preferred) == 0 {
		return blocked
	}

	allowed := make(map[int]bool, len(preferred))
	for _, d := range preferred {
		allowed[d-1] = true
	}
	for day := 0; day < slot.DaysPerWeek; day++ {
		if !allowed[day] {
			blocked = append(blocked, day)
		}
	}
	return blocked
}

func earliestSlot(weekStart time.Time, task *domain.Task) int {
	if task.StartDate == nil {
		return 0
	}
	return slot.Clamp(slot.WeekSlot(weekStart, *task.StartDate))
}

func deadlineSlot(weekStart time.Time, task *domain.Task, bufferDays int) int {
	soft, ok := task.SoftDeadline(bufferDays)
	if !ok {
		return slot.Horizon
	}
	return slot.Clamp(slot.WeekSlot(weekStart, soft))
}
