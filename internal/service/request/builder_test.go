package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
)

var (
	// Monday.
	weekStart = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	now       = time.Date(2026, 10, 12, 1, 0, 0, 0, time.UTC)
)

type profilerFunc func(ctx context.Context, task *domain.Task) ([]domain.CostEntry, error)

func (f profilerFunc) GetCostProfile(ctx context.Context, task *domain.Task) ([]domain.CostEntry, error) {
	return f(ctx, task)
}

func staticProfiles(m map[string][]domain.CostEntry) profilerFunc {
	return func(_ context.Context, task *domain.Task) ([]domain.CostEntry, error) {
		return m[task.ID], nil
	}
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestBuildPadsDurationWithBreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := domain.NewMockTaskRepository(ctrl)
	constraints := domain.NewMockConstraintRepository(ctrl)

	constraints.EXPECT().GetPreferences(gomock.Any(), "user-1").Return(&domain.LearningPreferences{
		UserID:             "user-1",
		BreakMinutes:       15,
		DeadlineBufferDays: 2,
		PreferredTimeBands: []domain.TimeBand{domain.TimeBandMorning, domain.TimeBandEvening},
		PreferredWeekdays:  []int{1, 2, 3, 4, 5},
	}, nil)
	constraints.EXPECT().ListFreeTimes(gomock.Any(), "user-1").Return([]*domain.FreeTime{
		{Recurring: true, Weekday: 1, StartTime: domain.NewTimeOfDay(8, 0), EndTime: domain.NewTimeOfDay(10, 0)},
	}, nil)
	tasks.EXPECT().ListTasksByOwner(gomock.Any(), "user-1").Return([]*domain.Task{
		{ID: "task-1", ModuleID: "mod-1", WeeklyDurationMinutes: 120, Category: domain.CategoryOpen},
	}, nil)

	b := NewBuilder(tasks, constraints, staticProfiles(map[string][]domain.CostEntry{
		"task-1": {{Offset: 120, Cost: -2}},
	}), Defaults{BreakMinutes: 10, DeadlineBufferDays: 1})

	res, err := b.Build(context.Background(), Input{UserID: "user-1", WeekStart: weekStart, Now: now})
	require.NoError(t, err)

	req := res.Request
	assert.Equal(t, 2016, req.Horizon)
	assert.Equal(t, 12, req.CurrentSlot)
	assert.Equal(t, []int{5, 6}, req.BlockedDays)
	assert.Equal(t, "morning,evening", req.PreferenceTime)
	assert.Equal(t, []optimizer.FixedBlock{{Start: 96, Duration: 24}}, req.FixedBlocks)
	require.Len(t, req.Tasks, 1)
	assert.Equal(t, optimizer.TaskDemand{
		ID:       "task-1",
		Duration: 27,
		Start:    0,
		Deadline: 2016,
		Costs:    []domain.CostEntry{{Offset: 120, Cost: -2}},
	}, req.Tasks[0])
	assert.Equal(t, 15, res.BreakMinutes)
	assert.Contains(t, res.Tasks, "task-1")
}

func TestBuildSkipsInactiveTasksAndUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := domain.NewMockTaskRepository(ctrl)
	constraints := domain.NewMockConstraintRepository(ctrl)

	constraints.EXPECT().GetPreferences(gomock.Any(), "user-1").Return(nil, domain.ErrPreferencesNotFound)
	constraints.EXPECT().ListFreeTimes(gomock.Any(), "user-1").Return(nil, nil)
	tasks.EXPECT().ListTasksByOwner(gomock.Any(), "user-1").Return([]*domain.Task{
		// Soft deadline (due minus 2 days) already passed.
		{ID: "expired", WeeklyDurationMinutes: 60, Category: domain.CategoryDeadline, DueDate: datePtr(now.AddDate(0, 0, 1))},
		{ID: "exam", WeeklyDurationMinutes: 60, Category: domain.CategoryExam, ExamDate: datePtr(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))},
	}, nil)

	var profiled []string
	b := NewBuilder(tasks, constraints, profilerFunc(func(_ context.Context, task *domain.Task) ([]domain.CostEntry, error) {
		profiled = append(profiled, task.ID)
		return nil, nil
	}), Defaults{BreakMinutes: 15, DeadlineBufferDays: 2})

	res, err := b.Build(context.Background(), Input{UserID: "user-1", WeekStart: weekStart, Now: now})
	require.NoError(t, err)

	assert.Equal(t, []string{"exam"}, profiled)
	require.Len(t, res.Request.Tasks, 1)
	// Exam day midnight (Sunday) minus two days is Friday 00:00.
	assert.Equal(t, 4*288, res.Request.Tasks[0].Deadline)
	assert.Equal(t, 15, res.Request.Tasks[0].Duration)
	assert.Equal(t, []domain.CostEntry{}, res.Request.Tasks[0].Costs)
	assert.Equal(t, []int{}, res.Request.BlockedDays)
	assert.Equal(t, 15, res.BreakMinutes)
}

func TestAssembleReschedule(t *testing.T) {
	plan := domain.NewLearningPlan("plan-1", "user-1", weekStart, 1, now)
	moving := &domain.LearningUnit{
		ID:     "unit-1",
		TaskID: "task-1",
		Start:  weekStart.Add(6 * time.Hour),
		End:    weekStart.Add(7 * time.Hour),
	}
	sibling := &domain.LearningUnit{
		ID:     "unit-2",
		TaskID: "task-2",
		Start:  weekStart.AddDate(0, 0, 1).Add(18 * time.Hour),
		End:    weekStart.AddDate(0, 0, 1).Add(18*time.Hour + 30*time.Minute),
	}
	plan.AddUnit(moving)
	plan.AddUnit(sibling)

	task := &domain.Task{ID: "task-1", WeeklyDurationMinutes: 120, Category: domain.CategoryOpen}

	req := Assemble(Params{
		WeekStart:   weekStart,
		Now:         now,
		Preferences: &domain.LearningPreferences{BreakMinutes: 15},
		Demands:     []Demand{{Task: task, Minutes: 60}},
		Reschedule:  &Target{Plan: plan, Unit: moving, Task: task},
	})

	assert.Equal(t, []optimizer.FixedBlock{
		{Start: 288 + 216, Duration: 9},
		{Start: 72, Duration: 15},
	}, req.FixedBlocks)
	require.Len(t, req.Tasks, 1)
	assert.Equal(t, 15, req.Tasks[0].Duration)
}

func TestAssembleTaskWindow(t *testing.T) {
	tests := []struct {
		name         string
		task         *domain.Task
		wantStart    int
		wantDeadline int
		wantIncluded bool
	}{
		{
			name:         "open without start date",
			task:         &domain.Task{ID: "t", WeeklyDurationMinutes: 30, Category: domain.CategoryOpen},
			wantStart:    0,
			wantDeadline: 2016,
			wantIncluded: true,
		},
		{
			name: "starts mid-week",
			task: &domain.Task{ID: "t", WeeklyDurationMinutes: 30, Category: domain.CategoryOpen,
				StartDate: datePtr(weekStart.AddDate(0, 0, 2).Add(9 * time.Hour))},
			wantStart:    2*288 + 108,
			wantDeadline: 2016,
			wantIncluded: true,
		},
		{
			name: "deadline after the week is clamped",
			task: &domain.Task{ID: "t", WeeklyDurationMinutes: 30, Category: domain.CategoryDeadline,
				DueDate: datePtr(weekStart.AddDate(0, 0, 30))},
			wantStart:    0,
			wantDeadline: 2016,
			wantIncluded: true,
		},
		{
			name: "starts after the week",
			task: &domain.Task{ID: "t", WeeklyDurationMinutes: 30, Category: domain.CategoryOpen,
				StartDate: datePtr(weekStart.AddDate(0, 0, 9))},
			wantIncluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Assemble(Params{
				WeekStart:   weekStart,
				Now:         now,
				Preferences: &domain.LearningPreferences{BreakMinutes: 15, DeadlineBufferDays: 2},
				Demands:     []Demand{{Task: tt.task, Minutes: tt.task.WeeklyDurationMinutes}},
			})

			if !tt.wantIncluded {
				assert.Empty(t, req.Tasks)
				return
			}
			require.Len(t, req.Tasks, 1)
			assert.Equal(t, tt.wantStart, req.Tasks[0].Start)
			assert.Equal(t, tt.wantDeadline, req.Tasks[0].Deadline)
		})
	}
}

func TestBlockedDays(t *testing.T) {
	tests := []struct {
		preferred []int
		want      []int
	}{
		{preferred: nil, want: []int{}},
		{preferred: []int{1, 2, 3, 4, 5, 6, 7}, want: []int{}},
		{preferred: []int{1, 3}, want: []int{1, 3, 4, 5, 6}},
		{preferred: []int{7}, want: []int{0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		got := blockedDays(tt.preferred)
		assert.Equal(t, tt.want, got, "preferred %v", tt.preferred)
	}
}

func TestAssembleCurrentSlotOutsideWeek(t *testing.T) {
	req := Assemble(Params{
		WeekStart:   weekStart,
		Now:         weekStart.Add(-10 * time.Minute),
		Preferences: &domain.LearningPreferences{},
	})
	assert.Equal(t, -2, req.CurrentSlot)

	req = Assemble(Params{
		WeekStart:   weekStart,
		Now:         weekStart.AddDate(0, 0, 8),
		Preferences: &domain.LearningPreferences{},
	})
	assert.Equal(t, 8*288, req.CurrentSlot)
}
