package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
)

var (
	// Monday.
	weekStart = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	now       = time.Date(2026, 10, 12, 1, 0, 0, 0, time.UTC)
)

func newPlan() *domain.LearningPlan {
	return domain.NewLearningPlan("plan-1", "user-1", weekStart, 1, now)
}

func TestApplyTrimsTrailingBreak(t *testing.T) {
	plan := newPlan()
	tasks := map[string]*domain.Task{"task-1": {ID: "task-1"}}

	units, err := NewApplier().Apply(plan, optimizer.Response{
		{ID: "task-1_0", Start: 72, End: 87},
	}, tasks, 15)
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC), u.Start)
	assert.Equal(t, time.Date(2026, 10, 12, 7, 0, 0, 0, time.UTC), u.End)
	assert.Equal(t, 60*time.Minute, u.Duration())
	assert.Equal(t, domain.UnitStatusPlanned, u.Status)
	assert.Equal(t, "plan-1", u.PlanID)
	assert.Len(t, plan.Units, 1)
}

func TestApplyRejects(t *testing.T) {
	tasks := map[string]*domain.Task{"task-1": {ID: "task-1"}, "task-2": {ID: "task-2"}}

	tests := []struct {
		name    string
		resp    optimizer.Response
		wantErr error
	}{
		{
			name: "overlapping assignments",
			resp: optimizer.Response{
				{ID: "task-1_0", Start: 72, End: 87},
				{ID: "task-2_0", Start: 80, End: 95},
			},
			wantErr: domain.ErrUnitOverlap,
		},
		{
			name:    "unknown task",
			resp:    optimizer.Response{{ID: "task-9_0", Start: 72, End: 87}},
			wantErr: domain.ErrOptimizerResponse,
		},
		{
			name:    "interval not longer than the break",
			resp:    optimizer.Response{{ID: "task-1_0", Start: 72, End: 75}},
			wantErr: domain.ErrInvalidInterval,
		},
		{
			name:    "outside the horizon",
			resp:    optimizer.Response{{ID: "task-1_0", Start: 2010, End: 2030}},
			wantErr: domain.ErrOptimizerResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newPlan()
			_, err := NewApplier().Apply(plan, tt.resp, tasks, 15)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if len(plan.Units) != 0 {
				t.Errorf("plan has %d units after failed apply, want 0", len(plan.Units))
			}
		})
	}
}

func TestApplyAdjacentUnitsDoNotOverlap(t *testing.T) {
	plan := newPlan()
	tasks := map[string]*domain.Task{"task-1": {ID: "task-1"}, "task-2": {ID: "task-2"}}

	// The second unit starts where the first one's break ends.
	units, err := NewApplier().Apply(plan, optimizer.Response{
		{ID: "task-1_0", Start: 72, End: 87},
		{ID: "task-2_0", Start: 87, End: 102},
	}, tasks, 15)
	require.NoError(t, err)
	assert.Len(t, units, 2)
	assert.NoError(t, plan.CheckOverlaps())
}

func TestMove(t *testing.T) {
	plan := newPlan()
	unit := &domain.LearningUnit{ID: "u1", TaskID: "task-1", Start: weekStart.Add(6 * time.Hour), End: weekStart.Add(7 * time.Hour)}
	sibling := &domain.LearningUnit{ID: "u2", TaskID: "task-2", Start: weekStart.Add(9 * time.Hour), End: weekStart.Add(10 * time.Hour)}
	plan.AddUnit(unit)
	plan.AddUnit(sibling)

	a := NewApplier()

	t.Run("overlap with sibling leaves unit untouched", func(t *testing.T) {
		err := a.Move(plan, unit, optimizer.Assignment{ID: "task-1_0", Start: 105, End: 120}, 15)
		assert.ErrorIs(t, err, domain.ErrUnitOverlap)
		assert.Equal(t, weekStart.Add(6*time.Hour), unit.Start)
	})

	t.Run("wrong task", func(t *testing.T) {
		err := a.Move(plan, unit, optimizer.Assignment{ID: "task-2_0", Start: 200, End: 215}, 15)
		assert.ErrorIs(t, err, domain.ErrOptimizerResponse)
	})

	t.Run("free slot", func(t *testing.T) {
		err := a.Move(plan, unit, optimizer.Assignment{ID: "task-1_0", Start: 200, End: 215}, 15)
		require.NoError(t, err)
		assert.Equal(t, weekStart.Add(1000*time.Minute), unit.Start)
		assert.Equal(t, weekStart.Add(1060*time.Minute), unit.End)
	})
}
