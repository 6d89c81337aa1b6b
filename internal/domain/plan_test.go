package domain

import (
	"errors"
	"testing"
	"time"
)

func mustUnit(t *testing.T, id string, start, end time.Time) *LearningUnit {
	t.Helper()
	u, err := NewLearningUnit(id, "task-1", start, end)
	if err != nil {
		t.Fatalf("failed to create unit: %v", err)
	}
	return u
}

func TestNewLearningUnitRejectsEmptyInterval(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
	}{
		{name: "end equals start", end: start},
		{name: "end before start", end: start.Add(-time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLearningUnit("unit-1", "task-1", start, tt.end)
			if !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("expected ErrInvalidInterval, got %v", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected error to be a validation error, got %v", err)
			}
		})
	}
}

func TestCheckUnitOverlaps(t *testing.T) {
	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		units   func(t *testing.T) []*LearningUnit
		wantErr bool
	}{
		{
			name: "no units",
			units: func(t *testing.T) []*LearningUnit {
				return nil
			},
		},
		{
			name: "touching units do not overlap",
			units: func(t *testing.T) []*LearningUnit {
				return []*LearningUnit{
					mustUnit(t, "a", base, base.Add(time.Hour)),
					mustUnit(t, "b", base.Add(time.Hour), base.Add(2*time.Hour)),
				}
			},
		},
		{
			name: "unsorted disjoint units",
			units: func(t *testing.T) []*LearningUnit {
				return []*LearningUnit{
					mustUnit(t, "b", base.Add(3*time.Hour), base.Add(4*time.Hour)),
					mustUnit(t, "a", base, base.Add(time.Hour)),
				}
			},
		},
		{
			name: "partially overlapping units",
			units: func(t *testing.T) []*LearningUnit {
				return []*LearningUnit{
					mustUnit(t, "a", base, base.Add(time.Hour)),
					mustUnit(t, "b", base.Add(30*time.Minute), base.Add(2*time.Hour)),
				}
			},
			wantErr: true,
		},
		{
			name: "contained unit",
			units: func(t *testing.T) []*LearningUnit {
				return []*LearningUnit{
					mustUnit(t, "outer", base, base.Add(3*time.Hour)),
					mustUnit(t, "x", base.Add(4*time.Hour), base.Add(5*time.Hour)),
					mustUnit(t, "inner", base.Add(time.Hour), base.Add(2*time.Hour)),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUnitOverlaps(tt.units(t))
			if tt.wantErr {
				if !errors.Is(err, ErrUnitOverlap) {
					t.Errorf("expected ErrUnitOverlap, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLearningPlanAddUnitSetsPlanID(t *testing.T) {
	weekStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	plan := NewLearningPlan("plan-1", "user-1", weekStart, 1, weekStart)
	unit := mustUnit(t, "unit-1", weekStart.Add(time.Hour), weekStart.Add(2*time.Hour))

	plan.AddUnit(unit)

	if unit.PlanID != "plan-1" {
		t.Errorf("PlanID = %q, want %q", unit.PlanID, "plan-1")
	}
	if got, ok := plan.FindUnit("unit-1"); !ok || got != unit {
		t.Error("FindUnit did not return the added unit")
	}
	if !plan.WeekEnd.Equal(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("WeekEnd = %v, want 2024-01-21", plan.WeekEnd)
	}
}

func TestLearningUnitComplete(t *testing.T) {
	start := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	unit := mustUnit(t, "unit-1", start, start.Add(time.Hour))

	if err := unit.Complete(-1); !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("expected ErrNegativeDuration, got %v", err)
	}
	if unit.Status != UnitStatusPlanned {
		t.Errorf("status changed after rejected completion: %s", unit.Status)
	}

	if err := unit.Complete(45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit.Status != UnitStatusCompleted {
		t.Errorf("Status = %s, want completed", unit.Status)
	}
	if unit.ActualDurationMinutes == nil || *unit.ActualDurationMinutes != 45 {
		t.Errorf("ActualDurationMinutes = %v, want 45", unit.ActualDurationMinutes)
	}
}
