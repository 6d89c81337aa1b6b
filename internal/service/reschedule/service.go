package reschedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/metrics"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/tracing"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/plan"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/request"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/uow"
)

// PenaltyApplier records that a task was pushed out of a slot.
type PenaltyApplier interface {
	ApplyPenalty(ctx context.Context, task *domain.Task, minutesPenalized, slotOffset int) error
}

type Service struct {
	plans     domain.PlanRepository
	tasks     domain.TaskRepository
	builder   *request.Builder
	optimizer optimizer.Optimizer
	applier   *plan.Applier
	penalties PenaltyApplier
	runner    *uow.Runner
	recorder  domain.PlanResultRecorder
	metrics   *metrics.PlannerMetrics
}

func NewService(
	plans domain.PlanRepository,
	tasks domain.TaskRepository,
	builder *request.Builder,
	opt optimizer.Optimizer,
	applier *plan.Applier,
	penalties PenaltyApplier,
	runner *uow.Runner,
	recorder domain.PlanResultRecorder,
	plannerMetrics *metrics.PlannerMetrics,
) *Service {
	return &Service{
		plans:     plans,
		tasks:     tasks,
		builder:   builder,
		optimizer: opt,
		applier:   applier,
		penalties: penalties,
		runner:    runner,
		recorder:  recorder,
		metrics:   plannerMetrics,
	}
}

// RescheduleUnit moves one planned unit of the user's week to a slot the optimizer
// picks, never its current one.
func (s *Service) RescheduleUnit(ctx context.Context, userID string, weekStart time.Time, unitID string, now time.Time) (*domain.LearningUnit, error) {
	weekStart = slot.WeekStart(weekStart)

	ctx, span := tracing.StartRescheduleSpan(ctx, userID, unitID)
	defer span.End()

	record := domain.PlanResultRecord{
		UserID:    userID,
		WeekStart: weekStart,
		Operation: plan.OperationReschedule,
	}

	var moved *domain.LearningUnit
	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		p, unit, err := s.locate(ctx, userID, weekStart, unitID)
		if err != nil {
			return err
		}
		record.Revision = p.Revision

		task, err := s.tasks.GetTask(ctx, unit.TaskID)
		if err != nil {
			return err
		}

		built, err := s.builder.Build(ctx, request.Input{
			UserID:    userID,
			WeekStart: weekStart,
			Now:       now,
			Reschedule: &request.Target{
				Plan: p,
				Unit: unit,
				Task: task,
			},
		})
		if err != nil {
			return err
		}
		if len(built.Request.Tasks) == 0 {
			return domain.ErrTaskNotSchedulable
		}
		record.TaskCount = len(built.Request.Tasks)
		record.FixedBlockCount = len(built.Request.FixedBlocks)

		start := time.Now()
		resp, err := s.optimizer.Optimize(ctx, built.Request)
		record.OptimizerLatency = time.Since(start)
		s.metrics.RecordOptimizerDuration(ctx, plan.OperationReschedule, record.OptimizerLatency)
		if err != nil {
			return err
		}
		if len(resp) != 1 {
			return fmt.Errorf("%w: expected one assignment, got %d", domain.ErrOptimizerResponse, len(resp))
		}

		vacated := slot.ToSlot(unit.Start)
		minutes := int(unit.Duration() / time.Minute)
		if err := s.penalties.ApplyPenalty(ctx, task, minutes, vacated); err != nil {
			return fmt.Errorf("apply penalty: %w", err)
		}

		if err := s.applier.Move(p, unit, resp[0], built.BreakMinutes); err != nil {
			return err
		}

		if err := s.plans.UpdateUnit(ctx, unit); err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		moved = unit
		return nil
	})

	outcome := plan.Outcome(err)
	record.Outcome = outcome
	if moved != nil {
		record.UnitCount = 1
		record.PlannedMinutes = int(moved.Duration() / time.Minute)
	}
	s.record(ctx, record)
	s.metrics.RecordReschedule(ctx, outcome)
	tracing.RecordPlanResult(span, record.TaskCount, record.UnitCount, err)

	if err != nil {
		slog.WarnContext(ctx, "reschedule failed",
			slog.String("event", "unit.reschedule.fail"),
			slog.String("user_id", userID),
			slog.String("unit_id", unitID),
			slog.String("outcome", outcome),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	slog.InfoContext(ctx, "unit rescheduled",
		slog.String("event", "unit.reschedule.success"),
		slog.String("unit_id", moved.ID),
		slog.Time("start", moved.Start),
		slog.Time("end", moved.End),
	)
	return moved, nil
}

// locate loads the unit's plan and checks that it is the user's current plan for
// weekStart.
func (s *Service) locate(ctx context.Context, userID string, weekStart time.Time, unitID string) (*domain.LearningPlan, *domain.LearningUnit, error) {
	stored, err := s.plans.GetUnit(ctx, unitID)
	if err != nil {
		return nil, nil, err
	}

	p, err := s.plans.GetPlan(ctx, stored.PlanID)
	if err != nil {
		return nil, nil, err
	}
	if !p.BelongsTo(userID) {
		return nil, nil, domain.ErrAccessDenied
	}
	if !p.WeekStart.Equal(weekStart) {
		return nil, nil, domain.ErrUnitNotFound
	}

	latest, err := s.plans.GetLatestPlan(ctx, userID, weekStart)
	if err != nil {
		return nil, nil, err
	}
	if latest.ID != p.ID {
		return nil, nil, domain.ErrUnitSuperseded
	}

	unit, ok := p.FindUnit(unitID)
	if !ok {
		return nil, nil, domain.ErrUnitNotFound
	}
	if unit.Status != domain.UnitStatusPlanned {
		return nil, nil, domain.ErrUnitNotPlanned
	}
	return p, unit, nil
}

func (s *Service) record(ctx context.Context, record domain.PlanResultRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordPlanResult(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record reschedule result",
			slog.String("error", err.Error()),
		)
	}
}
