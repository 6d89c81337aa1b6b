package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/metrics"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/tracing"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/request"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/uow"
)

const (
	OperationGenerate   = "generate"
	OperationReschedule = "reschedule"
)

const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeDenied     = "access_denied"
	OutcomeInvalid    = "validation_error"
	OutcomeScheduling = "scheduling_error"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

// Outcome classifies err for metrics and result records.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		return OutcomeDenied
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrScheduling):
		return OutcomeScheduling
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}

type Service struct {
	plans     domain.PlanRepository
	builder   *request.Builder
	optimizer optimizer.Optimizer
	applier   *Applier
	runner    *uow.Runner
	recorder  domain.PlanResultRecorder
	metrics   *metrics.PlannerMetrics
	newID     func() string
}

func NewService(
	plans domain.PlanRepository,
	builder *request.Builder,
	opt optimizer.Optimizer,
	applier *Applier,
	runner *uow.Runner,
	recorder domain.PlanResultRecorder,
	plannerMetrics *metrics.PlannerMetrics,
) *Service {
	return &Service{
		plans:     plans,
		builder:   builder,
		optimizer: opt,
		applier:   applier,
		runner:    runner,
		recorder:  recorder,
		metrics:   plannerMetrics,
		newID:     uuid.NewString,
	}
}

// GeneratePlan plans the week containing weekStart and stores it as a new revision.
func (s *Service) GeneratePlan(ctx context.Context, userID string, weekStart, now time.Time) (*domain.LearningPlan, error) {
	weekStart = slot.WeekStart(weekStart)

	ctx, span := tracing.StartPlanGenerationSpan(ctx, userID, weekStart)
	defer span.End()

	record := domain.PlanResultRecord{
		UserID:    userID,
		WeekStart: weekStart,
		Operation: OperationGenerate,
	}

	var plan *domain.LearningPlan
	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		revision := 1
		prev, err := s.plans.GetLatestPlan(ctx, userID, weekStart)
		switch {
		case err == nil:
			revision = prev.Revision + 1
		case errors.Is(err, domain.ErrNotFound):
		default:
			return fmt.Errorf("get latest plan: %w", err)
		}
		record.Revision = revision

		built, err := s.builder.Build(ctx, request.Input{
			UserID:    userID,
			WeekStart: weekStart,
			Now:       now,
		})
		if err != nil {
			return err
		}
		record.TaskCount = len(built.Request.Tasks)
		record.FixedBlockCount = len(built.Request.FixedBlocks)

		candidate := domain.NewLearningPlan(s.newID(), userID, weekStart, revision, now)

		if len(built.Request.Tasks) > 0 {
			resp, latency, err := s.optimize(ctx, OperationGenerate, built.Request)
			record.OptimizerLatency = latency
			if err != nil {
				return err
			}

			if _, err := s.applier.Apply(candidate, resp, built.Tasks, built.BreakMinutes); err != nil {
				return err
			}
		}

		if err := s.plans.CreatePlan(ctx, candidate); err != nil {
			return fmt.Errorf("create plan: %w", err)
		}
		plan = candidate
		return nil
	})

	outcome := Outcome(err)
	record.Outcome = outcome
	if plan != nil {
		record.UnitCount = len(plan.Units)
		record.PlannedMinutes = plannedMinutes(plan.Units)
	}
	s.record(ctx, record)
	s.metrics.RecordPlanGenerated(ctx, outcome, record.UnitCount)
	tracing.RecordPlanResult(span, record.TaskCount, record.UnitCount, err)

	if err != nil {
		slog.WarnContext(ctx, "plan generation failed",
			slog.String("event", "plan.generate.fail"),
			slog.String("user_id", userID),
			slog.String("week_start", weekStart.Format(time.DateOnly)),
			slog.String("outcome", outcome),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	slog.InfoContext(ctx, "plan generated",
		slog.String("event", "plan.generate.success"),
		slog.String("user_id", userID),
		slog.String("plan_id", plan.ID),
		slog.Int("revision", plan.Revision),
		slog.Int("unit_count", len(plan.Units)),
	)

	return plan, nil
}

// GetCurrentPlan returns the latest revision of the user's plan for the week.
func (s *Service) GetCurrentPlan(ctx context.Context, userID string, weekStart time.Time) (*domain.LearningPlan, error) {
	plan, err := s.plans.GetLatestPlan(ctx, userID, slot.WeekStart(weekStart))
	if err != nil {
		return nil, err
	}
	if !plan.BelongsTo(userID) {
		return nil, domain.ErrAccessDenied
	}
	return plan, nil
}

// optimize calls the optimizer once and reports the round trip.
func (s *Service) optimize(ctx context.Context, operation string, req *optimizer.Request) (optimizer.Response, time.Duration, error) {
	start := time.Now()
	resp, err := s.optimizer.Optimize(ctx, req)
	latency := time.Since(start)
	s.metrics.RecordOptimizerDuration(ctx, operation, latency)
	if err != nil {
		return nil, latency, err
	}
	if len(resp) == 0 {
		return nil, latency, fmt.Errorf("%w: empty response", domain.ErrOptimizerResponse)
	}
	return resp, latency, nil
}

// record hands the result to the recorder. Recording failures never fail the operation.
func (s *Service) record(ctx context.Context, record domain.PlanResultRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordPlanResult(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record plan result",
			slog.String("operation", record.Operation),
			slog.String("error", err.Error()),
		)
	}
}

func plannedMinutes(units []*domain.LearningUnit) int {
	total := 0
	for _, u := range units {
		total += int(u.Duration() / time.Minute)
	}
	return total
}
