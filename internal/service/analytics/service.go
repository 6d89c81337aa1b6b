package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/metrics"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/tracing"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/slot"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/uow"
)

const (
	SourceStored  = "stored"
	SourceRatings = "ratings"
	SourceSibling = "sibling"
	SourceEmpty   = "empty"
)

type Service struct {
	tasks    domain.TaskRepository
	profiles domain.CostProfileRepository
	plans    domain.PlanRepository
	runner   *uow.Runner
	metrics  *metrics.PlannerMetrics
	now      func() time.Time
}

func NewService(
	tasks domain.TaskRepository,
	profiles domain.CostProfileRepository,
	plans domain.PlanRepository,
	runner *uow.Runner,
	plannerMetrics *metrics.PlannerMetrics,
) *Service {
	return &Service{
		tasks:    tasks,
		profiles: profiles,
		plans:    plans,
		runner:   runner,
		metrics:  plannerMetrics,
		now:      time.Now,
	}
}

// GetTaskCostProfile resolves the cost profile of a task owned by userID.
func (s *Service) GetTaskCostProfile(ctx context.Context, userID, taskID string) ([]domain.CostEntry, error) {
	var entries []domain.CostEntry
	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		task, err := s.tasks.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		module, err := s.tasks.GetModule(ctx, task.ModuleID)
		if err != nil {
			return err
		}
		if !module.BelongsTo(userID) {
			return domain.ErrAccessDenied
		}

		entries, err = s.GetCostProfile(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetCostProfile returns the task's slot preferences. A fresh stored profile is
// returned as is; otherwise it is rebuilt from ratings and persisted, or borrowed
// from a same-category sibling when the task has no ratings yet.
// Must run inside the caller's transaction.
func (s *Service) GetCostProfile(ctx context.Context, task *domain.Task) ([]domain.CostEntry, error) {
	ctx, span := tracing.StartCostProfileSpan(ctx, task.ID)
	defer span.End()

	entries, source, err := s.resolve(ctx, task)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	tracing.RecordCostProfileSource(span, source, len(entries))
	s.metrics.RecordCostProfileResolved(ctx, source)

	return entries, nil
}

func (s *Service) resolve(ctx context.Context, task *domain.Task) ([]domain.CostEntry, string, error) {
	profile, err := s.loadProfile(ctx, task.ID)
	if err != nil {
		return nil, "", err
	}

	if profile != nil && !profile.Stale {
		entries, err := profile.Entries()
		if err != nil {
			logCorruptProfile(ctx, task.ID, "entries", err)
			return []domain.CostEntry{}, SourceEmpty, nil
		}
		return entries, SourceStored, nil
	}

	var penalties []domain.CostEntry
	if profile != nil {
		penalties, err = profile.Penalties()
		if err != nil {
			logCorruptProfile(ctx, task.ID, "penalties", err)
			penalties = nil
		}
	}

	units, err := s.plans.ListRatedUnitsByTask(ctx, task.ID)
	if err != nil {
		return nil, "", fmt.Errorf("list rated units: %w", err)
	}

	if len(units) > 0 {
		rated := make([]domain.CostEntry, 0, len(units))
		for _, u := range units {
			if u.Rating == nil {
				continue
			}
			rated = append(rated, domain.CostEntry{
				Offset: slot.ToSlot(u.Start),
				Cost:   u.Rating.Cost(),
			})
		}

		entries := domain.OverlayEntries(domain.MergeEntries(rated), penalties)
		if err := s.persistRecomputed(ctx, task.ID, profile, entries); err != nil {
			return nil, "", err
		}
		return entries, SourceRatings, nil
	}

	sibling, err := s.siblingEntries(ctx, task)
	if err != nil {
		return nil, "", err
	}
	if len(sibling) > 0 {
		return domain.OverlayEntries(sibling, penalties), SourceSibling, nil
	}

	if len(penalties) > 0 {
		return domain.OverlayEntries(nil, penalties), SourceEmpty, nil
	}
	return []domain.CostEntry{}, SourceEmpty, nil
}

func (s *Service) persistRecomputed(ctx context.Context, taskID string, profile *domain.CostProfile, entries []domain.CostEntry) error {
	if profile == nil {
		profile = domain.NewCostProfile(taskID)
	}
	if err := profile.SetEntries(entries); err != nil {
		// Serialization failures degrade to a neutral profile without a write.
		logCorruptProfile(ctx, taskID, "entries", err)
		return nil
	}
	profile.Stale = false
	profile.UpdatedAt = s.now()

	if err := s.profiles.SaveCostProfile(ctx, profile); err != nil {
		return fmt.Errorf("save cost profile: %w", err)
	}

	slog.DebugContext(ctx, "cost profile recomputed",
		slog.String("task_id", taskID),
		slog.Int("entries", len(entries)),
	)
	return nil
}

// siblingEntries returns the first usable profile among tasks of the same module and category.
func (s *Service) siblingEntries(ctx context.Context, task *domain.Task) ([]domain.CostEntry, error) {
	siblings, err := s.tasks.ListTasksByModule(ctx, task.ModuleID)
	if err != nil {
		return nil, fmt.Errorf("list sibling tasks: %w", err)
	}

	for _, sibling := range siblings {
		if sibling.ID == task.ID || sibling.Category != task.Category {
			continue
		}

		profile, err := s.loadProfile(ctx, sibling.ID)
		if err != nil {
			return nil, err
		}
		if profile == nil || profile.Stale {
			continue
		}

		entries, err := profile.Entries()
		if err != nil {
			logCorruptProfile(ctx, sibling.ID, "entries", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		slog.DebugContext(ctx, "borrowing sibling cost profile",
			slog.String("task_id", task.ID),
			slog.String("sibling_task_id", sibling.ID),
		)
		return entries, nil
	}

	return nil, nil
}

// ApplyPenalty writes a negative entry at the vacated offset and marks the profile
// stale. minutesPenalized sets the magnitude.
func (s *Service) ApplyPenalty(ctx context.Context, task *domain.Task, minutesPenalized, slotOffset int) error {
	profile, err := s.loadProfile(ctx, task.ID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = domain.NewCostProfile(task.ID)
	}

	penalty := []domain.CostEntry{{Offset: slotOffset, Cost: -minutesPenalized}}

	penalties, err := profile.Penalties()
	if err != nil {
		logCorruptProfile(ctx, task.ID, "penalties", err)
		penalties = nil
	}
	entries, err := profile.Entries()
	if err != nil {
		logCorruptProfile(ctx, task.ID, "entries", err)
		entries = nil
	}

	if err := profile.SetPenalties(domain.OverlayEntries(penalties, penalty)); err != nil {
		return fmt.Errorf("encode penalties: %w", err)
	}
	if err := profile.SetEntries(domain.OverlayEntries(entries, penalty)); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	profile.Stale = true
	profile.UpdatedAt = s.now()

	if err := s.profiles.SaveCostProfile(ctx, profile); err != nil {
		return fmt.Errorf("save cost profile: %w", err)
	}

	s.metrics.RecordPenaltyApplied(ctx)
	slog.InfoContext(ctx, "reschedule penalty applied",
		slog.String("task_id", task.ID),
		slog.Int("slot_offset", slotOffset),
		slog.Int("cost", -minutesPenalized),
	)
	return nil
}

// MarkStale flags the task's profile for recomputation on next read.
func (s *Service) MarkStale(ctx context.Context, taskID string) error {
	profile, err := s.loadProfile(ctx, taskID)
	if err != nil {
		return err
	}
	if profile == nil || profile.Stale {
		return nil
	}

	profile.Stale = true
	profile.UpdatedAt = s.now()
	if err := s.profiles.SaveCostProfile(ctx, profile); err != nil {
		return fmt.Errorf("save cost profile: %w", err)
	}
	return nil
}

func (s *Service) loadProfile(ctx context.Context, taskID string) (*domain.CostProfile, error) {
	profile, err := s.profiles.GetCostProfile(ctx, taskID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cost profile: %w", err)
	}
	return profile, nil
}

func logCorruptProfile(ctx context.Context, taskID, part string, err error) {
	slog.WarnContext(ctx, "cost profile unreadable, treating as empty",
		slog.String("event", "cost_profile.decode.fail"),
		slog.String("task_id", taskID),
		slog.String("part", part),
		slog.String("error", err.Error()),
	)
}
