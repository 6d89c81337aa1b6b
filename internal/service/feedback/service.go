// Package feedback records what happened to planned units: completion, misses and
// the ratings that drive cost profiles.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/uow"
)

type StaleMarker interface {
	MarkStale(ctx context.Context, taskID string) error
}

type RatingInput struct {
	Concentration     domain.Level
	PerceivedDuration domain.Level
	Achievement       domain.Level
}

type Service struct {
	plans    domain.PlanRepository
	profiles StaleMarker
	runner   *uow.Runner
	newID    func() string
	now      func() time.Time
}

func NewService(plans domain.PlanRepository, profiles StaleMarker, runner *uow.Runner) *Service {
	return &Service{
		plans:    plans,
		profiles: profiles,
		runner:   runner,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *Service) CompleteUnit(ctx context.Context, userID, unitID string, actualMinutes int) (*domain.LearningUnit, error) {
	var unit *domain.LearningUnit
	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		u, err := s.currentUnit(ctx, userID, unitID)
		if err != nil {
			return err
		}
		if err := u.Complete(actualMinutes); err != nil {
			return err
		}
		if err := s.plans.UpdateUnit(ctx, u); err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		unit = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "unit completed",
		slog.String("unit_id", unitID),
		slog.Int("actual_minutes", actualMinutes),
	)
	return unit, nil
}

func (s *Service) MarkMissed(ctx context.Context, userID, unitID string) (*domain.LearningUnit, error) {
	var unit *domain.LearningUnit
	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		u, err := s.currentUnit(ctx, userID, unitID)
		if err != nil {
			return err
		}
		u.MarkMissed()
		if err := s.plans.UpdateUnit(ctx, u); err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		unit = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// SubmitRating attaches the only rating a completed unit can have and marks the
// task's cost profile for recomputation.
func (s *Service) SubmitRating(ctx context.Context, userID, unitID string, in RatingInput) (*domain.Rating, error) {
	rating := &domain.Rating{
		ID:                s.newID(),
		UnitID:            unitID,
		Concentration:     in.Concentration,
		PerceivedDuration: in.PerceivedDuration,
		Achievement:       in.Achievement,
		CreatedAt:         s.now(),
	}
	if err := rating.Validate(); err != nil {
		return nil, err
	}

	err := s.runner.Do(ctx, userID, func(ctx context.Context) error {
		u, _, err := s.ownedUnit(ctx, userID, unitID)
		if err != nil {
			return err
		}
		if u.Status != domain.UnitStatusCompleted {
			return domain.ErrUnitNotCompleted
		}
		if u.Rating != nil {
			return domain.ErrRatingAlreadyExists
		}

		if err := s.plans.CreateRating(ctx, rating); err != nil {
			return fmt.Errorf("create rating: %w", err)
		}
		return s.profiles.MarkStale(ctx, u.TaskID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "rating submitted",
		slog.String("unit_id", unitID),
		slog.Int("cost", rating.Cost()),
	)
	return rating, nil
}

func (s *Service) ownedUnit(ctx context.Context, userID, unitID string) (*domain.LearningUnit, *domain.LearningPlan, error) {
	unit, err := s.plans.GetUnit(ctx, unitID)
	if err != nil {
		return nil, nil, err
	}
	plan, err := s.plans.GetPlan(ctx, unit.PlanID)
	if err != nil {
		return nil, nil, err
	}
	if !plan.BelongsTo(userID) {
		return nil, nil, domain.ErrAccessDenied
	}
	return unit, plan, nil
}

// currentUnit is ownedUnit restricted to the latest revision of the unit's week.
// Ratings skip this check: a unit completed before regeneration still happened.
func (s *Service) currentUnit(ctx context.Context, userID, unitID string) (*domain.LearningUnit, error) {
	unit, plan, err := s.ownedUnit(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	latest, err := s.plans.GetLatestPlan(ctx, userID, plan.WeekStart)
	if err != nil {
		return nil, err
	}
	if latest.ID != plan.ID {
		return nil, domain.ErrUnitSuperseded
	}
	return unit, nil
}
