package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

type TaskRepository interface {
	GetTask(ctx context.Context, taskID string) (*Task, error)
	GetModule(ctx context.Context, moduleID string) (*Module, error)
	ListTasksByOwner(ctx context.Context, userID string) ([]*Task, error)
	ListTasksByModule(ctx context.Context, moduleID string) ([]*Task, error)
}

type CostProfileRepository interface {
	GetCostProfile(ctx context.Context, taskID string) (*CostProfile, error)
	SaveCostProfile(ctx context.Context, profile *CostProfile) error
}

type PlanRepository interface {
	GetLatestPlan(ctx context.Context, userID string, weekStart time.Time) (*LearningPlan, error)
	GetPlan(ctx context.Context, planID string) (*LearningPlan, error)
	CreatePlan(ctx context.Context, plan *LearningPlan) error
	GetUnit(ctx context.Context, unitID string) (*LearningUnit, error)
	UpdateUnit(ctx context.Context, unit *LearningUnit) error
	// ListRatedUnitsByTask returns completed units of the task that carry a rating.
	ListRatedUnitsByTask(ctx context.Context, taskID string) ([]*LearningUnit, error)
	CreateRating(ctx context.Context, rating *Rating) error
}

type ConstraintRepository interface {
	GetPreferences(ctx context.Context, userID string) (*LearningPreferences, error)
	ListFreeTimes(ctx context.Context, userID string) ([]*FreeTime, error)
}

// Transactor runs fn so that every repository call made with the passed context
// commits or rolls back together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserLocker serializes top-level operations of a single user across instances.
type UserLocker interface {
	Lock(ctx context.Context, userID string) (unlock func(ctx context.Context) error, err error)
}
