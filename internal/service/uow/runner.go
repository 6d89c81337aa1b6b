// Package uow composes the per-user lock and the database transaction that
// wrap every top-level planner operation.
package uow

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type Runner struct {
	transactor domain.Transactor
	locker     domain.UserLocker
}

// NewRunner returns a Runner. locker may be nil, in which case only the
// transaction boundary applies.
func NewRunner(transactor domain.Transactor, locker domain.UserLocker) *Runner {
	return &Runner{
		transactor: transactor,
		locker:     locker,
	}
}

func (r *Runner) Do(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if r.locker != nil {
		unlock, err := r.locker.Lock(ctx, userID)
		if err != nil {
			return err
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				slog.WarnContext(ctx, "failed to release user lock",
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	return r.transactor.WithinTransaction(ctx, fn)
}
