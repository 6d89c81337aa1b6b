package planrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPlanResult(_ context.Context, _ domain.PlanResultRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
