package domain

import (
	"context"
	"time"
)

type PlanResultRecord struct {
	UserID           string
	WeekStart        time.Time
	Operation        string
	Revision         int
	TaskCount        int
	FixedBlockCount  int
	UnitCount        int
	PlannedMinutes   int
	OptimizerLatency time.Duration
	Outcome          string
}

type PlanResultRecorder interface {
	RecordPlanResult(ctx context.Context, record PlanResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
