//go:build gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt         time.Time           `bigquery:"recorded_at"`
	UserID             string              `bigquery:"user_id"`
	WeekStart          bigquery.NullString `bigquery:"week_start"`
	Operation          string              `bigquery:"operation"`
	Outcome            string              `bigquery:"outcome"`
	Revision           int64               `bigquery:"revision"`
	TaskCount          int64               `bigquery:"task_count"`
	FixedBlockCount    int64               `bigquery:"fixed_block_count"`
	UnitCount          int64               `bigquery:"unit_count"`
	PlannedMinutes     int64               `bigquery:"planned_minutes"`
	OptimizerLatencyMs int64               `bigquery:"optimizer_latency_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, plan result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordPlanResult(ctx context.Context, record domain.PlanResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:         time.Now(),
		UserID:             record.UserID,
		WeekStart:          bigquery.NullString{StringVal: record.WeekStart.Format(time.DateOnly), Valid: !record.WeekStart.IsZero()},
		Operation:          record.Operation,
		Outcome:            record.Outcome,
		Revision:           int64(record.Revision),
		TaskCount:          int64(record.TaskCount),
		FixedBlockCount:    int64(record.FixedBlockCount),
		UnitCount:          int64(record.UnitCount),
		PlannedMinutes:     int64(record.PlannedMinutes),
		OptimizerLatencyMs: record.OptimizerLatency.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert plan result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("operation", record.Operation),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
