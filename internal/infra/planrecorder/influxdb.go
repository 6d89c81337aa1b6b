//go:build !gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

const planResultMeasurement = "plan_result"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

// RecordPlanResult never fails the caller; write errors are logged.
func (r *influxDBRecorder) RecordPlanResult(ctx context.Context, record domain.PlanResultRecord) error {
	point := newPlanResultPoint(record, time.Now())

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write plan result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("operation", record.Operation),
			slog.String("outcome", record.Outcome),
		)
	}

	return nil
}

func newPlanResultPoint(record domain.PlanResultRecord, at time.Time) *write.Point {
	return influxdb2.NewPoint(
		planResultMeasurement,
		map[string]string{
			"operation":  record.Operation,
			"outcome":    record.Outcome,
			"week_start": record.WeekStart.Format(time.DateOnly),
		},
		map[string]any{
			"user_id":              record.UserID,
			"revision":             record.Revision,
			"task_count":           record.TaskCount,
			"fixed_block_count":    record.FixedBlockCount,
			"unit_count":           record.UnitCount,
			"planned_minutes":      record.PlannedMinutes,
			"optimizer_latency_ms": record.OptimizerLatency.Milliseconds(),
		},
		at,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
