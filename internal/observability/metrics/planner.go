package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	plannerMeterName = "learning.planner"
)

type PlannerMetrics struct {
	plansGenerated      metric.Int64Counter
	unitsPlaced         metric.Int64Counter
	reschedules         metric.Int64Counter
	optimizerDuration   metric.Float64Histogram
	costProfileResolved metric.Int64Counter
	penaltiesApplied    metric.Int64Counter
}

func NewPlannerMetrics() (*PlannerMetrics, error) {
	meter := otel.Meter(plannerMeterName)

	plansGenerated, err := meter.Int64Counter(
		"planner_plans_generated_total",
		metric.WithDescription("Total number of plan generation attempts"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	unitsPlaced, err := meter.Int64Counter(
		"planner_units_placed_total",
		metric.WithDescription("Total number of learning units written to plans"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, err
	}

	reschedules, err := meter.Int64Counter(
		"planner_reschedules_total",
		metric.WithDescription("Total number of unit reschedule attempts"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, err
	}

	optimizerDuration, err := meter.Float64Histogram(
		"planner_optimizer_duration_seconds",
		metric.WithDescription("Optimizer round trip duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120,
		),
	)
	if err != nil {
		return nil, err
	}

	costProfileResolved, err := meter.Int64Counter(
		"planner_cost_profiles_resolved_total",
		metric.WithDescription("Cost profile lookups by source"),
		metric.WithUnit("{profile}"),
	)
	if err != nil {
		return nil, err
	}

	penaltiesApplied, err := meter.Int64Counter(
		"planner_penalties_applied_total",
		metric.WithDescription("Total number of reschedule penalties written"),
		metric.WithUnit("{penalty}"),
	)
	if err != nil {
		return nil, err
	}

	return &PlannerMetrics{
		plansGenerated:      plansGenerated,
		unitsPlaced:         unitsPlaced,
		reschedules:         reschedules,
		optimizerDuration:   optimizerDuration,
		costProfileResolved: costProfileResolved,
		penaltiesApplied:    penaltiesApplied,
	}, nil
}

// All recorders tolerate a nil receiver so services can run without metrics.

func (m *PlannerMetrics) RecordPlanGenerated(ctx context.Context, outcome string, units int) {
	if m == nil {
		return
	}
	m.plansGenerated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	if units > 0 {
		m.unitsPlaced.Add(ctx, int64(units), metric.WithAttributes(
			attribute.String("operation", "generate"),
		))
	}
}

func (m *PlannerMetrics) RecordReschedule(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.reschedules.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *PlannerMetrics) RecordOptimizerDuration(ctx context.Context, operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.optimizerDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

func (m *PlannerMetrics) RecordCostProfileResolved(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.costProfileResolved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
	))
}

func (m *PlannerMetrics) RecordPenaltyApplied(ctx context.Context) {
	if m == nil {
		return
	}
	m.penaltiesApplied.Add(ctx, 1)
}
