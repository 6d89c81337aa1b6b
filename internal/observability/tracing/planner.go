package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const plannerTracerName = "github.com/KasumiMercury/primind-learning-planner/internal/service"

func PlannerTracer() trace.Tracer {
	return otel.Tracer(plannerTracerName)
}

func StartPlanGenerationSpan(ctx context.Context, userID string, weekStart time.Time) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planner.generate_plan",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("week_start", weekStart.Format(time.DateOnly)),
		),
	)
}

func StartRescheduleSpan(ctx context.Context, userID, unitID string) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planner.reschedule_unit",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("unit_id", unitID),
		),
	)
}

func StartCostProfileSpan(ctx context.Context, taskID string) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planner.cost_profile",
		trace.WithAttributes(
			attribute.String("task_id", taskID),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planner.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPlanResult(span trace.Span, taskCount, unitCount int, err error) {
	span.SetAttributes(
		attribute.Int("plan.task_count", taskCount),
		attribute.Int("plan.unit_count", unitCount),
	)
	RecordError(span, err)
}

func RecordCostProfileSource(span trace.Span, source string, entries int) {
	span.SetAttributes(
		attribute.String("cost_profile.source", source),
		attribute.Int("cost_profile.entries", entries),
	)
}

// RecordError sets the span status from err.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
