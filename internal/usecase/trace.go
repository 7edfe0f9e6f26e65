package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("caddyshack/internal/usecase")

// startBagSpan opens a child span for a GolfBagService operation. Untraced
// callers get back the non-recording span already carried by ctx.
func startBagSpan(ctx context.Context, op string, bagID int64) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}

	attrs := []attribute.KeyValue{attribute.String("app.layer", "usecase")}
	if bagID > 0 {
		attrs = append(attrs, attribute.Int64("golfbag.id", bagID))
	}
	return usecaseTracer.Start(ctx, "usecase.GolfBagService."+op, trace.WithAttributes(attrs...))
}

// storeFailure wraps a repository error and marks the current span failed.
// Validation and not-found outcomes are expected and never reach here.
func storeFailure(ctx context.Context, action string, err error) error {
	wrapped := fmt.Errorf("%s: %w", action, err)
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.RecordError(err)
		span.SetStatus(codes.Error, action)
	}
	return wrapped
}
