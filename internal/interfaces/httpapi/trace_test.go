package httpapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestTracedSpanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.ShowGolfBag", want: true},
		{name: "view span", in: "httpapi.Views.render", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
		{name: "prefix without dot", in: "httpapi.Handler", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracedSpanName(tt.in))
		})
	}
}

func TestStartSpan_NoParentReturnsNoop(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := startSpan(ctx, "httpapi.Handler.ListGolfBags")
	defer span.End()

	require.Equal(t, ctx, gotCtx)
	assert.False(t, span.IsRecording())
	assert.False(t, trace.SpanContextFromContext(gotCtx).IsValid())
}

func TestFailSpan_IgnoresNonRecordingSpans(t *testing.T) {
	// A background context carries a non-recording span; nothing should panic.
	failSpan(context.Background(), errors.New("boom"))
	failSpan(context.Background(), nil)
}
