package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/imgbuild/internal/adapters/telemetry"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_SpanAttributesAndStatus(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider, "test")
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "create-zone-analog")
	span.SetAttribute("dataset", "zones/abc")
	span.SetAttribute("packages", 3)
	span.SetAttribute("verbose", true)
	span.SetAttribute("dirs", []string{"/bin", "/usr"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.RecordError(errors.New("clone failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	got := ended[0]
	assert.Equal(t, "create-zone-analog", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "clone failed", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String("dataset", "zones/abc"))
	assert.Contains(t, got.Attributes(), attribute.Int("packages", 3))
	assert.Contains(t, got.Attributes(), attribute.Bool("verbose", true))
	assert.Contains(t, got.Attributes(), attribute.StringSlice("dirs", []string{"/bin", "/usr"}))
	assert.Contains(t, got.Attributes(), attribute.String("other", "{1}"))
}

func TestBridge_LogsSpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Debug("ensure-base-image started"),
		mockLogger.EXPECT().Debug(gomock.Cond(func(msg string) bool {
			return strings.HasPrefix(msg, "ensure-base-image finished in")
		})),
	)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(mockLogger), "test")
	_, span := tracer.Start(context.Background(), "ensure-base-image")
	span.End()
}

func TestBridge_WarnsOnFailedSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Debug("compensate.destroy-dataset started")
	mockLogger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "compensate.destroy-dataset failed after") &&
			strings.HasSuffix(msg, ": dataset is busy")
	}))

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(mockLogger), "test")
	_, span := tracer.Start(context.Background(), "compensate.destroy-dataset")
	span.RecordError(errors.New("dataset is busy"))
	span.End()
}

func TestBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))

	_, span := provider.Tracer("test").Start(context.Background(), "noop")
	span.End()

	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test")
	assert.Equal(t, ctx, newCtx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
