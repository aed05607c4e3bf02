package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a function to collect metrics.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	// Save the original provider
	originalProvider := otel.GetMeterProvider()

	// Set test provider
	otel.SetMeterProvider(provider)

	// Return cleanup function
	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	// NewMetricsRecorder uses the global provider
	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	// Should not be a noop (since we set up a real provider)
	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordRender(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	// Create a fresh metrics instance using the test provider
	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("records render count", func(t *testing.T) {
		m.RecordRender(ctx, "welcome-email", 5*time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "herald.renders")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)

		// Find the datapoint for our template
		found := false
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "template" && attr.Value.AsString() == "welcome-email" {
					found = true
					assert.GreaterOrEqual(t, dp.Value, int64(1))
				}
			}
		}
		assert.True(t, found, "Expected to find datapoint for template=welcome-email")
	})

	t.Run("records latency", func(t *testing.T) {
		m.RecordRender(ctx, "invoice", 10*time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "herald.render.latency_ms")
		require.NotNil(t, metric)

		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)
	})

	t.Run("records errors when present", func(t *testing.T) {
		testErr := errors.New("render failed")
		m.RecordRender(ctx, "broken", time.Millisecond, testErr)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "herald.render.errors")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)
	})

	t.Run("no error counter on success", func(t *testing.T) {
		m.RecordRender(ctx, "clean", time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "herald.render.errors")
		if metric == nil {
			return // No errors recorded at all is fine
		}

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			for _, attr := range dp.Attributes.ToSlice() {
				if attr.Key == "template" {
					assert.NotEqual(t, "clean", attr.Value.AsString())
				}
			}
		}
	})
}

func TestRecordRegistration(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("counts registered keys", func(t *testing.T) {
		m.RecordRegistration(ctx, 3, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "herald.registered_keys")
		require.NotNil(t, metric)

		sum, ok := metric.Data.(metricdata.Sum[int64])
		require.True(t, ok, "Expected Sum type")
		require.NotEmpty(t, sum.DataPoints)
		assert.GreaterOrEqual(t, sum.DataPoints[0].Value, int64(3))
	})

	t.Run("failed registrations are not counted", func(t *testing.T) {
		before := collectMetrics(t, reader)
		beforeMetric := findMetric(before, "herald.registered_keys")
		require.NotNil(t, beforeMetric)
		beforeSum := beforeMetric.Data.(metricdata.Sum[int64]).DataPoints[0].Value

		m.RecordRegistration(ctx, 5, errors.New("duplicate"))

		after := collectMetrics(t, reader)
		afterMetric := findMetric(after, "herald.registered_keys")
		require.NotNil(t, afterMetric)
		afterSum := afterMetric.Data.(metricdata.Sum[int64]).DataPoints[0].Value

		assert.Equal(t, beforeSum, afterSum)
	})
}
