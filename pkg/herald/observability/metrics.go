package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records herald metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a template render with its duration and error status.
	RecordRender(ctx context.Context, template string, duration time.Duration, err error)

	// RecordRegistration records a placeholder registration.
	RecordRegistration(ctx context.Context, keyCount int, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders        metric.Int64Counter
	renderLatency  metric.Float64Histogram
	renderErrors   metric.Int64Counter
	registeredKeys metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("herald")

	renders, err := meter.Int64Counter("herald.renders",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("herald.render.latency_ms",
		metric.WithDescription("Template render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	renderErrors, err := meter.Int64Counter("herald.render.errors",
		metric.WithDescription("Number of failed template renders"),
	)
	if err != nil {
		return nil, err
	}

	registeredKeys, err := meter.Int64Counter("herald.registered_keys",
		metric.WithDescription("Number of placeholder keys registered"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:        renders,
		renderLatency:  renderLatency,
		renderErrors:   renderErrors,
		registeredKeys: registeredKeys,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a template render.
func (m *otelMetrics) RecordRender(ctx context.Context, template string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("template", template),
	}

	m.renders.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.renderLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.renderErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRegistration records a placeholder registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, keyCount int, err error) {
	if err != nil {
		return
	}
	m.registeredKeys.Add(ctx, int64(keyCount))
}
