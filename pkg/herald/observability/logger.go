// Package observability provides production-grade observability features
// for herald: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds herald context to a logger.
// Returns a new logger with render_id and template fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "render-123", "welcome-email")
//	enriched.Info("rendering") // includes render_id, template
func EnrichLogger(logger *slog.Logger, renderID, template string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("render_id", renderID),
		slog.String("template", template),
	)
}

// LogRenderStart logs the start of a template render.
func LogRenderStart(logger *slog.Logger, renderID, template string) {
	if logger == nil {
		return
	}
	logger.Debug("render starting",
		slog.String("render_id", renderID),
		slog.String("template", template),
	)
}

// LogRenderComplete logs successful render completion.
func LogRenderComplete(logger *slog.Logger, renderID, template string, durationMs float64, outputBytes int) {
	if logger == nil {
		return
	}
	logger.Info("render completed",
		slog.String("render_id", renderID),
		slog.String("template", template),
		slog.Float64("duration_ms", durationMs),
		slog.Int("output_bytes", outputBytes),
	)
}

// LogRenderError logs render failure.
func LogRenderError(logger *slog.Logger, renderID, template string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("render_id", renderID),
		slog.String("template", template),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogRegistration logs a placeholder registration.
func LogRegistration(logger *slog.Logger, keyCount int, err error) {
	if logger == nil {
		return
	}
	if err != nil {
		logger.Error("placeholder registration failed",
			slog.Int("keys", keyCount),
			slog.String("error", err.Error()),
		)
		return
	}
	logger.Debug("placeholders registered",
		slog.Int("keys", keyCount),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
