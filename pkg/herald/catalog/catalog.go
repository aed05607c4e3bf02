package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/herald/pkg/herald"
	"github.com/randalmurphal/herald/pkg/herald/observability"
)

// Catalog renders named templates from a Store through an Interpolator.
//
// Rendering follows the interpolator's build-then-use lifecycle: once
// the interpolator is fully registered, a Catalog is safe for
// concurrent Render calls as long as the underlying Store is.
type Catalog struct {
	store   Store
	interp  *herald.Interpolator
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the structured logger for render events.
// Default: no logging.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder for render counts and latency.
// Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) CatalogOption {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// WithSpanManager sets the span manager for render traces.
// Default: observability.NoopSpanManager.
func WithSpanManager(sm observability.SpanManager) CatalogOption {
	return func(c *Catalog) {
		c.spans = sm
	}
}

// New creates a Catalog over the given store and interpolator.
//
// Example:
//
//	store := catalog.NewMemoryStore()
//	cat := catalog.New(store, in,
//	    catalog.WithLogger(slog.Default()),
//	    catalog.WithMetrics(observability.NewMetricsRecorder()),
//	)
func New(store Store, interp *herald.Interpolator, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		store:   store,
		interp:  interp,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put stores a template under a name, overwriting any existing one.
func (c *Catalog) Put(name, text string) error {
	return c.store.Put(name, text)
}

// Render loads the named template and interpolates it.
//
// Each render is assigned a unique render ID used to correlate its log
// lines and trace span. Failures from the store are wrapped; failures
// from interpolation are returned as the interpolator's typed errors.
func (c *Catalog) Render(ctx context.Context, name string) (string, error) {
	renderID := uuid.NewString()
	ctx, span := c.spans.StartRenderSpan(ctx, name, renderID)

	start := time.Now()
	observability.LogRenderStart(c.logger, renderID, name)

	result, err := c.render(ctx, name)
	duration := time.Since(start)

	c.metrics.RecordRender(ctx, name, duration, err)
	if err != nil {
		observability.LogRenderError(c.logger, renderID, name, err, float64(duration.Milliseconds()))
	} else {
		observability.LogRenderComplete(c.logger, renderID, name, float64(duration.Milliseconds()), len(result))
	}
	c.spans.EndSpanWithError(span, err)

	return result, err
}

// render performs the store lookup and interpolation.
func (c *Catalog) render(_ context.Context, name string) (string, error) {
	text, err := c.store.Get(name)
	if err != nil {
		return "", fmt.Errorf("load template %q: %w", name, err)
	}
	return c.interp.Interpolate(text)
}

// List returns metadata for all stored templates, ordered by name.
func (c *Catalog) List() ([]Info, error) {
	return c.store.List()
}

// Delete removes a template from the store.
func (c *Catalog) Delete(name string) error {
	return c.store.Delete(name)
}

// Close closes the underlying store.
func (c *Catalog) Close() error {
	return c.store.Close()
}
