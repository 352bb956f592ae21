package observability

import (
	"context"

	"github.com/kbukum/gomonad/seq"
)

type metricsContextKey struct{}

// WithMetrics stores m in the context for Observe.
func WithMetrics(ctx context.Context, m *Metrics) context.Context {
	return context.WithValue(ctx, metricsContextKey{}, m)
}

// MetricsFromContext retrieves the Metrics stored by WithMetrics, or nil.
func MetricsFromContext(ctx context.Context) *Metrics {
	if m, ok := ctx.Value(metricsContextKey{}).(*Metrics); ok {
		return m
	}
	return nil
}

// Observe traces it with the global tracer and, when ctx carries Metrics,
// records its elements too.
//
//	ctx = observability.WithMetrics(ctx, metrics)
//	rows := observability.Observe(ctx, seq.FromScanner(sc), "rows")
//	defer rows.Stop()
func Observe[T any](ctx context.Context, it seq.Iterator[T], name string) *TracedIter[T] {
	if m := MetricsFromContext(ctx); m != nil {
		it = InstrumentContext(ctx, it, m, name)
	}
	return Trace(ctx, nil, it, name)
}
