// Package observability provides OpenTelemetry metrics and tracing for
// seq iterators.
//
// Providers:
//
//	cfg := observability.DefaultConfig("my-service")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	it := observability.Instrument(seq.FromSlice(rows), metrics, "rows")
//
// Tracing:
//
//	it := observability.Trace(ctx, nil, seq.FromSlice(rows), "rows")
//	defer it.Stop()
package observability
