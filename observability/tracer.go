package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gomonad/logger"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/seq"
	"github.com/kbukum/gomonad/version"
)

const defaultTracerName = "github.com/kbukum/gomonad/observability"

// Span attribute keys.
const (
	AttrIterator = logger.FieldIterator
	AttrCount    = "seq.count"
	AttrComplete = "seq.complete"
)

// InitTracer initializes the OpenTelemetry tracer provider.
// Returns a TracerProvider that should be shut down on application exit.
func InitTracer(ctx context.Context, config *Config) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracer initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"sample_rate", config.SampleRate,
	))

	return tp, nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// newResource creates an OpenTelemetry resource with service metadata.
// The attributes are schemaless so the merge with resource.Default never
// conflicts on schema URL.
func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("environment", environment),
		),
	)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name, trace.WithInstrumentationVersion(version.Short()))
}

// TracedIter wraps an iterator in a span covering its consumption.
type TracedIter[T any] struct {
	it     seq.Iterator[T]
	tracer trace.Tracer
	parent context.Context
	ctx    context.Context
	name   string
	span   trace.Span
	count  int64
	ended  bool
}

// Trace wraps it so the first Next starts a span named name under ctx and the
// first None ends it with the number of elements yielded. A nil tracer uses
// the global provider.
func Trace[T any](ctx context.Context, tracer trace.Tracer, it seq.Iterator[T], name string) *TracedIter[T] {
	if tracer == nil {
		tracer = Tracer(defaultTracerName)
	}
	return &TracedIter[T]{it: it, tracer: tracer, parent: ctx, ctx: ctx, name: name}
}

func (t *TracedIter[T]) Next() option.Option[T] {
	if t.span == nil {
		t.ctx, t.span = t.tracer.Start(t.parent, t.name,
			trace.WithAttributes(attribute.String(AttrIterator, t.name)),
		)
	}
	next := t.it.Next()
	if t.ended {
		return next
	}
	if next.IsSome() {
		t.count++
		return next
	}
	t.end(true)
	return next
}

// Context returns the context carrying the iterator's span once the first
// Next has run, or the parent context before that.
func (t *TracedIter[T]) Context() context.Context {
	return t.ctx
}

// Yielded returns the number of elements yielded so far.
func (t *TracedIter[T]) Yielded() int64 {
	return t.count
}

// Stop ends the span for an iterator abandoned before exhaustion. It is a
// no-op if the span already ended or never started.
func (t *TracedIter[T]) Stop() {
	if t.span == nil || t.ended {
		return
	}
	t.end(false)
}

// Fail records err on the span and ends it.
func (t *TracedIter[T]) Fail(err error) {
	if t.span == nil || t.ended {
		return
	}
	t.span.RecordError(err)
	t.span.SetStatus(codes.Error, err.Error())
	t.end(false)
}

func (t *TracedIter[T]) end(complete bool) {
	t.ended = true
	t.span.SetAttributes(
		attribute.Int64(AttrCount, t.count),
		attribute.Bool(AttrComplete, complete),
	)
	t.span.End()
	logger.Get("observability").Debug("iterator span ended", logger.Fields(
		logger.FieldIterator, t.name,
		logger.FieldCount, t.count,
		"complete", complete,
	))
}
