package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/gomonad/logger"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/seq"
	"github.com/kbukum/gomonad/version"
)

// Metric instrument names.
const (
	MetricElements      = "seq.elements"
	MetricExhausted     = "seq.exhausted"
	MetricDrainDuration = "seq.drain.duration"
)

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name, metric.WithInstrumentationVersion(version.Short()))
}

// Metrics holds the instruments recorded by instrumented iterators.
type Metrics struct {
	elements      metric.Int64Counter
	exhausted     metric.Int64Counter
	drainDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Number of elements yielded by iterators"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	exhausted, err := meter.Int64Counter(MetricExhausted,
		metric.WithDescription("Number of iterators that reported exhaustion"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricExhausted, err)
	}

	drainDuration, err := meter.Float64Histogram(MetricDrainDuration,
		metric.WithDescription("Time from the first pull to exhaustion in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDrainDuration, err)
	}

	return &Metrics{
		elements:      elements,
		exhausted:     exhausted,
		drainDuration: drainDuration,
	}, nil
}

// RecordElement counts one element yielded by the named iterator.
func (m *Metrics) RecordElement(ctx context.Context, name string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrIterator, name)))
}

// RecordExhausted counts the named iterator's first None and how long it took to get there.
func (m *Metrics) RecordExhausted(ctx context.Context, name string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String(AttrIterator, name))
	m.exhausted.Add(ctx, 1, attrs)
	m.drainDuration.Record(ctx, duration.Seconds(), attrs)
}

// InstrumentedIter passes elements through while recording them on Metrics.
type InstrumentedIter[T any] struct {
	it      seq.Iterator[T]
	metrics *Metrics
	name    string
	ctx     context.Context
	started time.Time
	done    bool
}

// Instrument wraps it so every Some adds 1 to seq.elements and the first None
// adds 1 to seq.exhausted, both tagged iterator=name. A nil m records nothing.
func Instrument[T any](it seq.Iterator[T], m *Metrics, name string) *InstrumentedIter[T] {
	return InstrumentContext(context.Background(), it, m, name)
}

// InstrumentContext is Instrument with an explicit context for measurements.
func InstrumentContext[T any](ctx context.Context, it seq.Iterator[T], m *Metrics, name string) *InstrumentedIter[T] {
	return &InstrumentedIter[T]{it: it, metrics: m, name: name, ctx: ctx}
}

func (i *InstrumentedIter[T]) Next() option.Option[T] {
	if i.started.IsZero() {
		i.started = time.Now()
	}
	next := i.it.Next()
	if i.metrics == nil {
		return next
	}
	if next.IsSome() {
		i.metrics.RecordElement(i.ctx, i.name)
	} else if !i.done {
		i.done = true
		i.metrics.RecordExhausted(i.ctx, i.name, time.Since(i.started))
	}
	return next
}
