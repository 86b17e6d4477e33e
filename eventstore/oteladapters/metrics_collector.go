package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// MetricsCollector implements eventstore.ContextualMetricsCollector with the OpenTelemetry metrics API.
// Durations go to a Float64Histogram in seconds, counters to an Int64Counter and values to a Float64Gauge.
// Instruments are created on first use per name. If creation fails, the measurement is dropped.
type MetricsCollector struct {
	histograms *instrumentCache[metric.Float64Histogram]
	counters   *instrumentCache[metric.Int64Counter]
	gauges     *instrumentCache[metric.Float64Gauge]
}

func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		histograms: newInstrumentCache(func(name string) (metric.Float64Histogram, error) {
			return meter.Float64Histogram(name, metric.WithDescription("Catalog operation duration"), metric.WithUnit("s"))
		}),
		counters: newInstrumentCache(func(name string) (metric.Int64Counter, error) {
			return meter.Int64Counter(name, metric.WithDescription("Catalog operation counter"))
		}),
		gauges: newInstrumentCache(func(name string) (metric.Float64Gauge, error) {
			return meter.Float64Gauge(name, metric.WithDescription("Catalog operation value"))
		}),
	}
}

func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), metricName, duration, labels)
}

func (m *MetricsCollector) RecordDurationContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	labels map[string]string,
) {
	if histogram, ok := m.histograms.get(metricName); ok {
		histogram.Record(ctx, duration.Seconds(), withLabels(labels))
	}
}

func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), metricName, labels)
}

func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if counter, ok := m.counters.get(metricName); ok {
		counter.Add(ctx, 1, withLabels(labels))
	}
}

func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), metricName, value, labels)
}

func (m *MetricsCollector) RecordValueContext(ctx context.Context, metricName string, value float64, labels map[string]string) {
	if gauge, ok := m.gauges.get(metricName); ok {
		gauge.Record(ctx, value, withLabels(labels))
	}
}

type instrumentCache[T any] struct {
	mu          sync.Mutex
	instruments map[string]T
	create      func(name string) (T, error)
}

func newInstrumentCache[T any](create func(name string) (T, error)) *instrumentCache[T] {
	return &instrumentCache[T]{instruments: make(map[string]T), create: create}
}

func (c *instrumentCache[T]) get(name string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if instrument, ok := c.instruments[name]; ok {
		return instrument, true
	}

	instrument, err := c.create(name)
	if err != nil {
		var zero T
		return zero, false
	}
	c.instruments[name] = instrument

	return instrument, true
}

func withLabels(labels map[string]string) metric.MeasurementOption {
	return metric.WithAttributes(toAttributes(labels)...)
}

func toAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

var _ eventstore.ContextualMetricsCollector = (*MetricsCollector)(nil)
