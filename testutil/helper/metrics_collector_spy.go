package helper

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MetricKind tells which collector method produced a MetricRecord.
type MetricKind int

// Kinds of recorded metrics.
const (
	MetricKindDuration MetricKind = iota
	MetricKindCounter
	MetricKindValue
)

// MetricRecord is one call captured by MetricsCollectorSpy.
type MetricRecord struct {
	Kind     MetricKind
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// MetricsCollectorSpy captures metrics calls. It implements the plain and the context-aware collector ports.
type MetricsCollectorSpy struct {
	mu              sync.Mutex
	records         []MetricRecord
	contextualCalls int
}

// NewMetricsCollectorSpy creates an empty MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(false, MetricRecord{Kind: MetricKindDuration, Metric: metric, Duration: duration, Labels: labels})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(false, MetricRecord{Kind: MetricKindCounter, Metric: metric, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(false, MetricRecord{Kind: MetricKindValue, Metric: metric, Value: value, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.record(true, MetricRecord{Kind: MetricKindDuration, Metric: metric, Duration: duration, Labels: labels})
}

func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.record(true, MetricRecord{Kind: MetricKindCounter, Metric: metric, Labels: labels})
}

func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.record(true, MetricRecord{Kind: MetricKindValue, Metric: metric, Value: value, Labels: labels})
}

func (s *MetricsCollectorSpy) record(contextual bool, record MetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Labels = maps.Clone(record.Labels)
	s.records = append(s.records, record)
	if contextual {
		s.contextualCalls++
	}
}

// GetContextualCallCount returns how many calls went through the context-aware methods.
func (s *MetricsCollectorSpy) GetContextualCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.contextualCalls
}

// RecordsOf returns the captured records of one kind in call order.
func (s *MetricsCollectorSpy) RecordsOf(kind MetricKind) []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []MetricRecord
	for _, record := range s.records {
		if record.Kind == kind {
			records = append(records, record)
		}
	}

	return records
}

func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return s.match(MetricKindDuration, metric)
}

func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return s.match(MetricKindCounter, metric)
}

func (s *MetricsCollectorSpy) HasValueRecordForMetric(metric string) *MetricRecordMatcher {
	return s.match(MetricKindValue, metric)
}

// match selects every record of the kind and metric; the matcher passes if any of them satisfies the chain.
func (s *MetricsCollectorSpy) match(kind MetricKind, metric string) *MetricRecordMatcher {
	var candidates []MetricRecord
	for _, record := range s.RecordsOf(kind) {
		if record.Metric == metric {
			candidates = append(candidates, record)
		}
	}

	return &MetricRecordMatcher{candidates: candidates}
}

// MetricRecordMatcher narrows down captured records in a fluent chain.
type MetricRecordMatcher struct {
	candidates []MetricRecord
}

func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

func (m *MetricRecordMatcher) WithErrorType(errorType string) *MetricRecordMatcher {
	return m.WithLabel("error_type", errorType)
}

// WithLabel keeps the records carrying the label with the given value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	kept := m.candidates[:0:0]
	for _, record := range m.candidates {
		if got, ok := record.Labels[key]; ok && got == value {
			kept = append(kept, record)
		}
	}
	m.candidates = kept

	return m
}

// Assert reports whether at least one record survived the chain.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
