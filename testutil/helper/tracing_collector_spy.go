package helper

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// SpySpan is one span captured by TracingCollectorSpy.
type SpySpan struct {
	mu              sync.Mutex
	Name            string
	StartAttributes map[string]string
	Attributes      map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
}

// SetStatus implements eventstore.SpanContext.
func (span *SpySpan) SetStatus(status string) {
	span.mu.Lock()
	defer span.mu.Unlock()

	span.Status = status
}

// AddAttribute implements eventstore.SpanContext.
func (span *SpySpan) AddAttribute(key, value string) {
	span.mu.Lock()
	defer span.mu.Unlock()

	span.Attributes[key] = value
}

// TracingCollectorSpy captures the spans started and finished through the tracing port.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []*SpySpan
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements eventstore.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {
	span := &SpySpan{Name: name, StartAttributes: maps.Clone(attrs), Attributes: map[string]string{}}

	s.mu.Lock()
	s.spans = append(s.spans, span)
	s.mu.Unlock()

	return ctx, span
}

// FinishSpan implements eventstore.TracingCollector. Spans started elsewhere are ignored.
func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpan)
	if !ok {
		return
	}

	span.mu.Lock()
	defer span.mu.Unlock()

	span.Status = status
	span.EndAttributes = maps.Clone(attrs)
	span.Finished = true
}

// HasSpanRecordForName starts a fluent chain over the spans with the given name.
func (s *TracingCollectorSpy) HasSpanRecordForName(name string) *SpanRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	matcher := &SpanRecordMatcher{}
	for _, span := range s.spans {
		if span.Name == name {
			matcher.candidates = append(matcher.candidates, span)
		}
	}

	return matcher
}

// SpanRecordMatcher narrows down captured spans in a fluent chain.
type SpanRecordMatcher struct {
	candidates []*SpySpan
}

// WithStatus keeps the finished spans with the given status.
func (m *SpanRecordMatcher) WithStatus(status string) *SpanRecordMatcher {
	return m.keep(func(span *SpySpan) bool { return span.Finished && span.Status == status })
}

func (m *SpanRecordMatcher) WithStartAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(span *SpySpan) bool { return hasEntry(span.StartAttributes, key, value) })
}

func (m *SpanRecordMatcher) WithEndAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(span *SpySpan) bool { return span.Finished && hasEntry(span.EndAttributes, key, value) })
}

// WithSpanAttributeKey keeps the spans that got an attribute with the key while they were open.
func (m *SpanRecordMatcher) WithSpanAttributeKey(key string) *SpanRecordMatcher {
	return m.keep(func(span *SpySpan) bool {
		_, ok := span.Attributes[key]
		return ok
	})
}

func (m *SpanRecordMatcher) keep(wanted func(*SpySpan) bool) *SpanRecordMatcher {
	kept := m.candidates[:0:0]
	for _, span := range m.candidates {
		span.mu.Lock()
		if wanted(span) {
			kept = append(kept, span)
		}
		span.mu.Unlock()
	}
	m.candidates = kept

	return m
}

func hasEntry(attrs map[string]string, key, value string) bool {
	got, ok := attrs[key]
	return ok && got == value
}

func (m *SpanRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
