package postgresengine

import (
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithEventTableName sets the name of the append-only stored event table.
func WithEventTableName(tableName string) Option {
	return func(e *Engine) error {
		if tableName == "" {
			return eventstore.ErrEmptyTableNameSupplied
		}

		e.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Statement counts, commit durations (production-safe)
// Warn level: Non-critical issues like cleanup or rollback failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger eventstore.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Engine.
// The contextual logger receives the same messages as the Logger, together with the context
// so that trace and span ids can be correlated automatically.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// It receives commit durations, statement counts and commit errors.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Engine.
// Every non-empty commit is wrapped in a span.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}
