// Package oteladapters provides OpenTelemetry implementations of the eventstore observability interfaces.
//
// The adapters plug the Unit of Work engine and the catalog command handlers into an existing
// OpenTelemetry setup: TracingCollector creates spans, MetricsCollector maps durations, counters
// and values onto histograms, counters and gauges, and the two contextual loggers emit log records
// that carry the active trace and span ids.
package oteladapters
