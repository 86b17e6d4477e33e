// Package helper provides test doubles for the observability ports: a slog.Handler spy,
// a metrics collector spy and a tracing collector spy.
package helper
