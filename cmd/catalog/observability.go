package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/catalog-uow-go/cmd/catalog"

type instruments struct {
	logger           *slog.Logger
	contextualLogger *oteladapters.SlogBridgeLogger
	metrics          *oteladapters.MetricsCollector
	tracing          *oteladapters.TracingCollector
	shutdown         func(context.Context) error
}

// initObservability sets up slog and the OpenTelemetry providers.
// Spans are written to spanOut when it is not nil, otherwise they are dropped.
func initObservability(ctx context.Context, spanOut io.Writer, debug bool) (*instruments, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(attribute.String("service.name", "catalog")),
	)
	if err != nil {
		return nil, err
	}

	traceOptions := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if spanOut != nil {
		exporter, exporterErr := stdouttrace.New(stdouttrace.WithWriter(spanOut), stdouttrace.WithPrettyPrint())
		if exporterErr != nil {
			return nil, exporterErr
		}

		traceOptions = append(traceOptions, sdktrace.WithSyncer(exporter))
	}

	tracerProvider := sdktrace.NewTracerProvider(traceOptions...)
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res))

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &instruments{
		logger:           logger,
		contextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(handler),
		metrics:          oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
		tracing:          oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
		shutdown: func(ctx context.Context) error {
			return errors.Join(meterProvider.Shutdown(ctx), tracerProvider.Shutdown(ctx))
		},
	}, nil
}
