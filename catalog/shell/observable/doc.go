// Package observable instruments catalog command handlers with metrics, tracing and logging
// while the handlers themselves stay free of observability code.
//
// Wrapping happens at wiring time:
//
//	coreHandler, err := createbook.NewCommandHandler(unitOfWorkFactory)
//
//	handler, err := observable.NewCommandWrapper[createbook.Command](
//		coreHandler,
//		observable.WithCommandMetrics[createbook.Command](metricsCollector),
//		observable.WithCommandTracing[createbook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[createbook.Command](logger),
//	)
//
//	result, err := handler.Handle(ctx, command)
//
// Every option is optional; a wrapper without options simply delegates.
package observable
