package postgresengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

const (
	logMsgBuildQueryFailed       = "failed to build query"
	logMsgBuildInsertQueryFailed = "failed to build stored event insert statement"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgNextIdentityFailed     = "sequence returned no value"
	logMsgBeginTxFailed          = "failed to begin transaction for unit of work"
	logMsgDBExecFailed           = "database execution failed during unit of work commit"
	logMsgCommitFailed           = "failed to commit transaction for unit of work"
	logMsgRollbackFailed         = "failed to roll back transaction for unit of work"
	logMsgUnitOfWorkCommitted    = "unit of work committed"
	logMsgEmptyCommit            = "unit of work committed without statements"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "unit of work operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrTable                 = "table"
	logAttrEventName             = "event_name"
	logAttrDurationMS            = "duration_ms"
	logAttrUnitOfWorkID          = "unit_of_work_id"
	logAttrStatementCount        = "statement_count"
	logAttrStatementIndex        = "statement_index"
	logActionQuery               = "query"
	logActionExec                = "exec"

	// MetricCommitDuration is the histogram of commit durations in seconds.
	MetricCommitDuration = "uow_commit_duration_seconds"
	// MetricStatementsCommitted counts the statements flushed by successful commits.
	MetricStatementsCommitted = "uow_statements_total"
	// MetricCommitErrors counts failed commits by error type.
	MetricCommitErrors = "uow_commit_errors_total"
	// SpanNameCommit is the name of the span that wraps every non-empty commit.
	SpanNameCommit = "uow.commit"

	operationCommit      = "commit"
	statusSuccess        = "success"
	statusError          = "error"
	labelOperation       = "operation"
	labelStatus          = "status"
	labelErrorType       = "error_type"
	spanAttrUnitOfWorkID = "uow.id"
	spanAttrStatements   = "uow.statement_count"
	spanAttrErrorType    = "error_type"
	spanAttrDurationMS   = "duration_ms"
	spanAttrDBSystem     = "db.system"
	dbSystemPostgres     = "postgresql"
	errorTypeBeginTx     = "begin_transaction"
	errorTypeExec        = "execute_statement"
	errorTypeCommit      = "commit"
)

// logQueryWithDuration logs SQL statements with execution time at debug level if a logger is configured.
func (e *Engine) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	if e.logger != nil {
		e.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (e *Engine) logOperation(ctx context.Context, action string, args ...any) {
	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical problems if the logger is configured.
func (e *Engine) logWarn(message string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(message, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (e *Engine) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if e.logger != nil {
		e.logger.Error(message, allArgs...)
	}

	if e.contextualLogger != nil {
		e.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (e *Engine) recordDurationMetricsContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	e.metricsCollector.RecordDuration(metric, duration, labels)
}

// recordValueMetricsContext records value metrics with context if the collector supports it.
func (e *Engine) recordValueMetricsContext(ctx context.Context, metric string, value float64, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	e.metricsCollector.RecordValue(metric, value, labels)
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (e *Engine) incrementCounterContext(ctx context.Context, metric string, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	e.metricsCollector.IncrementCounter(metric, labels)
}

// === Metrics Observer Pattern ===

// commitMetricsObserver encapsulates the metrics collection for commit operations.
type commitMetricsObserver struct {
	e   *Engine
	ctx context.Context
}

// startCommitMetrics creates a new metrics observer for commit operations.
func (e *Engine) startCommitMetrics(ctx context.Context) *commitMetricsObserver {
	return &commitMetricsObserver{e: e, ctx: ctx}
}

// recordSuccess records all metrics for a successful commit.
func (cmo *commitMetricsObserver) recordSuccess(statementCount int, duration time.Duration) {
	labels := map[string]string{labelOperation: operationCommit, labelStatus: statusSuccess}
	cmo.e.recordDurationMetricsContext(cmo.ctx, MetricCommitDuration, duration, labels)
	cmo.e.recordValueMetricsContext(cmo.ctx, MetricStatementsCommitted, float64(statementCount), labels)
}

// recordError records all metrics for a failed commit.
func (cmo *commitMetricsObserver) recordError(errorType string, duration time.Duration) {
	cmo.e.recordDurationMetricsContext(
		cmo.ctx,
		MetricCommitDuration,
		duration,
		map[string]string{labelOperation: operationCommit, labelStatus: statusError},
	)
	cmo.e.incrementCounterContext(
		cmo.ctx,
		MetricCommitErrors,
		map[string]string{labelOperation: operationCommit, labelStatus: statusError, labelErrorType: errorType},
	)
}

// === Tracing Observer Pattern ===

// commitTracingObserver encapsulates tracing span lifecycle management for commit operations.
type commitTracingObserver struct {
	e    *Engine
	span eventstore.SpanContext
}

// startCommitTracing starts the commit span if a tracing collector is configured.
func (e *Engine) startCommitTracing(
	ctx context.Context,
	uowID uuid.UUID,
	statementCount int,
) (*commitTracingObserver, context.Context) {
	if e.tracingCollector == nil {
		return &commitTracingObserver{e: e}, ctx
	}

	newCtx, span := e.tracingCollector.StartSpan(ctx, SpanNameCommit, map[string]string{
		spanAttrUnitOfWorkID: uowID.String(),
		spanAttrStatements:   fmt.Sprintf("%d", statementCount),
		spanAttrDBSystem:     dbSystemPostgres,
	})

	return &commitTracingObserver{e: e, span: span}, newCtx
}

// finishSuccess completes the commit span for successful operations.
func (cto *commitTracingObserver) finishSuccess(duration time.Duration) {
	if cto.span == nil {
		return
	}

	cto.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
	cto.e.tracingCollector.FinishSpan(cto.span, statusSuccess, nil)
}

// finishError completes the commit span with error details.
func (cto *commitTracingObserver) finishError(errorType string, duration time.Duration) {
	if cto.span == nil {
		return
	}

	cto.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
	cto.e.tracingCollector.FinishSpan(cto.span, statusError, map[string]string{spanAttrErrorType: errorType})
}
