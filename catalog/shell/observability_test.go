package shell_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/testutil/helper"
)

func Test_RecordCommandMetrics_Records_Duration_And_Calls(t *testing.T) {
	// arrange
	metrics := helper.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "CreateBook", shell.StatusSuccess, time.Millisecond)

	// assert
	assert.True(t, metrics.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithStatus(shell.StatusSuccess).
		WithLabel(shell.LogAttrCommandType, "CreateBook").
		Assert())
	assert.True(t, metrics.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).WithStatus(shell.StatusSuccess).Assert())
	assert.False(t, metrics.HasCounterRecordForMetric(shell.CommandHandlerIdempotentMetric).Assert())
	assert.Equal(t, 2, metrics.GetContextualCallCount())
}

func Test_RecordCommandMetrics_Counts_Idempotent_And_Canceled_Separately(t *testing.T) {
	// arrange
	metrics := helper.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "UpdateBook", shell.StatusIdempotent, time.Millisecond)
	shell.RecordCommandMetrics(context.Background(), metrics, "UpdateBook", shell.StatusCanceled, time.Millisecond)

	// assert
	assert.True(t, metrics.HasCounterRecordForMetric(shell.CommandHandlerIdempotentMetric).WithStatus(shell.StatusIdempotent).Assert())
	assert.True(t, metrics.HasCounterRecordForMetric(shell.CommandHandlerCanceledMetric).WithStatus(shell.StatusCanceled).Assert())
}

func Test_RecordCommandMetrics_Tolerates_Nil_Collector(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordCommandMetrics(context.Background(), nil, "CreateBook", shell.StatusSuccess, time.Millisecond)
	})
}

func Test_CommandSpan_Lifecycle(t *testing.T) {
	// arrange
	tracing := helper.NewTracingCollectorSpy()
	failure := errors.New("boom")

	// act
	_, span := shell.StartCommandSpan(context.Background(), tracing, "CreateAuthor")
	shell.FinishCommandSpan(tracing, span, shell.StatusError, 2*time.Millisecond, failure)

	// assert
	assert.True(t, tracing.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStatus(shell.StatusError).
		WithStartAttribute(shell.LogAttrCommandType, "CreateAuthor").
		WithEndAttribute(shell.LogAttrError, "boom").
		WithEndAttribute(shell.LogAttrDurationMS, "2.00").
		Assert())
}

type markerKey struct{}

func Test_StartCommandSpan_Without_Collector_Returns_Original_Context(t *testing.T) {
	// arrange
	ctx := context.WithValue(context.Background(), markerKey{}, "marker")

	// act
	returnedCtx, span := shell.StartCommandSpan(ctx, nil, "CreateBook")

	// assert
	assert.Equal(t, ctx, returnedCtx)
	assert.Nil(t, span)
}

func Test_Command_Logging_Prefers_The_Contextual_Logger(t *testing.T) {
	// arrange
	contextualSpy := helper.NewLogHandlerSpy(false)
	plainSpy := helper.NewLogHandlerSpy(false)
	contextualLogger := slog.New(contextualSpy)
	plainLogger := slog.New(plainSpy)
	ctx := context.Background()

	// act
	shell.LogCommandStart(ctx, plainLogger, contextualLogger, "CreateBook")
	shell.LogCommandSuccess(ctx, plainLogger, contextualLogger, "CreateBook", shell.StatusSuccess, 42, time.Millisecond)
	shell.LogCommandError(ctx, plainLogger, nil, "CreateBook", errors.New("boom"))

	// assert
	assert.True(t, contextualSpy.HasInfoLogWithMessage(shell.LogMsgCommandStarted).
		WithAttribute(shell.LogAttrCommandType, "CreateBook").
		Assert())
	assert.True(t, contextualSpy.HasInfoLogWithMessage(shell.LogMsgCommandCompleted).
		WithAttribute(shell.LogAttrBusinessOutcome, shell.StatusSuccess).
		WithAttribute(shell.LogAttrAggregateID, fmt.Sprint(42)).
		WithDurationMS().
		Assert())
	assert.True(t, plainSpy.HasErrorLogWithMessage(shell.LogMsgCommandFailed).WithAttribute(shell.LogAttrError, "boom").Assert())
	assert.Equal(t, 1, plainSpy.GetRecordCount())
}

func Test_IsCancellationError(t *testing.T) {
	assert.True(t, shell.IsCancellationError(errors.Join(errors.New("commit failed"), context.Canceled)))
	assert.True(t, shell.IsCancellationError(context.DeadlineExceeded))
	assert.False(t, shell.IsCancellationError(errors.New("boom")))
}
