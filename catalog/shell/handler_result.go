package shell

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// AggregateID is the identity of the created or changed aggregate.
	AggregateID int64

	// Idempotent indicates that the command did not change any aggregate state.
	// This is a first-class business outcome, not an error condition.
	Idempotent bool
}

// NewSuccessResult creates a HandlerResult for operations that changed state.
func NewSuccessResult(aggregateID int64) HandlerResult {
	return HandlerResult{AggregateID: aggregateID}
}

// NewIdempotentResult creates a HandlerResult for operations that left the state unchanged.
func NewIdempotentResult(aggregateID int64) HandlerResult {
	return HandlerResult{AggregateID: aggregateID, Idempotent: true}
}
