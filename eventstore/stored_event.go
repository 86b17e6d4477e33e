package eventstore

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrEmptyEventName = errors.New("event name is empty")
var ErrInvalidPayloadJSON = errors.New("payload json is not valid")

// StoredEvents is an alias type for a slice of StoredEvent
type StoredEvents = []StoredEvent

// StoredEvent is a DTO (data transfer object) used by the engines to append events to the event log and read them back.
//
// It is built on scalars to be completely agnostic of the implementation of Domain Events in the client code.
//
// While its properties are exported, it should only be constructed with the supplied factory method BuildStoredEvent.
type StoredEvent struct {
	Name    string
	Payload string
}

// BuildStoredEvent is a factory method for StoredEvent.
//
// It populates the StoredEvent with the given scalar input.
// Returns an error if name is empty or payloadJSON is not valid JSON.
func BuildStoredEvent(name string, payloadJSON []byte) (StoredEvent, error) {
	if name == "" {
		return StoredEvent{}, ErrEmptyEventName
	}

	if !jsoniter.Valid(payloadJSON) {
		return StoredEvent{}, ErrInvalidPayloadJSON
	}

	return StoredEvent{
		Name:    name,
		Payload: string(payloadJSON),
	}, nil
}
