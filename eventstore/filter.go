package eventstore

import (
	"slices"
)

// Filter selects stored events by name when reading the event log.
// The zero Filter matches every event.
type Filter struct {
	names []string
}

// FilterByNames builds a Filter matching any of the given event names. Duplicates and empty names are dropped.
func FilterByNames(names ...string) Filter {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" && !slices.Contains(filtered, name) {
			filtered = append(filtered, name)
		}
	}

	return Filter{names: filtered}
}

// Names returns a copy of the event names the Filter matches.
func (f Filter) Names() []string {
	return slices.Clone(f.names)
}

// IsEmpty reports whether the Filter matches every event.
func (f Filter) IsEmpty() bool {
	return len(f.names) == 0
}

// Matches reports whether a stored event with the given name passes the Filter.
func (f Filter) Matches(name string) bool {
	return f.IsEmpty() || slices.Contains(f.names, name)
}

// Apply returns the stored events that pass the Filter, keeping their order.
func (f Filter) Apply(storedEvents StoredEvents) StoredEvents {
	matching := make(StoredEvents, 0, len(storedEvents))
	for _, storedEvent := range storedEvents {
		if f.Matches(storedEvent.Name) {
			matching = append(matching, storedEvent)
		}
	}

	return matching
}
