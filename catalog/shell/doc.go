// Package shell connects the catalog's functional core to the persistence layer.
//
// It holds the ports a use case needs (EventStore, UnitOfWork, UnitOfWorkFactory), the
// conversion between domain events and stored events, and the command handler
// observability helpers shared by all features.
//
// The repositories and Units of Work that implement these ports live in the
// postgresrepo and memoryrepo subpackages.
package shell
