// Package core contains the catalog domain: the Book and Author aggregate roots,
// the domain events they emit and the per-use-case Publisher that fans those events out.
//
// Aggregates validate their invariants on construction and on every mutation. A mutation that
// actually changes state publishes exactly one event through the Publisher passed into the call;
// a mutation that changes nothing publishes nothing. The aggregates never keep a reference to the
// Publisher, so its lifetime is the lifetime of the use case that created it.
//
// Materialize functions rebuild aggregates from persisted state and never publish.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
