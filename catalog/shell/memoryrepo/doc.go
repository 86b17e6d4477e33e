// Package memoryrepo is an in-process backend for the catalog.
//
// Database keeps the four catalog tables (book, author, author_book and the stored event log)
// in memory and hands out Units of Work with the same contract as the PostgreSQL backend:
// writes are buffered, Commit applies them all or none, and a Unit of Work is single-use.
// Identity sequences are non-transactional, exactly like PostgreSQL sequences.
package memoryrepo
