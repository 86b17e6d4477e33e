// Package postgrescontainer starts a disposable PostgreSQL with the catalog schema for integration tests.
package postgrescontainer
