// Package config provides the process configuration of the catalog and factory functions
// for PostgreSQL connections using the three supported drivers (pgx.Pool, sql.DB, sqlx.DB).
//
// Settings come from environment variables prefixed with CATALOG_.
package config
