// Package adapters lets the engine run on a pgx pool, a *sql.DB or a *sqlx.DB.
//
// Each adapter offers plain reads and a read-committed transaction through which the
// Unit of Work flushes its statements.
package adapters
