// Package postgres implements the store repository ports on top of
// PostgreSQL, using the pgx driver through database/sql. Unique constraint
// violations are translated into the store package's duplicate errors so
// the application layer never sees driver-specific error types.
package postgres
