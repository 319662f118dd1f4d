// Package store defines the repository ports the application layer depends
// on, along with the sentinel errors their implementations return. Concrete
// storage adapters live in internal/platform/postgres.
package store
