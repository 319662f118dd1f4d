// Package service contains the command handlers of the application layer.
// Each handler validates its input through domain value objects, enforces
// authorization, calls the repository ports, and maps every failure to one
// of the typed errors in errors.go so the transports can translate them
// consistently.
package service
