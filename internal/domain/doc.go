// Package domain defines the core business entities and the self-validating
// value objects they are composed of. Construction functions are the only way
// to obtain a value object; they return a sentinel error when the input
// violates an invariant. Restore functions rebuild entities from storage
// without re-validating, because stored data already passed validation once.
package domain
