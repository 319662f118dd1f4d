package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when an identifier is malformed.
var ErrInvalidID = errors.New("invalid ID")

// ID is the opaque unique identifier used as both primary key and
// ownership-comparison key. It is a comparable value type, so
// authorID == requesterID is a plain equality check.
type ID struct {
	value uuid.UUID
}

// NewID generates a fresh random identifier.
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID parses the canonical string form of an identifier.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return ID{value: u}, nil
}

// IDFromUUID wraps an already-parsed UUID, typically one read back from
// storage.
func IDFromUUID(u uuid.UUID) ID {
	return ID{value: u}
}

// UUID returns the underlying UUID value.
func (id ID) UUID() uuid.UUID {
	return id.value
}

// IsZero reports whether the identifier is the zero value.
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id ID) String() string {
	return id.value.String()
}

// MarshalText implements encoding.TextMarshaler so identifiers serialize
// as their canonical string form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	u, err := uuid.Parse(string(text))
	if err != nil {
		return ErrInvalidID
	}
	id.value = u
	return nil
}
