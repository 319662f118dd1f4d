package domain

import "errors"

const titleMaxLength = 100

// Title validation errors, checked in order: empty, too long.
var (
	ErrTitleEmpty   = errors.New("title is empty")
	ErrTitleTooLong = errors.New("title is too long")
)

// Title is a validated post title, at most 100 characters. Callers escape
// HTML before construction, so the value never needs re-encoding on read.
type Title struct {
	value string
}

// NewTitle validates the raw input and wraps it.
func NewTitle(value string) (Title, error) {
	if value == "" {
		return Title{}, ErrTitleEmpty
	}
	if len(value) > titleMaxLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: value}, nil
}

func (t Title) String() string {
	return t.value
}
