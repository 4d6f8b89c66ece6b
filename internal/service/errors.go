package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist or is hidden from the caller.
	ErrNotFound = errors.New("not found")
	// ErrUniquenessViolation is returned when a second singleton content record is inserted.
	ErrUniquenessViolation = errors.New("content record already exists")
	// ErrSingletonDeleteRefused is returned when deleting singleton content would leave none.
	ErrSingletonDeleteRefused = errors.New("content record cannot be deleted")
	// ErrUnknownVariant is returned for content variant names that are not registered.
	ErrUnknownVariant = errors.New("unknown content variant")
	// ErrSlugTaken is returned when a post slug is already used by another post.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidInput is the parent of every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries field-level messages keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}
