package models

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound is matched by every lookup that found no element
	ErrElementNotFound = errors.New("element not found")

	// ErrStaleElement is returned when a handle no longer refers to an attached element
	ErrStaleElement = errors.New("stale element reference")

	// ErrUnsupportedLocator is returned when a driver cannot evaluate a locator in the requested scope
	ErrUnsupportedLocator = errors.New("unsupported locator")
)

// NotFoundError reports the locator of a failed lookup.
// It matches ErrElementNotFound with errors.Is.
type NotFoundError struct {
	Locator Locator
}

// NewNotFoundError creates a not-found error for the given locator
func NewNotFoundError(locator Locator) *NotFoundError {
	return &NotFoundError{Locator: locator}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element matches %s", e.Locator)
}

// Is makes errors.Is(err, ErrElementNotFound) succeed
func (e *NotFoundError) Is(target error) bool {
	return target == ErrElementNotFound
}
