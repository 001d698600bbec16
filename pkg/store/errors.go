package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("not authorized")
	ErrPersistence       = errors.New("persistence failure")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAttemptsExhausted = errors.New("quiz attempts exhausted")
)

func persistenceError(document string, err error) error {
	return fmt.Errorf("%w: failed to write %s: %w", ErrPersistence, document, err)
}
