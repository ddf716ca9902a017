package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound no handler is registered for the ordered pair
	ErrNotFound = errors.New("no dispatching function")

	// ErrHandlerNil Handler is nil
	ErrHandlerNil = errors.New("handler is nil")

	// ErrParticipantNil participant is nil
	ErrParticipantNil = errors.New("participant is nil")

	// ErrBuilt Builder was already built
	ErrBuilt = errors.New("builder was built")
)

// NotFoundError is returned by Table.Dispatch when the ordered pair of kinds has no entry.
// It matches ErrNotFound with errors.Is.
type NotFoundError[K comparable] struct {
	First  K
	Second K
}

func (e *NotFoundError[K]) Error() string {
	return fmt.Sprintf("%s for %v", ErrNotFound, e.Pair())
}

func (e *NotFoundError[K]) Is(target error) bool {
	return target == ErrNotFound
}

// Pair returns the ordered pair that was looked up.
func (e *NotFoundError[K]) Pair() Pair[K] {
	return PairOf(e.First, e.Second)
}
