package dispatch

// Handler handles the interaction of two participants.
// first and second are passed in the order of the Pair the handler is registered under.
type Handler[P any] interface {
	Handle(first, second P)
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions as Handler.
// If f is a function with the appropriate signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc[P any] func(first, second P)

// Handle calls f(first, second).
func (f HandlerFunc[P]) Handle(first, second P) {
	f(first, second)
}

// Swap returns the symmetry adapter of the canonical handler h.
// The adapter swaps its arguments before calling h, so a handler written for (A, B)
// can be registered under (B, A) without duplicating its logic.
// Swapping an adapter returns the canonical handler again.
func Swap[P any](h Handler[P]) Handler[P] {
	if s, ok := h.(swapped[P]); ok {
		return s.canonical
	}
	return swapped[P]{canonical: h}
}

type swapped[P any] struct {
	canonical Handler[P]
}

func (s swapped[P]) Handle(first, second P) {
	s.canonical.Handle(second, first)
}
