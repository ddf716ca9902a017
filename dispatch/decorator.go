package dispatch

// Decorator wraps a Handler. It can execute something before the handler runs or after.
type Decorator[P any] interface {
	// Decorate wraps the underlying handler, adding some functionality.
	Decorate(h Handler[P]) Handler[P]
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[P any] func(h Handler[P]) Handler[P]

// Decorate calls f(h).
func (f DecoratorFunc[P]) Decorate(h Handler[P]) Handler[P] {
	return f(h)
}

// Chain decorates h with all decorators. The first decorator is the outermost one.
func Chain[P any](h Handler[P], decorators ...Decorator[P]) Handler[P] {
	for i := len(decorators) - 1; i >= 0; i-- {
		h = decorators[i].Decorate(h)
	}
	return h
}
