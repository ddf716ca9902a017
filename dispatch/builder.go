package dispatch

import "fmt"

// Builder populates a Table. It is the only way to write entries: once Build is
// called the Builder is spent and the returned Table never changes.
type Builder[K comparable, P Participant[K]] struct {
	entries    map[Pair[K]]Handler[P]
	decorators []Decorator[P]
	options    *option
	built      bool
	err        error
}

// NewBuilder returns an empty Builder.
func NewBuilder[K comparable, P Participant[K]](opts ...Option) *Builder[K, P] {
	return &Builder[K, P]{
		entries: make(map[Pair[K]]Handler[P]),
		options: newOption(opts...),
	}
}

// Register sets the handler for the exact ordered pair, overwriting any handler
// registered for it before.
// Errors are kept and reported by Build.
func (b *Builder[K, P]) Register(pair Pair[K], h Handler[P]) *Builder[K, P] {
	if !b.check() {
		return b
	}
	if h == nil {
		b.err = fmt.Errorf("register %v: %w", pair, ErrHandlerNil)
		return b
	}
	b.entries[pair] = h
	return b
}

// RegisterFunc registers f as the handler for pair.
func (b *Builder[K, P]) RegisterFunc(pair Pair[K], f func(first, second P)) *Builder[K, P] {
	if f == nil {
		return b.Register(pair, nil)
	}
	return b.Register(pair, HandlerFunc[P](f))
}

// RegisterSymmetric registers h as the canonical handler for pair and its symmetry
// adapter for the reversed pair, so that both orders run h with the participants
// in pair's order. For a same-kind pair only the canonical entry is written.
func (b *Builder[K, P]) RegisterSymmetric(pair Pair[K], h Handler[P]) *Builder[K, P] {
	b.Register(pair, h)
	if h == nil || pair.SameKind() {
		return b
	}
	return b.Register(pair.Reverse(), Swap(h))
}

// Use appends handler decorators. They are applied to every entry by Build,
// the first one being the outermost.
func (b *Builder[K, P]) Use(decorators ...Decorator[P]) *Builder[K, P] {
	if !b.check() {
		return b
	}
	b.decorators = append(b.decorators, decorators...)
	return b
}

// Build returns the Table holding every registered entry.
func (b *Builder[K, P]) Build() (*Table[K, P], error) {
	if b.built {
		return nil, ErrBuilt
	}
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	raw := make(map[Pair[K]]Handler[P], len(b.entries))
	entries := make(map[Pair[K]]Handler[P], len(b.entries))
	for pair, h := range b.entries {
		raw[pair] = h
		entries[pair] = Chain(h, b.decorators...)
	}
	return &Table[K, P]{
		raw:        raw,
		entries:    entries,
		decorators: append([]Decorator[P](nil), b.decorators...),
		options:    b.options,
	}, nil
}

func (b *Builder[K, P]) check() bool {
	if b.built {
		b.err = ErrBuilt
		return false
	}
	return b.err == nil
}
