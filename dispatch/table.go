package dispatch

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"reflect"
)

// Table maps ordered pairs of kinds to handlers.
//
// A Table is built once by a Builder and is read-only afterwards, so a single
// Table may be shared by any number of goroutines.
type Table[K comparable, P Participant[K]] struct {
	// raw holds the handlers as registered, entries the decorated ones.
	raw        map[Pair[K]]Handler[P]
	entries    map[Pair[K]]Handler[P]
	decorators []Decorator[P]
	options    *option
}

// Dispatch invokes the handler registered for (first.Kind(), second.Kind()) with
// first and second in that order.
// If the pair has no entry, Dispatch returns a *NotFoundError and runs nothing.
// A nil participant, interface or pointer, is rejected with ErrParticipantNil.
func (t *Table[K, P]) Dispatch(first, second P) error {
	if isNil(first) || isNil(second) {
		return ErrParticipantNil
	}
	pair := PairOf(first.Kind(), second.Kind())
	h, ok := t.entries[pair]
	if !ok {
		t.options.Logger.Debug("no dispatching function", "pair", pair.String())
		return &NotFoundError[K]{First: pair.First, Second: pair.Second}
	}
	t.options.Logger.Debug("dispatch", "pair", pair.String())
	h.Handle(first, second)
	return nil
}

// Lookup returns the handler registered for pair, decorated.
func (t *Table[K, P]) Lookup(pair Pair[K]) (Handler[P], bool) {
	h, ok := t.entries[pair]
	return h, ok
}

// Has reports whether pair has an entry.
func (t *Table[K, P]) Has(pair Pair[K]) bool {
	_, ok := t.entries[pair]
	return ok
}

// Len returns the number of entries.
func (t *Table[K, P]) Len() int {
	return len(t.entries)
}

// Pairs returns the registered pairs in no particular order.
func (t *Table[K, P]) Pairs() []Pair[K] {
	return lo.Keys(t.entries)
}

// SortedPairs returns the registered pairs ordered by less.
func (t *Table[K, P]) SortedPairs(less func(a, b Pair[K]) bool) []Pair[K] {
	pairs := t.Pairs()
	slices.SortFunc(pairs, less)
	return pairs
}

// Extend returns a new Builder seeded with the entries, decorators and options of t.
// t itself is left untouched.
func (t *Table[K, P]) Extend() *Builder[K, P] {
	b := &Builder[K, P]{
		entries:    make(map[Pair[K]]Handler[P], len(t.raw)),
		decorators: append([]Decorator[P](nil), t.decorators...),
		options:    t.options,
	}
	for pair, h := range t.raw {
		b.entries[pair] = h
	}
	return b
}

func isNil(participant any) bool {
	if participant == nil {
		return true
	}
	v := reflect.ValueOf(participant)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
