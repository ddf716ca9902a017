package dispatch

import "fmt"

// Participant is anything that takes part in a pairwise interaction.
// Kind reports which member of the closed set of variants the participant belongs to.
type Participant[K comparable] interface {
	Kind() K
}

// Pair is the ordered key of a Table entry.
// Pair{A, B} and Pair{B, A} are different keys.
type Pair[K comparable] struct {
	First  K
	Second K
}

// PairOf returns the ordered pair (first, second).
func PairOf[K comparable](first, second K) Pair[K] {
	return Pair[K]{First: first, Second: second}
}

// Reverse returns (Second, First).
func (p Pair[K]) Reverse() Pair[K] {
	return Pair[K]{First: p.Second, Second: p.First}
}

// SameKind reports whether both sides of the pair are the same kind.
func (p Pair[K]) SameKind() bool {
	return p.First == p.Second
}

func (p Pair[K]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
