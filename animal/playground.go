package animal

import (
	"fmt"
	"github.com/go-leo/double-dispatch/dispatch"
	"io"
	"sync"
)

// Table dispatches plays between two animals by their species.
type Table = dispatch.Table[Species, Animal]

// Pair is an ordered pair of species.
type Pair = dispatch.Pair[Species]

// Playground writes every play to its writer. It is safe for concurrent use.
type Playground struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPlayground(w io.Writer) *Playground {
	return &Playground{w: w}
}

func (p *Playground) play(first, second Animal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, "%s plays with %s\n", first.Name(), second.Name())
}

// CatDog is the canonical cat/dog interaction.
func (p *Playground) CatDog(cat, dog Animal) {
	p.play(cat, dog)
}

// CatBird is the canonical cat/bird interaction.
func (p *Playground) CatBird(cat, bird Animal) {
	p.play(cat, bird)
}

// DogBird is the canonical dog/bird interaction.
func (p *Playground) DogBird(dog, bird Animal) {
	p.play(dog, bird)
}

// NewTable returns the play table: each canonical interaction and its reverse.
// Animals don't play with their own species, so same-species pairs have no entry.
func (p *Playground) NewTable(opts ...dispatch.Option) (*Table, error) {
	return dispatch.NewBuilder[Species, Animal](opts...).
		RegisterSymmetric(dispatch.PairOf(CatSpecies, DogSpecies), dispatch.HandlerFunc[Animal](p.CatDog)).
		RegisterSymmetric(dispatch.PairOf(CatSpecies, BirdSpecies), dispatch.HandlerFunc[Animal](p.CatBird)).
		RegisterSymmetric(dispatch.PairOf(DogSpecies, BirdSpecies), dispatch.HandlerFunc[Animal](p.DogBird)).
		Build()
}

// PairLess orders pairs by first species, then second.
func PairLess(a, b Pair) bool {
	if a.First != b.First {
		return Less(a.First, b.First)
	}
	return Less(a.Second, b.Second)
}
