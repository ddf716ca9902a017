package animal

// CatVisitor visits a Cat.
type CatVisitor interface {
	VisitCat(cat Cat)
}

// DogVisitor visits a Dog.
type DogVisitor interface {
	VisitDog(dog Dog)
}

// BirdVisitor visits a Bird.
type BirdVisitor interface {
	VisitBird(bird Bird)
}

// PlayVisitor extends all visitor interfaces, one method per species it can play with.
type PlayVisitor interface {
	CatVisitor
	DogVisitor
	BirdVisitor
}

func (c Cat) Accept(visitor PlayVisitor) {
	visitor.VisitCat(c)
}

func (d Dog) Accept(visitor PlayVisitor) {
	visitor.VisitDog(d)
}

func (b Bird) Accept(visitor PlayVisitor) {
	visitor.VisitBird(b)
}

func (c Cat) Player(playground *Playground) PlayVisitor {
	return catPlayer{playground: playground, cat: c}
}

func (d Dog) Player(playground *Playground) PlayVisitor {
	return dogPlayer{playground: playground, dog: d}
}

func (b Bird) Player(playground *Playground) PlayVisitor {
	return birdPlayer{playground: playground, bird: b}
}

type catPlayer struct {
	playground *Playground
	cat        Cat
}

func (v catPlayer) VisitCat(cat Cat) {
	v.playground.play(v.cat, cat)
}

func (v catPlayer) VisitDog(dog Dog) {
	v.playground.play(v.cat, dog)
}

func (v catPlayer) VisitBird(bird Bird) {
	v.playground.play(v.cat, bird)
}

type dogPlayer struct {
	playground *Playground
	dog        Dog
}

func (v dogPlayer) VisitCat(cat Cat) {
	v.playground.play(v.dog, cat)
}

func (v dogPlayer) VisitDog(dog Dog) {
	v.playground.play(v.dog, dog)
}

func (v dogPlayer) VisitBird(bird Bird) {
	v.playground.play(v.dog, bird)
}

type birdPlayer struct {
	playground *Playground
	bird       Bird
}

func (v birdPlayer) VisitCat(cat Cat) {
	v.playground.play(v.bird, cat)
}

func (v birdPlayer) VisitDog(dog Dog) {
	v.playground.play(v.bird, dog)
}

func (v birdPlayer) VisitBird(bird Bird) {
	v.playground.play(v.bird, bird)
}

// PlayVirtual plays first with second without a table: first picks its player,
// second accepts it. Every combination is defined, same species included.
func (p *Playground) PlayVirtual(first, second Animal) {
	second.Accept(first.Player(p))
}
