package animal

import "github.com/go-leo/double-dispatch/dispatch"

// Animal interface.
type Animal interface {
	dispatch.Participant[Species]

	// Name returns the name printed in interactions.
	Name() string

	// Accept lets the visitor play with this animal.
	Accept(visitor PlayVisitor)

	// Player returns the visitor playing as this animal.
	Player(playground *Playground) PlayVisitor
}

// Cat is a cat.
type Cat struct{}

func (Cat) Kind() Species { return CatSpecies }

func (Cat) Name() string { return "Cat" }

// Dog is a dog.
type Dog struct{}

func (Dog) Kind() Species { return DogSpecies }

func (Dog) Name() string { return "Dog" }

// Bird is a bird.
type Bird struct{}

func (Bird) Kind() Species { return BirdSpecies }

func (Bird) Name() string { return "Bird" }
