package animal

import "fmt"

// New creates the animal of species s.
func New(s Species) (Animal, error) {
	switch s {
	case CatSpecies:
		return Cat{}, nil
	case DogSpecies:
		return Dog{}, nil
	case BirdSpecies:
		return Bird{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSpecies, s)
	}
}

// Parse creates the animal called name.
func Parse(name string) (Animal, error) {
	s, err := ParseSpecies(name)
	if err != nil {
		return nil, err
	}
	return New(s)
}

// ParseAll creates one animal per name, in order.
func ParseAll(names ...string) ([]Animal, error) {
	animals := make([]Animal, 0, len(names))
	for _, name := range names {
		a, err := Parse(name)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, nil
}
