package animal

import (
	"fmt"
	"github.com/samber/lo"
	"strings"
)

// Species is the closed set of animal kinds.
type Species int

const (
	CatSpecies Species = iota + 1
	DogSpecies
	BirdSpecies
)

var speciesNames = map[Species]string{
	CatSpecies:  "Cat",
	DogSpecies:  "Dog",
	BirdSpecies: "Bird",
}

// AllSpecies returns every species in declaration order.
func AllSpecies() []Species {
	return []Species{CatSpecies, DogSpecies, BirdSpecies}
}

func (s Species) String() string {
	if name, ok := speciesNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

func (s Species) MarshalText() ([]byte, error) {
	if _, ok := speciesNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Species) UnmarshalText(text []byte) error {
	parsed, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSpecies returns the species called name, ignoring case.
func ParseSpecies(name string) (Species, error) {
	s, ok := lo.Find(AllSpecies(), func(s Species) bool {
		return strings.EqualFold(s.String(), strings.TrimSpace(name))
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return s, nil
}

// Less orders species by declaration order.
func Less(a, b Species) bool {
	return a < b
}
