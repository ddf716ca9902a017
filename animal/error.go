package animal

import "errors"

var (
	// ErrUnknownSpecies species is not Cat, Dog or Bird
	ErrUnknownSpecies = errors.New("unknown species")
)
