package animal

import (
	"errors"
	"fmt"
	"github.com/go-leo/double-dispatch/dispatch"
	"io"
)

// Demo plays every pair of distinct species in both orders, then a dog with a dog.
// The last play has no dispatching function; that is reported to errOut.
func Demo(table *Table, errOut io.Writer) error {
	cat, dog, bird := Cat{}, Dog{}, Bird{}
	plays := [][2]Animal{
		{cat, dog},
		{cat, bird},
		{dog, bird},
		{dog, cat},
		{bird, cat},
		{bird, dog},
	}
	for _, play := range plays {
		if err := table.Dispatch(play[0], play[1]); err != nil {
			return err
		}
	}

	// animals don't play with the same species
	err := table.Dispatch(dog, dog)
	switch {
	case err == nil:
		return errors.New("dog played with dog")
	case !errors.Is(err, dispatch.ErrNotFound):
		return err
	}
	_, _ = fmt.Fprintln(errOut, "No dispatching function!")
	return nil
}
