package dispatch

import (
	"context"
	"github.com/go-leo/gox/syncx/chanx"
)

// DispatchAll dispatches every ordered pair of distinct participants, (p[i], p[j]) with
// i != j, on the worker pool. The handlers run concurrently, so they must be safe
// for concurrent use.
//
// The returned channel receives the error of every failed dispatch and is closed
// once all of them have returned. Once ctx is done no further pair is scheduled
// and ctx.Err() is sent.
func (t *Table[K, P]) DispatchAll(ctx context.Context, participants ...P) <-chan error {
	errCs := make([]<-chan error, 0, len(participants)*len(participants))
schedule:
	for i, first := range participants {
		for j, second := range participants {
			if i == j {
				continue
			}
			errC := make(chan error, 1)
			errCs = append(errCs, errC)
			if err := ctx.Err(); err != nil {
				errC <- err
				close(errC)
				break schedule
			}
			err := t.options.Pool.Go(func() {
				defer close(errC)
				if err := t.Dispatch(first, second); err != nil {
					errC <- err
				}
			})
			if err != nil {
				errC <- err
				close(errC)
			}
		}
	}
	if len(errCs) == 0 {
		errC := make(chan error)
		close(errC)
		return errC
	}
	return chanx.Combine[error](errCs...)
}
