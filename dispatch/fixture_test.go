package dispatch_test

import (
	"bytes"
	"fmt"
	"github.com/go-leo/double-dispatch/dispatch"
	"sync"
)

const (
	Rock     = "rock"
	Paper    = "paper"
	Scissors = "scissors"
)

type hand struct {
	kind  string
	owner string
}

func (h hand) Kind() string {
	return h.kind
}

type journal struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (j *journal) printf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(&j.buf, format, args...)
}

func (j *journal) String() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buf.String()
}

func (j *journal) beats(winner, loser hand) {
	j.printf("%s beats %s\n", winner.kind, loser.kind)
}

func newGame(j *journal, opts ...dispatch.Option) (*dispatch.Table[string, hand], error) {
	beats := dispatch.HandlerFunc[hand](j.beats)
	return dispatch.NewBuilder[string, hand](opts...).
		RegisterSymmetric(dispatch.PairOf(Rock, Scissors), beats).
		RegisterSymmetric(dispatch.PairOf(Paper, Rock), beats).
		RegisterSymmetric(dispatch.PairOf(Scissors, Paper), beats).
		Build()
}
