package dispatch

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

type pairJSON[K comparable] struct {
	First  K `json:"first"`
	Second K `json:"second"`
}

type tableJSON[K comparable] struct {
	Pairs []pairJSON[K] `json:"pairs"`
}

// MarshalJSON describes the registered pairs, ordered by their String form.
// Handlers are not part of the output.
func (t *Table[K, P]) MarshalJSON() ([]byte, error) {
	pairs := t.SortedPairs(func(a, b Pair[K]) bool {
		return a.String() < b.String()
	})
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(tableJSON[K]{
		Pairs: lo.Map(pairs, func(p Pair[K], _ int) pairJSON[K] {
			return pairJSON[K]{First: p.First, Second: p.Second}
		}),
	})
}
