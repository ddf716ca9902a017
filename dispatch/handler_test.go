package dispatch_test

import (
	"github.com/go-leo/double-dispatch/dispatch"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
)

func TestRegisterSymmetric_SwapsBeforeCanonical(t *testing.T) {
	ctrl := gomock.NewController(t)
	canonical := NewMockHandler[hand](ctrl)

	table, err := dispatch.NewBuilder[string, hand]().
		RegisterSymmetric(dispatch.PairOf(Rock, Scissors), canonical).
		Build()
	require.NoError(t, err)

	rock := hand{kind: Rock, owner: "alice"}
	scissors := hand{kind: Scissors, owner: "bob"}

	gomock.InOrder(
		canonical.EXPECT().Handle(rock, scissors),
		canonical.EXPECT().Handle(rock, scissors),
	)
	require.NoError(t, table.Dispatch(rock, scissors))
	require.NoError(t, table.Dispatch(scissors, rock))
}

func TestDispatch_MissRunsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	canonical := NewMockHandler[hand](ctrl)
	canonical.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(0)

	table, err := dispatch.NewBuilder[string, hand]().
		RegisterSymmetric(dispatch.PairOf(Rock, Scissors), canonical).
		Build()
	require.NoError(t, err)

	require.ErrorIs(t, table.Dispatch(hand{kind: Rock}, hand{kind: Rock}), dispatch.ErrNotFound)
	require.ErrorIs(t, table.Dispatch(hand{kind: Rock}, hand{kind: Paper}), dispatch.ErrNotFound)
}
