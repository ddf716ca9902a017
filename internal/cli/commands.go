package cli

import (
	"github.com/go-leo/double-dispatch/animal"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *app) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play FIRST SECOND",
		Short: "Play two animals through the dispatch table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			animals, err := animal.ParseAll(args...)
			if err != nil {
				return err
			}
			return a.table.Dispatch(animals[0], animals[1])
		},
	}
}

func (a *app) virtualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "virtual FIRST SECOND",
		Short: "Play two animals through their visitors, without a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			animals, err := animal.ParseAll(args...)
			if err != nil {
				return err
			}
			a.playground.PlayVirtual(animals[0], animals[1])
			return nil
		},
	}
}

func (a *app) matrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show which ordered pairs of species can play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderer.Matrix(a.table, animal.AllSpecies())
		},
	}
}

func (a *app) pairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List the registered ordered pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderer.Pairs(a.table)
		},
	}
}

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Play every pair of species in both orders, then a dog with a dog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return animal.Demo(a.table, a.errOut)
		},
	}
}

func (a *app) roundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "round ANIMAL...",
		Short: "Play every animal with every other one, concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			animals, err := animal.ParseAll(args...)
			if err != nil {
				return err
			}
			id := uuid.NewString()
			a.logger.Info("round started", "round", id, "animals", len(animals))
			misses := 0
			for err := range a.table.DispatchAll(cmd.Context(), animals...) {
				misses++
				a.renderer.Error(err)
			}
			a.logger.Info("round finished", "round", id, "misses", misses)
			return nil
		},
	}
}
