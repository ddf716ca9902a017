// Package cli wires configuration, logging and the play table into the playground command.
package cli

import (
	"context"
	"fmt"
	"github.com/go-leo/double-dispatch/animal"
	"github.com/go-leo/double-dispatch/dispatch"
	"github.com/go-leo/double-dispatch/internal/config"
	"github.com/go-leo/double-dispatch/internal/render"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel string
	output   string
	envFiles []string

	logger     *slog.Logger
	playground *animal.Playground
	table      *animal.Table
	renderer   *render.Renderer
}

// Execute runs the playground command with args and reports any error to errOut.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	a := &app{out: out, errOut: errOut}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		a.report(err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playground",
		Short:         "Double dispatch between cats, dogs and birds",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (env LOG_LEVEL)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: plain, color or json (env OUTPUT)")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "env files to load before the environment (default .env)")

	cmd.AddCommand(
		a.playCommand(),
		a.virtualCommand(),
		a.matrixCommand(),
		a.pairsCommand(),
		a.demoCommand(),
		a.roundCommand(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger = cfg.Logger(a.errOut)
	a.renderer = render.New(a.out, a.errOut, cfg.Output)
	a.playground = animal.NewPlayground(a.out)
	a.table, err = a.playground.NewTable(dispatch.Logger(a.logger))
	if err != nil {
		return fmt.Errorf("build play table: %w", err)
	}
	a.logger.Debug("play table ready", "pairs", a.table.Len())
	return nil
}

func (a *app) report(err error) {
	if a.renderer == nil {
		_, _ = fmt.Fprintln(a.errOut, "Error:", err)
		return
	}
	a.renderer.Error(err)
}
