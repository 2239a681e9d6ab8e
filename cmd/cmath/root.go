package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/numerics/internal/config"
	"github.com/GriffinCanCode/numerics/internal/logging"
	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
)

type rootOpts struct {
	seriesMax int
	logLevel  string

	engine *cmath.Engine
	logger *logging.Logger
}

func newRootCommand() *cobra.Command {
	cfg := config.LoadOrDefault()
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "cmath",
		Short:         "Evaluate complex elementary functions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.seriesMax < 1 {
				return fmt.Errorf("--series-max must be at least 1, got %d", opts.seriesMax)
			}
			logger, err := logging.New(logging.Config{
				Level:       opts.logLevel,
				Development: true,
				Output:      "stderr",
			})
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.logger = logger
			opts.engine = cmath.New(cmath.Options{SeriesMax: opts.seriesMax})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().IntVar(&opts.seriesMax, "series-max", cfg.Numerics.SeriesMax, "Maximum series terms before reporting non-convergence")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newEvalCommand(opts),
		newRunCommand(opts),
	)
	return cmd
}
