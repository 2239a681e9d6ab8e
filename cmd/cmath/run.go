package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numerics/internal/batch"
)

type runOpts struct {
	out    string
	format string
}

func newRunCommand(root *rootOpts) *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:   "run <job-file>",
		Short: "Evaluate every entry of a YAML, TOML or JSON job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}
			root.logger.Info("Loaded job",
				zap.String("job", job.Name),
				zap.Int("evaluations", len(job.Evaluations)),
			)

			report, runErr := batch.Run(cmd.Context(), root.engine, job)
			if report != nil {
				root.logger.Info("Job finished",
					zap.String("run_id", report.RunID),
					zap.Int("failed", report.Failed),
					zap.Duration("duration", report.Duration),
				)
			}
			if runErr != nil {
				return runErr
			}

			format, err := outputFormat(opts)
			if err != nil {
				return err
			}

			if opts.out != "" {
				return writeReport(opts.out, report, format)
			}
			return batch.Encode(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", "", "Report format (json, yaml, toml); defaults to the --out extension or json")
	return cmd
}

// writeReport encodes the report to path. A failed close is reported since
// it can lose buffered output.
func writeReport(path string, report *batch.Report, format batch.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return batch.Encode(f, report, format)
}

func outputFormat(opts runOpts) (batch.Format, error) {
	switch {
	case opts.format != "":
		switch f := batch.Format(opts.format); f {
		case batch.FormatJSON, batch.FormatYAML, batch.FormatTOML:
			return f, nil
		default:
			return "", fmt.Errorf("unsupported format %q", opts.format)
		}
	case opts.out != "":
		return batch.FormatFromPath(opts.out)
	default:
		return batch.FormatJSON, nil
	}
}
