package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numerics/internal/batch"
	"github.com/GriffinCanCode/numerics/internal/types"
)

func newEvalCommand(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <fn> <re> <im> [arg]",
		Short: "Evaluate one function at re + i·im",
		Long: strings.TrimSpace(`
Evaluate one function at z = re + i·im and print the result as JSON.

The optional fourth argument is the exponent p for pow, the integer
exponent n for powInt, and the real base x for powReal.
`),
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := parseEvaluation(args)
			if err != nil {
				return err
			}

			res, err := batch.Evaluate(root.engine, ev)
			if err != nil {
				root.logger.Debug("Evaluation failed", zap.String("fn", ev.Fn), zap.Error(err))
				return err
			}
			return batch.Encode(cmd.OutOrStdout(), res, batch.FormatJSON)
		},
	}
}

func parseEvaluation(args []string) (batch.Evaluation, error) {
	ev := batch.Evaluation{Fn: args[0]}
	if !batch.IsKnown(ev.Fn) {
		return ev, fmt.Errorf("unknown function %q", ev.Fn)
	}

	re, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return ev, fmt.Errorf("invalid real part %q: %w", args[1], err)
	}
	im, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return ev, fmt.Errorf("invalid imaginary part %q: %w", args[2], err)
	}
	ev.Z = types.ComplexValue{Re: types.Float(re), Im: types.Float(im)}

	if len(args) < 4 {
		return ev, nil
	}

	switch ev.Fn {
	case "pow":
		p, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return ev, fmt.Errorf("invalid exponent %q: %w", args[3], err)
		}
		pf := types.Float(p)
		ev.P = &pf
	case "powInt":
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return ev, fmt.Errorf("invalid integer exponent %q: %w", args[3], err)
		}
		ev.N = &n
	case "powReal":
		x, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return ev, fmt.Errorf("invalid base %q: %w", args[3], err)
		}
		xf := types.Float(x)
		ev.X = &xf
	default:
		return ev, fmt.Errorf("%s takes no fourth argument", ev.Fn)
	}
	return ev, nil
}
