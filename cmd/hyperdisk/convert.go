package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/hyperdisk"
)

func newConvertCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a point between coordinate frames",
		Long:  "Converts a point between frames. Put -- before negative coordinates.",
	}
	cmd.PersistentFlags().Float64Var(&width, "width", 800, "viewport width for screen conversions")
	cmd.PersistentFlags().Float64Var(&height, "height", 800, "viewport height for screen conversions")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "h2n X Y",
			Short: "Hyperbolic to normalized",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hyperdisk.HyperbolicToNormalized(hyperdisk.Hyp(x, y)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "n2h X Y",
			Short: "Normalized to hyperbolic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				h, ok := hyperdisk.NormalizedToHyperbolic(hyperdisk.Norm(x, y))
				if !ok {
					return fmt.Errorf("%v: %w", hyperdisk.Norm(x, y), hyperdisk.ErrOutsideDisk)
				}
				fmt.Fprintln(cmd.OutOrStdout(), h)
				return nil
			},
		},
		&cobra.Command{
			Use:   "s2n X Y",
			Short: "Screen to normalized",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				n, ok := hyperdisk.ScreenToNormalized(hyperdisk.Px(x, y), hyperdisk.NewViewport(width, height))
				if !ok {
					Warn.Fprintf(cmd.OutOrStdout(), "%v is not on the disk\n", hyperdisk.Px(x, y))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "n2s X Y",
			Short: "Normalized to screen",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hyperdisk.NormalizedToScreen(hyperdisk.Norm(x, y), hyperdisk.NewViewport(width, height)))
				return nil
			},
		},
	)
	return cmd
}

func parsePair(args []string) (float64, float64, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y %q: %w", args[1], err)
	}
	return x, y, nil
}
