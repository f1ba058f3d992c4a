package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/hyperdisk"
)

func newArcCmd() *cobra.Command {
	var normalized bool

	cmd := &cobra.Command{
		Use:   "arc X1 Y1 X2 Y2",
		Short: "Resolve the geodesic between two points",
		Long: `Prints the circle (or straight chord) that draws the geodesic between two
points. Coordinates are hyperbolic unless --normalized is given. Put -- before
the coordinates when any of them is negative.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x1, y1, err := parsePair(args[0:2])
			if err != nil {
				return err
			}
			x2, y2, err := parsePair(args[2:4])
			if err != nil {
				return err
			}

			var arc hyperdisk.Arc
			if normalized {
				arc, err = hyperdisk.ResolveArc(hyperdisk.Norm(x1, y1), hyperdisk.Norm(x2, y2))
				if err != nil {
					return err
				}
			} else {
				arc = hyperdisk.GeodesicArc(hyperdisk.Hyp(x1, y1), hyperdisk.Hyp(x2, y2))
			}

			w := cmd.OutOrStdout()
			if arc.Straight {
				Brand.Fprintln(w, "straight chord")
				fmt.Fprintf(w, "  from    %v\n  to      %v\n", arc.From, arc.To)
				return nil
			}
			Brand.Fprintln(w, "arc")
			fmt.Fprintf(w, "  center  %v\n", arc.Center)
			fmt.Fprintf(w, "  radius  %.6f\n", arc.Radius)
			fmt.Fprintf(w, "  start   %.6f rad\n", arc.StartAngle)
			fmt.Fprintf(w, "  end     %.6f rad\n", arc.EndAngle)
			fmt.Fprintf(w, "  sweep   %.6f rad\n", arc.Sweep())
			if !normalized {
				fmt.Fprintf(w, "  length  %.6f\n", hyperdisk.Distance(hyperdisk.Hyp(x1, y1), hyperdisk.Hyp(x2, y2)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&normalized, "normalized", "n", false, "treat coordinates as disk coordinates")
	return cmd
}
