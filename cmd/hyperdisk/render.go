package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/hyperdisk/render"
)

func newRenderCmd() *cobra.Command {
	var (
		session   string
		out       string
		width     int
		height    int
		labels    bool
		lineWidth float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay a session and render the graph to PNG",
		Long: `Replays the events of a recorded session (YAML or TOML) and draws the
resulting points and geodesics. The image size defaults to the session's
viewport; a drag still in progress at the end of the session is drawn at
its preview position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := replay(session)
			if err != nil {
				return err
			}

			if width == 0 {
				width = int(math.Round(s.Viewport.Width))
			}
			if height == 0 {
				height = int(math.Round(s.Viewport.Height))
			}
			opts := []render.Option{
				render.WithSize(width, height),
				render.WithLabels(labels),
			}
			if lineWidth > 0 {
				opts = append(opts, render.WithLineWidth(lineWidth))
			}
			r, err := render.New(opts...)
			if err != nil {
				return err
			}

			pending, _ := e.Pending()
			scene := render.Scene{
				Graph:     e.Graph(),
				Selection: e.Selection(),
				Pending:   pending,
				Preview:   e.Preview(),
			}
			if err := r.SavePNG(out, scene); err != nil {
				return err
			}

			Good.Fprintf(cmd.OutOrStdout(), "rendered %s", out)
			fmt.Fprintf(cmd.OutOrStdout(), " (%dx%d, %d points, %d lines)\n",
				width, height, e.Graph().NumPoints(), e.Graph().NumLines())
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "session file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&out, "out", "o", "hyperdisk.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 0, "image width (default: session viewport width)")
	cmd.Flags().IntVar(&height, "height", 0, "image height (default: session viewport height)")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw point handles")
	cmd.Flags().Float64Var(&lineWidth, "line-width", 0, "geodesic stroke width")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}
