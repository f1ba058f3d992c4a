package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/hyperdisk"
	"github.com/gogpu/hyperdisk/interact"
)

func newStatsCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Replay a session and summarize the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, err := replay(session)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			g := e.Graph()
			p := message.NewPrinter(language.English)

			comps := g.Components()
			Brand.Fprintln(w, "graph")
			p.Fprintf(w, "  points      %d\n", g.NumPoints())
			p.Fprintf(w, "  lines       %d\n", g.NumLines())
			p.Fprintf(w, "  components  %d\n", len(comps))
			p.Fprintf(w, "  length      %.4f\n", totalLength(g))
			fmt.Fprintln(w)

			rows := make([][]string, 0, len(comps))
			for i, c := range comps {
				rows = append(rows, []string{
					fmt.Sprint(i + 1),
					p.Sprintf("%d", c.Len()),
					joinIDs(c.Sorted()),
				})
			}
			table(w, []string{"#", "SIZE", "POINTS"}, rows)

			if counts := commandCounts(e.Journal()); len(counts) > 0 {
				fmt.Fprintln(w)
				Brand.Fprintln(w, "commands")
				names := make([]string, 0, len(counts))
				for name := range counts {
					names = append(names, name)
				}
				slices.Sort(names)
				for _, name := range names {
					p.Fprintf(w, "  %-16s%d\n", name, counts[name])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "session file (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

// totalLength sums the hyperbolic length of every line.
func totalLength(g *hyperdisk.Graph) float64 {
	var sum float64
	for _, l := range g.Lines() {
		a, ok := g.Point(l.Start)
		if !ok {
			continue
		}
		b, ok := g.Point(l.End)
		if !ok {
			continue
		}
		sum += hyperdisk.Distance(a, b)
	}
	return sum
}

func joinIDs(ids []hyperdisk.PointID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, " ")
}

func commandCounts(journal []interact.Command) map[string]int {
	counts := make(map[string]int)
	for _, c := range journal {
		name := fmt.Sprintf("%T", c)
		name = name[strings.LastIndex(name, ".")+1:]
		counts[name]++
	}
	return counts
}
