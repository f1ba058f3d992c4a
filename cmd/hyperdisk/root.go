package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/hyperdisk"
)

func newRootCmd() *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	root := &cobra.Command{
		Use:           "hyperdisk",
		Short:         "Points and geodesics in the Poincaré disk",
		Long:          Brand.Sprint("hyperdisk") + " replays editing sessions, renders them and inspects the geometry engine.",
		Version:       hyperdisk.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose && !cmd.Flags().Changed("log-level") {
				hyperdisk.SetLogger(nil)
				return nil
			}
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			hyperdisk.SetLogger(newLogger(cmd.ErrOrStderr(), level))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log library activity to stderr")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "debug", "log level when logging is on (debug, info, warn, error)")

	root.AddCommand(
		newRenderCmd(),
		newStatsCmd(),
		newConvertCmd(),
		newArcCmd(),
		newVersionCmd(),
	)
	return root
}

// newLogger writes text records to w and standardizes "error" to "err".
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyperdisk %s\n", hyperdisk.Version)
		},
	}
}
