// Command gridlock is an interactive shell for building an
// allocation/request matrix and running deadlock detection on it.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridlock/manager"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("gridlock exited", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var withExample bool

	cmd := &cobra.Command{
		Use:   "gridlock",
		Short: "Interactive deadlock detection over allocation/request matrices",
		Long: `gridlock opens an interactive shell where you build a matrix of
processes and resources, then run a safety-algorithm pass that either
produces a safe completion order or explains the deadlock step by step.

Type 'help' inside the shell for the command list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr := manager.New()
			if withExample {
				mgr.LoadExample()
			}
			r := newREPL(mgr, cmd.OutOrStdout(), cmd.InOrStdin())

			return r.run()
		},
	}
	cmd.Flags().BoolVar(&withExample, "example", false, "start with the sample scenario loaded")

	return cmd
}
