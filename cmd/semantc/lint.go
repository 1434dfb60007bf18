package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhaig/semant/internal/linter"
	"github.com/lhaig/semant/internal/loader"
)

// lint: style warnings that never fail the run
var LintCmd = &cobra.Command{
	Use:   "lint <file.yaml>...",
	Short: "Report style and best-practice warnings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  lintRun,
}

func lintRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		prog, _, err := loader.LoadFile(path)
		if err != nil {
			return err
		}
		for _, w := range linter.Lint(prog) {
			fmt.Fprintf(out, "%s:%s\n", path, w)
		}
	}
	return nil
}
