package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lhaig/semant/internal/compiler"
)

// haltError marks a run that printed diagnostics and the halt message
type haltError struct {
	count int
}

func (e *haltError) Error() string {
	return fmt.Sprintf("%d semantic error(s)", e.count)
}

// check: type-check AST documents
var CheckCmd = &cobra.Command{
	Use:   "check <file.yaml>...",
	Short: "Check AST documents and report semantic errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	logger := newLogger()
	logger.Debug("options resolved",
		"allow_shadowing", opts.AllowShadowing,
		"globals_visible", opts.GlobalsVisible,
		"max_params", opts.MaxParams,
	)

	results, err := compiler.New(opts, logger).CheckFiles(args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	total := 0
	for _, res := range results {
		total += res.Diagnostics.Count()
		writeDiagnostics(stderr, res, len(results) > 1)
	}
	if total > 0 {
		fmt.Fprintln(stderr, compiler.HaltMessage)
		return &haltError{count: total}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "No errors found.")
	return nil
}

// writeDiagnostics prints one line per diagnostic, prefixed with the file
// name when several documents were checked
func writeDiagnostics(w io.Writer, res *compiler.Result, withPath bool) {
	for _, d := range res.Diagnostics.All() {
		if withPath {
			fmt.Fprintf(w, "%s:%s\n", res.Path, d)
			continue
		}
		fmt.Fprintln(w, d)
	}
}
