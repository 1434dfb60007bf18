package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/compiler"
)

// dump: print the annotated tree of a checked document
var DumpCmd = &cobra.Command{
	Use:   "dump <file.yaml>",
	Short: "Check a document and print its type-annotated tree",
	Args:  cobra.ExactArgs(1),
	RunE:  dumpRun,
}

func dumpRun(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	res, err := compiler.New(opts, newLogger()).CheckFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ast.Print(res.Program))
	if res.Err() != nil {
		stderr := cmd.ErrOrStderr()
		writeDiagnostics(stderr, res, false)
		fmt.Fprintln(stderr, compiler.HaltMessage)
		return &haltError{count: res.Diagnostics.Count()}
	}
	return nil
}
