package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhaig/semant/internal/formatter"
	"github.com/lhaig/semant/internal/loader"
)

// fmt: render a document as source code
var FmtCmd = &cobra.Command{
	Use:   "fmt <file.yaml>",
	Short: "Print a document as canonical source code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, _, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(prog))
		return nil
	},
}
