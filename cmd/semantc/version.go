package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "dev"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the semantc version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "semantc %s\n", Version)
	},
}
