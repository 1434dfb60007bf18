package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lhaig/semant/internal/checker"
	"github.com/lhaig/semant/internal/config"
)

var (
	configPath     string
	allowShadowing bool
	hideGlobals    bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "semantc",
	Short: "semantc - semantic analyzer for checked AST documents",
	Long: `semantc type-checks a program given as a YAML or JSON AST document.

Commands:
  check    Check one or more documents and report diagnostics
  dump     Check a document and print the type-annotated tree
  fmt      Print a document as source code
  lint     Report style warnings
  version  Print the version
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().BoolVar(&allowShadowing, "allow-shadowing", false, "allow inner declarations to shadow outer ones")
	rootCmd.PersistentFlags().BoolVar(&hideGlobals, "hide-globals", false, "close the global scope before function bodies are checked")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")

	rootCmd.AddCommand(CheckCmd, DumpCmd, FmtCmd, LintCmd, VersionCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveOptions merges the config file with flags; flags win when set
func resolveOptions(cmd *cobra.Command) (checker.Options, error) {
	dir, err := os.Getwd()
	if err != nil {
		return checker.Options{}, err
	}
	opts, err := config.Resolve(configPath, dir)
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("allow-shadowing") {
		opts.AllowShadowing = allowShadowing
	}
	if flags.Changed("hide-globals") {
		opts.GlobalsVisible = !hideGlobals
	}
	return opts, nil
}
