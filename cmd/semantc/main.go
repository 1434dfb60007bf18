package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lhaig/semant/internal/checker"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode prints err and maps it to a process status.
// Halted programs have already printed their diagnostics.
func exitCode(err error) int {
	var halted *haltError
	if errors.As(err, &halted) {
		return 1
	}

	var ie *checker.InternalError
	if errors.As(err, &ie) {
		fmt.Fprintln(os.Stderr, ie.Error())
		return 2
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	return 1
}
