package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lhaig/semant/internal/checker"
	"github.com/lhaig/semant/internal/compiler"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const shadowDoc = `
decls:
  - var: {name: x, type: Int, line: 1}
  - func:
      name: main
      type: Void
      line: 2
      body:
        vars: [{name: x, type: Bool, line: 3}]
        stmts: [{line: 4, return: {}}]
`

func TestCheckCommandReportsAndHalts(t *testing.T) {
	path := writeFile(t, "prog.yaml", shadowDoc)
	_, stderr, err := runCLI(t, "check", path)

	var halted *haltError
	if !errors.As(err, &halted) || halted.count != 1 {
		t.Fatalf("Expected a halt with 1 error, got %v", err)
	}
	want := "3: variable 'x' multiply defined\n" + compiler.HaltMessage + "\n"
	if stderr != want {
		t.Errorf("Unexpected stderr:\n%s", stderr)
	}
	if exitCode(err) != 1 {
		t.Errorf("Expected exit status 1")
	}
}

func TestCheckCommandFlagOverridesDefault(t *testing.T) {
	path := writeFile(t, "prog.yaml", shadowDoc)
	stdout, _, err := runCLI(t, "check", "--allow-shadowing", path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.Contains(stdout, "No errors found.") {
		t.Errorf("Unexpected stdout %q", stdout)
	}
}

func TestCheckCommandConfigFile(t *testing.T) {
	path := writeFile(t, "prog.yaml", shadowDoc)
	cfg := writeFile(t, "semant.yml", "allow_shadowing: true\n")
	if _, _, err := runCLI(t, "check", "--config", cfg, path); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
}

func TestDumpCommand(t *testing.T) {
	path := writeFile(t, "prog.yaml", `
decls:
  - func:
      name: main
      type: Void
      line: 1
      body: {stmts: [{line: 2, return: {}}]}
`)
	stdout, _, err := runCLI(t, "dump", path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.Contains(stdout, "Function: main") {
		t.Errorf("Expected the annotated tree, got:\n%s", stdout)
	}
}

func TestExitCodeForInternalError(t *testing.T) {
	if got := exitCode(&checker.InternalError{Line: 3, Msg: "boom"}); got != 2 {
		t.Errorf("Expected exit status 2, got %d", got)
	}
}

func TestLintCommand(t *testing.T) {
	path := writeFile(t, "prog.yaml", shadowDoc)
	stdout, _, err := runCLI(t, "lint", path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.Contains(stdout, path+":1: warning: global 'x' is declared but never used") {
		t.Errorf("Unexpected lint output:\n%s", stdout)
	}
}

func TestFmtCommand(t *testing.T) {
	path := writeFile(t, "prog.yaml", shadowDoc)
	stdout, _, err := runCLI(t, "fmt", path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.HasPrefix(stdout, "Int x;\n\nVoid main() {\n    Bool x;\n") {
		t.Errorf("Unexpected source:\n%s", stdout)
	}
}
