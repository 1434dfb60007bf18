package linter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lhaig/semant/internal/loader"
)

func loadAndLint(t *testing.T, source string) []string {
	t.Helper()
	prog, _, err := loader.Decode([]byte(source))
	if err != nil {
		t.Fatalf("Loader error: %s", err)
	}

	var warnings []string
	for _, w := range Lint(prog) {
		warnings = append(warnings, w.String())
	}
	return warnings
}

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestCleanProgramNoWarnings(t *testing.T) {
	source := `
decls:
  - var: {name: count, type: Int, line: 1}
  - func:
      name: bump
      type: Int
      line: 2
      params: [{name: by, type: Int, line: 2}]
      body:
        stmts:
          - {line: 3, expr: {assign: {name: count, value: {binary: {op: "+", left: {id: count}, right: {id: by}}}}}}
          - {line: 4, return: {value: {id: count}}}
  - func:
      name: main
      type: Void
      line: 6
      body: {stmts: [{line: 7, expr: {call: {name: bump, args: [{int: 1}]}}}, {line: 8, return: {}}]}
`
	if warnings := loadAndLint(t, source); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", warnings)
	}
}

func TestUnusedNames(t *testing.T) {
	source := `
decls:
  - var: {name: idle, type: Int, line: 1}
  - func:
      name: main
      type: Void
      line: 2
      body:
        vars: [{name: tmp, type: Int, line: 3}]
        stmts:
          - line: 4
            while:
              cond: {bool: false}
              body: {vars: [{name: inner, type: Bool, line: 5}]}
          - {line: 6, return: {}}
  - func:
      name: f
      type: Int
      line: 8
      params: [{name: unused, type: Int, line: 8}]
      body: {stmts: [{line: 9, return: {value: {int: 0}}}]}
`
	warnings := loadAndLint(t, source)
	for _, want := range []string{
		"1: warning: global 'idle' is declared but never used",
		"3: warning: variable 'tmp' is declared but never used",
		"5: warning: variable 'inner' is declared but never used",
		"8: warning: parameter 'unused' in 'f' is never used",
	} {
		if !containsWarning(warnings, want) {
			t.Errorf("Expected %q, got: %v", want, warnings)
		}
	}
}

func TestReadButNeverAssigned(t *testing.T) {
	source := `
decls:
  - func:
      name: main
      type: Void
      line: 1
      body:
        vars: [{name: n, type: Int, line: 2}]
        stmts:
          - {line: 3, expr: {call: {name: printf, args: [{string: "%d"}, {id: n}]}}}
          - {line: 4, return: {}}
`
	warnings := loadAndLint(t, source)
	if !containsWarning(warnings, "variable 'n' is used but never assigned") {
		t.Errorf("Expected an unassigned warning, got: %v", warnings)
	}
}

func TestUnreachableStatement(t *testing.T) {
	source := `
decls:
  - func:
      name: main
      type: Void
      line: 1
      body:
        stmts:
          - line: 2
            while:
              cond: {bool: true}
              body: {stmts: [{line: 3, break: true}, {line: 4, continue: true}, {line: 5, break: true}]}
          - {line: 6, return: {}}
          - {line: 7, expr: {call: {name: printf, args: [{string: "never"}]}}}
`
	want := []string{
		"7: warning: unreachable statement",
		"4: warning: unreachable statement",
	}
	if diff := cmp.Diff(want, loadAndLint(t, source)); diff != "" {
		t.Errorf("Warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestNaming(t *testing.T) {
	source := `
decls:
  - var: {name: Total, type: Int, line: 1}
  - func:
      name: Main
      type: Void
      line: 2
      body: {stmts: [{line: 3, expr: {assign: {name: Total, value: {id: Total}}}}, {line: 4, return: {}}]}
`
	warnings := loadAndLint(t, source)
	if !containsWarning(warnings, "variable 'Total' should start with a lowercase letter") {
		t.Errorf("Expected a variable naming warning, got: %v", warnings)
	}
	if !containsWarning(warnings, "function 'Main' should start with a lowercase letter") {
		t.Errorf("Expected a function naming warning, got: %v", warnings)
	}
}
