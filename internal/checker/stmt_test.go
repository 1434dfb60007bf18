package checker

import (
	"testing"

	"github.com/lhaig/semant/internal/diagnostic"
)

// inMain wraps statements in a main function whose locals are i: Int and b: Bool
func inMain(stmts string) string {
	return `
decls:
  - func:
      name: main
      type: Void
      line: 1
      body:
        vars: [{name: i, type: Int, line: 1}, {name: b, type: Bool, line: 1}]
        stmts:
` + stmts + `
          - {line: 99, return: {}}
`
}

func TestBreakAndContinuePlacement(t *testing.T) {
	tests := []struct {
		name  string
		stmts string
		want  int
	}{
		{
			name: "break in while body",
			stmts: `          - line: 2
            while: {cond: {id: b}, body: {stmts: [{line: 3, break: true}]}}`,
			want: 0,
		},
		{
			name: "continue in for body",
			stmts: `          - line: 2
            for: {body: {stmts: [{line: 3, continue: true}]}}`,
			want: 0,
		},
		{
			name:  "break at function level",
			stmts: `          - {line: 2, break: true}`,
			want:  1,
		},
		{
			name: "continue inside if inside while",
			stmts: `          - line: 2
            while:
              cond: {bool: true}
              body:
                stmts:
                  - {line: 3, if: {cond: {bool: true}, then: {stmts: [{line: 4, continue: true}]}}}`,
			want: 1,
		},
		{
			name: "break inside nested block in loop",
			stmts: `          - line: 2
            while:
              cond: {bool: true}
              body: {stmts: [{line: 3, block: {stmts: [{line: 4, break: true}]}}]}`,
			want: 1,
		},
		{
			name: "break in else branch",
			stmts: `          - line: 2
            if: {cond: {id: b}, then: {}, else: {stmts: [{line: 3, break: true}]}}`,
			want: 1,
		},
		{
			name: "inner loop body",
			stmts: `          - line: 2
            while:
              cond: {bool: true}
              body:
                stmts:
                  - {line: 3, for: {body: {stmts: [{line: 4, break: true}]}}}
                  - {line: 5, continue: true}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diag := loadAndCheck(t, inMain(tt.stmts))
			expectCount(t, diag, diagnostic.ControlFlowMisplacement, tt.want)
			expectTotal(t, diag, tt.want)
		})
	}
}

func TestConditionsMustBeBool(t *testing.T) {
	source := inMain(`          - {line: 2, if: {cond: {id: i}, then: {}}}
          - {line: 3, while: {cond: {string: "yes"}}}
          - {line: 4, if: {cond: {binary: {op: "<", left: {id: i}, right: {int: 3}}}, then: {}}}`)
	_, diag := loadAndCheck(t, source)

	expectCount(t, diag, diagnostic.TypeMismatch, 2)
	expectMessage(t, diag, "if condition must be Bool, got Int")
	expectMessage(t, diag, "while condition must be Bool, got String")
}

func TestForClausesAreChecked(t *testing.T) {
	source := inMain(`          - line: 2
            for:
              init: {assign: {name: i, value: {bool: true}}}
              cond: {id: missing}
              step: {unary: {op: "!", operand: {id: i}}}`)
	_, diag := loadAndCheck(t, source)

	expectCount(t, diag, diagnostic.TypeMismatch, 1)
	expectCount(t, diag, diagnostic.UndeclaredIdentifier, 1)
	expectCount(t, diag, diagnostic.OperatorTypeMismatch, 1)
	expectTotal(t, diag, 3)
}

func TestEmptyForClauses(t *testing.T) {
	prog, diag := loadAndCheck(t, inMain(`          - {line: 2, for: {}}`))
	expectTotal(t, diag, 0)

	main := prog.Functions()[0]
	if got := main.Body.Statements[0].Pos(); got != 2 {
		t.Errorf("Expected for statement at line 2, got %d", got)
	}
}

func TestNestedReturnsAreChecked(t *testing.T) {
	source := `
decls:
  - func:
      name: f
      type: Int
      line: 1
      body:
        stmts:
          - line: 2
            while:
              cond: {bool: true}
              body: {stmts: [{line: 3, return: {value: {string: "x"}}}]}
          - {line: 4, return: {value: {int: 0}}}
  - func:
      name: main
      type: Void
      line: 6
      body: {stmts: [{line: 7, return: {}}]}
`
	_, diag := loadAndCheck(t, source)
	expectTotal(t, diag, 1)
	expectMessage(t, diag, "returns String, but function expects Int")
}

func TestReturnOnlyInsideLoopIsMissing(t *testing.T) {
	source := `
decls:
  - func:
      name: main
      type: Void
      line: 1
      body:
        stmts:
          - line: 2
            while: {cond: {bool: true}, body: {stmts: [{line: 3, return: {}}]}}
`
	_, diag := loadAndCheck(t, source)
	expectTotal(t, diag, 1)
	expectCount(t, diag, diagnostic.StructuralViolation, 1)
	if d := diag.All()[0]; d.Line != 2 {
		t.Errorf("Expected the error on the last top-level statement (line 2), got %d", d.Line)
	}
}

func TestBlockLocals(t *testing.T) {
	source := inMain(`          - line: 2
            block:
              vars: [{name: tmp, type: Float, line: 2}]
              stmts:
                - {line: 3, expr: {assign: {name: tmp, value: {float: 1.5}}}}
          - {line: 4, expr: {assign: {name: tmp, value: {float: 2.5}}}}`)
	_, diag := loadAndCheck(t, source)

	// tmp is visible inside its block and gone after it
	expectTotal(t, diag, 1)
	expectMessage(t, diag, "assignment to undeclared variable 'tmp'")
}

func TestLoopBodyLocals(t *testing.T) {
	source := inMain(`          - line: 2
            while:
              cond: {id: b}
              body:
                vars: [{name: n, type: Int, line: 2}]
                stmts:
                  - {line: 3, expr: {assign: {name: n, value: {binary: {op: "+", left: {id: n}, right: {id: i}}}}}}
                  - {line: 4, break: true}`)
	_, diag := loadAndCheck(t, source)
	expectTotal(t, diag, 0)
}
