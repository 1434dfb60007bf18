package ast

import (
	"strings"
	"testing"

	"github.com/lhaig/semant/internal/idtable"
)

func TestPrintFunction(t *testing.T) {
	tbl := idtable.New()
	r := idtable.Reserve(tbl)

	sum := &BinaryExpr{
		Op:    OpAdd,
		Left:  &IntLit{Value: 1, Line: 2},
		Right: &FloatLit{Value: 2.5, Line: 2},
		Line:  2,
	}
	sum.SetType(r.Float)

	prog := &Program{Decls: []Decl{
		&VariableDecl{Name: tbl.Add("g"), Type: r.Int, Line: 1},
		&FunctionDecl{
			Name:       r.Main,
			ReturnType: r.Void,
			Line:       2,
			Body: &Block{
				Line: 2,
				Statements: []Statement{
					&ExprStmt{Expr: sum, Line: 2},
					&ReturnStmt{Value: NewNoExpr(3), Line: 3},
				},
			},
		},
	}}

	out := Print(prog)

	for _, want := range []string{
		"Program\n",
		"  Var: g Int\n",
		"  Function: main\n",
		"    Params: none\n",
		"    Returns: Void\n",
		"Binary: + : Float\n",
		"Int: 1\n",
		"Float: 2.5\n",
		"Return\n",
		"Empty\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestOpSpelling(t *testing.T) {
	tests := []struct {
		spelling string
		op       Op
	}{
		{"+", OpAdd},
		{"<=", OpLe},
		{"&&", OpAnd},
		{"|", OpBitOr},
		{"-", OpSub},
	}
	for _, tt := range tests {
		got, ok := BinaryOp(tt.spelling)
		if !ok || got != tt.op {
			t.Errorf("BinaryOp(%q) = %v, %v; want %v", tt.spelling, got, ok, tt.op)
		}
		if tt.op.String() != tt.spelling {
			t.Errorf("%v.String() = %q", tt.op, tt.op.String())
		}
	}

	if _, ok := BinaryOp("!"); ok {
		t.Error("! is not a binary operator")
	}
	if op, ok := UnaryOp("-"); !ok || op != OpNeg {
		t.Errorf("UnaryOp(-) = %v, %v", op, ok)
	}
	if _, ok := UnaryOp("+"); ok {
		t.Error("+ is not a unary operator")
	}
}

func TestProgramPartitions(t *testing.T) {
	tbl := idtable.New()
	prog := &Program{Decls: []Decl{
		&VariableDecl{Name: tbl.Add("a"), Line: 1},
		&FunctionDecl{Name: tbl.Add("f"), Line: 2},
		&VariableDecl{Name: tbl.Add("b"), Line: 3},
	}}
	if got := len(prog.Globals()); got != 2 {
		t.Errorf("expected 2 globals, got %d", got)
	}
	if got := len(prog.Functions()); got != 1 {
		t.Errorf("expected 1 function, got %d", got)
	}
	if prog.Pos() != 1 {
		t.Errorf("expected program position 1, got %d", prog.Pos())
	}
}
