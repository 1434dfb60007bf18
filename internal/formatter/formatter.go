package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lhaig/semant/internal/ast"
)

// Format renders a Program as canonical C-style source code
func Format(prog *ast.Program) string {
	f := &formatter{}
	f.formatProgram(prog)
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

// --- helpers ---

func (f *formatter) emit(s string) {
	f.sb.WriteString(s)
}

func (f *formatter) emitf(format string, args ...any) {
	f.sb.WriteString(fmt.Sprintf(format, args...))
}

func (f *formatter) emitLine(s string) {
	f.sb.WriteString(f.indentStr())
	f.sb.WriteString(s)
	f.sb.WriteString("\n")
}

func (f *formatter) emitLinef(format string, args ...any) {
	f.emitLine(fmt.Sprintf(format, args...))
}

func (f *formatter) incIndent() { f.indent++ }
func (f *formatter) decIndent() { f.indent-- }

func (f *formatter) indentStr() string {
	return strings.Repeat("    ", f.indent)
}

// --- declarations ---

// formatProgram keeps source order; consecutive globals are grouped and
// every function is separated by a blank line
func (f *formatter) formatProgram(prog *ast.Program) {
	for i, d := range prog.Decls {
		switch d := d.(type) {
		case *ast.VariableDecl:
			if i > 0 {
				if _, prevVar := prog.Decls[i-1].(*ast.VariableDecl); !prevVar {
					f.emit("\n")
				}
			}
			f.emitLinef("%s %s;", d.Type, d.Name)
		case *ast.FunctionDecl:
			if i > 0 {
				f.emit("\n")
			}
			f.formatFunctionDecl(d)
		}
	}
}

func (f *formatter) formatFunctionDecl(fn *ast.FunctionDecl) {
	f.emit(f.indentStr())
	f.emitf("%s %s(", fn.ReturnType, fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			f.emit(", ")
		}
		f.emitf("%s %s", p.Type, p.Name)
	}
	f.emit(") {\n")

	f.incIndent()
	f.formatBlockBody(fn.Body)
	f.decIndent()
	f.emitLine("}")
}

// --- statements ---

func (f *formatter) formatBlockBody(b *ast.Block) {
	if b == nil {
		return
	}
	for _, v := range b.Vars {
		f.emitLinef("%s %s;", v.Type, v.Name)
	}
	for _, stmt := range b.Statements {
		f.formatStmt(stmt)
	}
}

// formatBraced emits "{", the body and "}" where the opening line has
// already been written up to the brace
func (f *formatter) formatBraced(b *ast.Block) {
	f.emit("{\n")
	f.incIndent()
	f.formatBlockBody(b)
	f.decIndent()
	f.emit(f.indentStr() + "}")
}

func (f *formatter) formatStmt(s ast.Statement) {
	switch stmt := s.(type) {
	case *ast.Block:
		f.emit(f.indentStr())
		f.formatBraced(stmt)
		f.emit("\n")

	case *ast.IfStmt:
		f.emit(f.indentStr())
		f.emitf("if (%s) ", f.formatExpr(stmt.Condition))
		f.formatBraced(stmt.Then)
		if stmt.Else != nil {
			f.emit(" else ")
			f.formatBraced(stmt.Else)
		}
		f.emit("\n")

	case *ast.WhileStmt:
		f.emit(f.indentStr())
		f.emitf("while (%s) ", f.formatExpr(stmt.Condition))
		f.formatBraced(stmt.Body)
		f.emit("\n")

	case *ast.ForStmt:
		f.emit(f.indentStr())
		f.emitf("for (%s; %s; %s) ", f.formatExpr(stmt.Init), f.formatExpr(stmt.Condition), f.formatExpr(stmt.Step))
		f.formatBraced(stmt.Body)
		f.emit("\n")

	case *ast.ReturnStmt:
		if value := f.formatExpr(stmt.Value); value != "" {
			f.emitLinef("return %s;", value)
		} else {
			f.emitLine("return;")
		}

	case *ast.BreakStmt:
		f.emitLine("break;")

	case *ast.ContinueStmt:
		f.emitLine("continue;")

	case *ast.ExprStmt:
		f.emitLinef("%s;", f.formatExpr(stmt.Expr))
	}
}

// --- expressions ---

func (f *formatter) formatExpr(e ast.Expression) string {
	return f.formatExprPrec(e, 0)
}

// formatExprPrec formats an expression, wrapping in parens if needed based on parent precedence.
func (f *formatter) formatExprPrec(e ast.Expression, parentPrec int) string {
	switch expr := e.(type) {
	case *ast.BinaryExpr:
		prec := precedence(expr.Op)
		left := f.formatExprPrec(expr.Left, prec)
		right := f.formatExprPrec(expr.Right, prec+1) // +1 for left-associativity
		result := fmt.Sprintf("%s %s %s", left, expr.Op, right)
		if prec < parentPrec {
			return "(" + result + ")"
		}
		return result

	case *ast.UnaryExpr:
		return expr.Op.String() + f.formatExprPrec(expr.Operand, unaryPrec)

	case *ast.AssignExpr:
		result := fmt.Sprintf("%s = %s", expr.Name, f.formatExprPrec(expr.Value, assignPrec))
		if parentPrec > assignPrec {
			return "(" + result + ")"
		}
		return result

	case *ast.CallExpr:
		args := make([]string, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = f.formatExpr(arg)
		}
		return fmt.Sprintf("%s(%s)", expr.Function, strings.Join(args, ", "))

	case *ast.Identifier:
		return expr.Name.String()

	case *ast.IntLit:
		return strconv.FormatInt(expr.Value, 10)

	case *ast.FloatLit:
		s := strconv.FormatFloat(expr.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s

	case *ast.StringLit:
		return strconv.Quote(expr.Value)

	case *ast.BoolLit:
		if expr.Value {
			return "true"
		}
		return "false"

	case *ast.NoExpr:
		return ""

	default:
		return "<unknown>"
	}
}

// --- operator precedence ---

const (
	assignPrec = 1
	unaryPrec  = 12
)

// Precedence levels (higher binds tighter), following C:
//
//	2: ||
//	3: &&
//	4: |
//	5: ^
//	6: &
//	7: == !=
//	8: < > <= >=
//	9: + -
//	10: * / %
func precedence(op ast.Op) int {
	switch op {
	case ast.OpOr:
		return 2
	case ast.OpAnd:
		return 3
	case ast.OpBitOr:
		return 4
	case ast.OpXor:
		return 5
	case ast.OpBitAnd:
		return 6
	case ast.OpEq, ast.OpNe:
		return 7
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		return 8
	case ast.OpAdd, ast.OpSub:
		return 9
	case ast.OpMul, ast.OpDiv, ast.OpMod:
		return 10
	default:
		return 0
	}
}
