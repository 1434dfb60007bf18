package checker

import (
	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/diagnostic"
	"github.com/lhaig/semant/internal/idtable"
)

// checkExpr resolves the type of expr, records it on the node and returns it.
// Every rule yields a type, falling back to a recovery type after an error.
func (c *Checker) checkExpr(expr ast.Expression) idtable.Symbol {
	if expr == nil {
		c.fatalf(0, "missing expression")
	}
	t := c.exprType(expr)
	expr.SetType(t)
	return t
}

func (c *Checker) exprType(expr ast.Expression) idtable.Symbol {
	switch e := expr.(type) {
	case *ast.IntLit:
		return c.names.Int
	case *ast.FloatLit:
		return c.names.Float
	case *ast.StringLit:
		return c.names.String
	case *ast.BoolLit:
		return c.names.Bool
	case *ast.NoExpr:
		return c.names.Void
	case *ast.Identifier:
		return c.checkIdentifier(e)
	case *ast.AssignExpr:
		return c.checkAssignExpr(e)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(e)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(e)
	case *ast.CallExpr:
		return c.checkCallExpr(e)
	default:
		c.fatalf(expr.Pos(), "unknown expression %T", expr)
		return idtable.Symbol{}
	}
}

// checkIdentifier resolves a variable reference; undeclared names recover as Int
func (c *Checker) checkIdentifier(expr *ast.Identifier) idtable.Symbol {
	t, ok := c.env.Lookup(expr.Name)
	if !ok {
		c.diag.Errorf(diagnostic.UndeclaredIdentifier, expr.Line, "variable '%s' has not been declared", expr.Name)
		return c.names.Int
	}
	return t
}

// checkAssignExpr requires the assigned type to match the declared type exactly
func (c *Checker) checkAssignExpr(expr *ast.AssignExpr) idtable.Symbol {
	valueType := c.checkExpr(expr.Value)

	declared, ok := c.env.Lookup(expr.Name)
	if !ok {
		c.diag.Errorf(diagnostic.UndeclaredIdentifier, expr.Line, "assignment to undeclared variable '%s'", expr.Name)
		return valueType
	}
	if valueType != declared {
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, "cannot assign %s to variable '%s' of type %s", valueType, expr.Name, declared)
		return declared
	}
	return valueType
}

// checkBinaryExpr applies the per-operator typing rules
func (c *Checker) checkBinaryExpr(expr *ast.BinaryExpr) idtable.Symbol {
	left := c.checkExpr(expr.Left)
	right := c.checkExpr(expr.Right)
	n := c.names

	switch expr.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		if left == n.Bool || right == n.Bool {
			c.operatorError(expr.Line, expr.Op, "numbers of type Int or Float", left, right)
			return n.Int
		}
		if left == n.Float || right == n.Float {
			return n.Float
		}
		return n.Int

	case ast.OpMod:
		if left != n.Int || right != n.Int {
			c.operatorError(expr.Line, expr.Op, "Int operands", left, right)
		}
		return n.Int

	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if left == n.Bool || right == n.Bool {
			c.operatorError(expr.Line, expr.Op, "numbers of type Int or Float", left, right)
		}
		return n.Bool

	case ast.OpEq, ast.OpNe:
		if (left == n.Bool && n.IsNumeric(right)) || (n.IsNumeric(left) && right == n.Bool) {
			c.operatorError(expr.Line, expr.Op, "operands that are both Bool or both numeric", left, right)
		}
		return n.Bool

	case ast.OpAnd, ast.OpOr, ast.OpXor:
		if left != n.Bool || right != n.Bool {
			c.operatorError(expr.Line, expr.Op, "Bool operands", left, right)
		}
		return n.Bool

	case ast.OpBitAnd, ast.OpBitOr:
		if left != n.Int || right != n.Int {
			c.operatorError(expr.Line, expr.Op, "Int operands", left, right)
		}
		return n.Int

	default:
		c.fatalf(expr.Line, "unknown binary operator %s", expr.Op)
		return idtable.Symbol{}
	}
}

func (c *Checker) operatorError(line int, op ast.Op, want string, left, right idtable.Symbol) {
	c.diag.Errorf(diagnostic.OperatorTypeMismatch, line, "operator '%s' requires %s, got %s and %s", op, want, left, right)
}

// checkUnaryExpr applies the prefix operator rules
func (c *Checker) checkUnaryExpr(expr *ast.UnaryExpr) idtable.Symbol {
	operand := c.checkExpr(expr.Operand)
	n := c.names

	switch expr.Op {
	case ast.OpNeg:
		if n.IsNumeric(operand) {
			return operand
		}
		c.diag.Errorf(diagnostic.OperatorTypeMismatch, expr.Line, "unary '-' requires Int or Float, got %s", operand)
		return n.Int

	case ast.OpNot:
		if operand != n.Bool {
			c.diag.Errorf(diagnostic.OperatorTypeMismatch, expr.Line, "unary '!' requires Bool, got %s", operand)
		}
		return n.Bool

	case ast.OpBitNot:
		if operand != n.Int {
			c.diag.Errorf(diagnostic.OperatorTypeMismatch, expr.Line, "unary '~' requires Int, got %s", operand)
		}
		return n.Int

	default:
		c.fatalf(expr.Line, "unknown unary operator %s", expr.Op)
		return idtable.Symbol{}
	}
}

// checkCallExpr checks a call to printf or a user function.
// Arguments are always checked so every node gets a type.
func (c *Checker) checkCallExpr(expr *ast.CallExpr) idtable.Symbol {
	args := make([]idtable.Symbol, len(expr.Args))
	for i, arg := range expr.Args {
		args[i] = c.checkExpr(arg)
	}

	if expr.Function == c.names.Printf {
		return c.checkPrintf(expr, args)
	}

	fn, ok := c.funcs.Lookup(expr.Function)
	if !ok {
		c.diag.Errorf(diagnostic.UndeclaredIdentifier, expr.Line, "function '%s' has not been declared", expr.Function)
		return c.names.Int
	}

	for i := 0; i < min(len(args), len(fn.Params)); i++ {
		if want := fn.Params[i].Type; args[i] != want {
			c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, "argument %d of '%s' should be %s, got %s",
				i+1, expr.Function, want, args[i])
		}
	}
	if len(args) != len(fn.Params) {
		c.diag.Errorf(diagnostic.StructuralViolation, expr.Line, "function '%s' expects %d argument(s), got %d",
			expr.Function, len(fn.Params), len(args))
	}

	return fn.ReturnType
}

// checkPrintf checks the variadic builtin: a String format followed by anything
func (c *Checker) checkPrintf(expr *ast.CallExpr, args []idtable.Symbol) idtable.Symbol {
	switch {
	case len(args) == 0:
		c.diag.Errorf(diagnostic.StructuralViolation, expr.Line, "function 'printf' requires at least one argument")
	case args[0] != c.names.String:
		c.diag.Errorf(diagnostic.TypeMismatch, expr.Line, "first argument of 'printf' must be String, got %s", args[0])
	}
	return c.names.Void
}
