package checker

import (
	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/diagnostic"
	"github.com/lhaig/semant/internal/idtable"
)

// checkStmt checks one statement against the enclosing function's return type.
// loopBody is true only for the immediate statements of a while or for body;
// it is the one place break and continue are legal.
func (c *Checker) checkStmt(stmt ast.Statement, ret idtable.Symbol, loopBody bool) {
	switch s := stmt.(type) {
	case *ast.Block:
		c.checkBlock(s, ret, false)
	case *ast.IfStmt:
		c.checkIfStmt(s, ret)
	case *ast.WhileStmt:
		c.checkWhileStmt(s, ret)
	case *ast.ForStmt:
		c.checkForStmt(s, ret)
	case *ast.ReturnStmt:
		c.checkReturnStmt(s, ret)
	case *ast.BreakStmt:
		if !loopBody {
			c.diag.Errorf(diagnostic.ControlFlowMisplacement, s.Line, "break must be used inside a loop")
		}
	case *ast.ContinueStmt:
		if !loopBody {
			c.diag.Errorf(diagnostic.ControlFlowMisplacement, s.Line, "continue must be used inside a loop")
		}
	case *ast.ExprStmt:
		c.checkExpr(s.Expr)
	default:
		if stmt == nil {
			c.fatalf(0, "missing statement")
		}
		c.fatalf(stmt.Pos(), "unknown statement %T", stmt)
	}
}

// checkBlock checks a block in its own scope
func (c *Checker) checkBlock(block *ast.Block, ret idtable.Symbol, loopBody bool) {
	release := c.env.EnterScope()
	defer release()

	for _, v := range block.Vars {
		c.declareVar(v, "variable")
	}
	for _, stmt := range block.Statements {
		c.checkStmt(stmt, ret, loopBody)
	}
}

// checkCondition requires cond to be Bool; what names the statement in messages
func (c *Checker) checkCondition(cond ast.Expression, what string, line int) {
	if t := c.checkExpr(cond); t != c.names.Bool {
		c.diag.Errorf(diagnostic.TypeMismatch, line, "%s condition must be Bool, got %s", what, t)
	}
}

// checkIfStmt checks an if statement
func (c *Checker) checkIfStmt(stmt *ast.IfStmt, ret idtable.Symbol) {
	c.checkCondition(stmt.Condition, "if", stmt.Line)

	if stmt.Then != nil {
		c.checkBlock(stmt.Then, ret, false)
	}
	if stmt.Else != nil {
		c.checkBlock(stmt.Else, ret, false)
	}
}

// checkWhileStmt checks a while statement
func (c *Checker) checkWhileStmt(stmt *ast.WhileStmt, ret idtable.Symbol) {
	c.checkCondition(stmt.Condition, "while", stmt.Line)

	if stmt.Body != nil {
		c.checkBlock(stmt.Body, ret, true)
	}
}

// checkForStmt checks a for statement; omitted clauses are empty expressions
func (c *Checker) checkForStmt(stmt *ast.ForStmt, ret idtable.Symbol) {
	c.checkExpr(stmt.Init)
	c.checkExpr(stmt.Condition)
	c.checkExpr(stmt.Step)

	if stmt.Body != nil {
		c.checkBlock(stmt.Body, ret, true)
	}
}

// checkReturnStmt requires the returned type to be exactly ret
func (c *Checker) checkReturnStmt(stmt *ast.ReturnStmt, ret idtable.Symbol) {
	if t := c.checkExpr(stmt.Value); t != ret {
		c.diag.Errorf(diagnostic.TypeMismatch, stmt.Line, "returns %s, but function expects %s", t, ret)
	}
}
