package loader

import (
	"fmt"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/idtable"
)

// DocumentError reports a malformed node in an AST document
type DocumentError struct {
	Line int
	Msg  string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type builder struct {
	table *idtable.Table
}

func errorf(line int, format string, args ...interface{}) error {
	return &DocumentError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (b *builder) name(s string, line int, what string) (idtable.Symbol, error) {
	if s == "" {
		return idtable.Symbol{}, errorf(line, "%s is missing a name", what)
	}
	return b.table.Add(s), nil
}

func (b *builder) program(doc *document) (*ast.Program, error) {
	prog := &ast.Program{Decls: make([]ast.Decl, 0, len(doc.Decls))}
	for i := range doc.Decls {
		d := &doc.Decls[i]
		switch {
		case d.Var != nil && d.Func != nil:
			return nil, errorf(d.Var.Line, "declaration %d is both var and func", i+1)
		case d.Var != nil:
			v, err := b.variable(d.Var, "variable")
			if err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, v)
		case d.Func != nil:
			fn, err := b.function(d.Func)
			if err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, fn)
		default:
			return nil, errorf(0, "declaration %d has neither var nor func", i+1)
		}
	}
	return prog, nil
}

func (b *builder) variable(doc *varDoc, what string) (*ast.VariableDecl, error) {
	name, err := b.name(doc.Name, doc.Line, what)
	if err != nil {
		return nil, err
	}
	if doc.Type == "" {
		return nil, errorf(doc.Line, "%s '%s' is missing a type", what, doc.Name)
	}
	return &ast.VariableDecl{
		Name: name,
		Type: b.table.Add(doc.Type),
		Line: doc.Line,
	}, nil
}

func (b *builder) function(doc *funcDoc) (*ast.FunctionDecl, error) {
	name, err := b.name(doc.Name, doc.Line, "function")
	if err != nil {
		return nil, err
	}
	if doc.Type == "" {
		return nil, errorf(doc.Line, "function '%s' is missing a return type", doc.Name)
	}

	fn := &ast.FunctionDecl{
		Name:       name,
		ReturnType: b.table.Add(doc.Type),
		Line:       doc.Line,
	}
	for i := range doc.Params {
		p, err := b.variable(&doc.Params[i], "parameter")
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, p)
	}

	fn.Body, err = b.block(doc.Body, doc.Line)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// block converts doc, returning an empty block at line when doc is nil
func (b *builder) block(doc *blockDoc, line int) (*ast.Block, error) {
	if doc == nil {
		return &ast.Block{Line: line}, nil
	}
	if doc.Line != 0 {
		line = doc.Line
	}

	block := &ast.Block{Line: line}
	for i := range doc.Vars {
		v, err := b.variable(&doc.Vars[i], "variable")
		if err != nil {
			return nil, err
		}
		block.Vars = append(block.Vars, v)
	}
	for i := range doc.Stmts {
		stmt, err := b.statement(&doc.Stmts[i], line)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func (b *builder) statement(doc *stmtDoc, parentLine int) (ast.Statement, error) {
	line := doc.Line
	if line == 0 {
		line = parentLine
	}

	kinds := 0
	for _, set := range []bool{
		doc.Block != nil, doc.If != nil, doc.While != nil, doc.For != nil,
		doc.Return != nil, doc.Break, doc.Continue, doc.Expr != nil,
	} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, errorf(line, "statement must have exactly one kind, got %d", kinds)
	}

	switch {
	case doc.Block != nil:
		return b.block(doc.Block, line)

	case doc.If != nil:
		cond, err := b.requiredExpr(doc.If.Cond, line, "if condition")
		if err != nil {
			return nil, err
		}
		then, err := b.block(doc.If.Then, line)
		if err != nil {
			return nil, err
		}
		stmt := &ast.IfStmt{Condition: cond, Then: then, Line: line}
		if doc.If.Else != nil {
			if stmt.Else, err = b.block(doc.If.Else, line); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case doc.While != nil:
		cond, err := b.requiredExpr(doc.While.Cond, line, "while condition")
		if err != nil {
			return nil, err
		}
		body, err := b.block(doc.While.Body, line)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Condition: cond, Body: body, Line: line}, nil

	case doc.For != nil:
		stmt := &ast.ForStmt{Line: line}
		var err error
		if stmt.Init, err = b.optionalExpr(doc.For.Init, line); err != nil {
			return nil, err
		}
		if stmt.Condition, err = b.optionalExpr(doc.For.Cond, line); err != nil {
			return nil, err
		}
		if stmt.Step, err = b.optionalExpr(doc.For.Step, line); err != nil {
			return nil, err
		}
		if stmt.Body, err = b.block(doc.For.Body, line); err != nil {
			return nil, err
		}
		return stmt, nil

	case doc.Return != nil:
		value, err := b.optionalExpr(doc.Return.Value, line)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value, Line: line}, nil

	case doc.Break:
		return &ast.BreakStmt{Line: line}, nil

	case doc.Continue:
		return &ast.ContinueStmt{Line: line}, nil

	default:
		expr, err := b.expression(doc.Expr, line)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr, Line: line}, nil
	}
}

func (b *builder) requiredExpr(doc *exprDoc, line int, what string) (ast.Expression, error) {
	if doc == nil {
		return nil, errorf(line, "%s is missing", what)
	}
	return b.expression(doc, line)
}

// optionalExpr converts doc, returning the empty expression when doc is nil
func (b *builder) optionalExpr(doc *exprDoc, line int) (ast.Expression, error) {
	if doc == nil {
		return ast.NewNoExpr(line), nil
	}
	return b.expression(doc, line)
}

func (b *builder) expression(doc *exprDoc, parentLine int) (ast.Expression, error) {
	line := doc.Line
	if line == 0 {
		line = parentLine
	}

	kinds := 0
	for _, set := range []bool{
		doc.Int != nil, doc.Float != nil, doc.String != nil, doc.Bool != nil,
		doc.ID != "", doc.Assign != nil, doc.Binary != nil, doc.Unary != nil,
		doc.Call != nil, doc.Empty,
	} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, errorf(line, "expression must have exactly one kind, got %d", kinds)
	}

	switch {
	case doc.Int != nil:
		return &ast.IntLit{Value: *doc.Int, Line: line}, nil
	case doc.Float != nil:
		return &ast.FloatLit{Value: *doc.Float, Line: line}, nil
	case doc.String != nil:
		return &ast.StringLit{Value: *doc.String, Line: line}, nil
	case doc.Bool != nil:
		return &ast.BoolLit{Value: *doc.Bool, Line: line}, nil
	case doc.ID != "":
		return &ast.Identifier{Name: b.table.Add(doc.ID), Line: line}, nil
	case doc.Empty:
		return ast.NewNoExpr(line), nil

	case doc.Assign != nil:
		name, err := b.name(doc.Assign.Name, line, "assignment")
		if err != nil {
			return nil, err
		}
		value, err := b.requiredExpr(doc.Assign.Value, line, "assigned value")
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: name, Value: value, Line: line}, nil

	case doc.Binary != nil:
		op, ok := ast.BinaryOp(doc.Binary.Op)
		if !ok {
			return nil, errorf(line, "unknown binary operator %q", doc.Binary.Op)
		}
		left, err := b.requiredExpr(doc.Binary.Left, line, "left operand")
		if err != nil {
			return nil, err
		}
		right, err := b.requiredExpr(doc.Binary.Right, line, "right operand")
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: right, Line: line}, nil

	case doc.Unary != nil:
		op, ok := ast.UnaryOp(doc.Unary.Op)
		if !ok {
			return nil, errorf(line, "unknown unary operator %q", doc.Unary.Op)
		}
		operand, err := b.requiredExpr(doc.Unary.Operand, line, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand, Line: line}, nil

	default:
		name, err := b.name(doc.Call.Name, line, "call")
		if err != nil {
			return nil, err
		}
		call := &ast.CallExpr{Function: name, Line: line}
		for i, arg := range doc.Call.Args {
			a, err := b.requiredExpr(arg, line, fmt.Sprintf("argument %d", i+1))
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, a)
		}
		return call, nil
	}
}
