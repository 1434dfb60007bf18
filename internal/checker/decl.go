package checker

import (
	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/diagnostic"
	"github.com/lhaig/semant/internal/idtable"
)

// declared reports whether name would collide with an existing binding
func (c *Checker) declared(name idtable.Symbol) bool {
	if c.opts.AllowShadowing {
		_, ok := c.env.Probe(name)
		return ok
	}
	_, ok := c.env.Lookup(name)
	return ok
}

// checkVarType rejects Void and non-primitive variable types.
// kind names the declaration in messages ("variable", "parameter").
func (c *Checker) checkVarType(v *ast.VariableDecl, kind string) {
	switch {
	case v.Type == c.names.Void:
		c.diag.Errorf(diagnostic.InvalidType, v.Line, "%s '%s' cannot have type Void", kind, v.Name)
	case !c.names.IsPrimitive(v.Type):
		c.diag.Errorf(diagnostic.InvalidType, v.Line, "%s '%s' has unknown type '%s'", kind, v.Name, v.Type)
	}
}

// declareVar checks v and binds it in the innermost scope unless it is a duplicate
func (c *Checker) declareVar(v *ast.VariableDecl, kind string) {
	c.checkVarType(v, kind)
	if c.declared(v.Name) {
		c.diag.Errorf(diagnostic.DuplicateDeclaration, v.Line, "%s '%s' multiply defined", kind, v.Name)
		return
	}
	c.env.Add(v.Name, v.Type)
}

// checkFunction checks a function signature and body in a new scope
func (c *Checker) checkFunction(fn *ast.FunctionDecl) {
	if !c.names.IsPrimitive(fn.ReturnType) {
		c.diag.Errorf(diagnostic.InvalidType, fn.Line, "function '%s' cannot have return type '%s'", fn.Name, fn.ReturnType)
	}

	release := c.env.EnterScope()
	defer release()

	for _, p := range fn.Params {
		c.declareVar(p, "parameter")
	}

	body := fn.Body
	if body == nil {
		body = &ast.Block{Line: fn.Line}
	}
	for _, v := range body.Vars {
		c.declareVar(v, "variable")
	}

	returns := 0
	var last ast.Statement
	for _, stmt := range body.Statements {
		last = stmt
		if _, ok := stmt.(*ast.ReturnStmt); ok {
			returns++
		}
		c.checkStmt(stmt, fn.ReturnType, false)
	}

	if returns == 0 {
		line := fn.Line
		if last != nil {
			line = last.Pos()
		}
		c.diag.Errorf(diagnostic.StructuralViolation, line, "function '%s' must have a top-level return statement", fn.Name)
	}

	if len(fn.Params) > c.opts.MaxParams {
		c.diag.Errorf(diagnostic.StructuralViolation, fn.Line, "function '%s' has %d parameters; at most %d are allowed",
			fn.Name, len(fn.Params), c.opts.MaxParams)
	}
}
