package checker

import (
	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/diagnostic"
	"github.com/lhaig/semant/internal/idtable"
)

// Options tune the analysis
type Options struct {
	// AllowShadowing makes duplicate checks consult only the innermost scope.
	// When false a name bound in any enclosing scope blocks redeclaration.
	AllowShadowing bool
	// GlobalsVisible keeps the global scope open while function bodies are checked
	GlobalsVisible bool
	// MaxParams is the largest parameter count a function may declare
	MaxParams int
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		AllowShadowing: false,
		GlobalsVisible: true,
		MaxParams:      6,
	}
}

// Checker holds the state of one analysis run
type Checker struct {
	prog  *ast.Program
	names idtable.Reserved
	env   *Environment
	funcs *FunctionTable
	diag  *diagnostic.Diagnostics
	opts  Options
}

// Result holds the outcome of a run for use by later pipeline stages
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Functions   *FunctionTable
}

// Check performs semantic analysis on prog, whose symbols were interned in table.
// Every expression in prog has its resolved type written on return.
// A non-nil error is always an *InternalError; user errors are diagnostics.
func Check(prog *ast.Program, table *idtable.Table, opts Options) (res *Result, err error) {
	c := &Checker{
		prog:  prog,
		names: idtable.Reserve(table),
		env:   NewEnvironment(),
		funcs: NewFunctionTable(),
		diag:  diagnostic.New(),
		opts:  opts,
	}

	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InternalError)
			if !ok {
				panic(r)
			}
			res, err = nil, ie
		}
	}()

	c.installFunctions()
	c.checkMain()

	releaseGlobals := c.installGlobals()
	c.checkDecls()
	releaseGlobals()

	if c.env.Depth() != 0 {
		c.fatalf(0, "%d scope(s) left open after analysis", c.env.Depth())
	}

	return &Result{
		Diagnostics: c.diag,
		Functions:   c.funcs,
	}, nil
}

// installFunctions registers every function signature before any body is checked
func (c *Checker) installFunctions() {
	for _, fn := range c.prog.Functions() {
		if _, exists := c.funcs.Lookup(fn.Name); exists {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, fn.Line, "function '%s' already defined", fn.Name)
			continue
		}
		if fn.Name == c.names.Printf {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, fn.Line, "function '%s' is builtin and cannot be redefined", fn.Name)
			continue
		}
		c.funcs.Define(fn)
	}
	c.funcs.Seal()
}

// checkMain validates the entry point signature
func (c *Checker) checkMain() {
	main, ok := c.funcs.Lookup(c.names.Main)
	if !ok {
		c.diag.Reportf(diagnostic.StructuralViolation, "function 'main' is not defined")
		return
	}

	if main.ReturnType != c.names.Void {
		c.diag.Errorf(diagnostic.StructuralViolation, main.Line, "function 'main' must return Void, not %s", main.ReturnType)
	}
	if len(main.Params) != 0 {
		c.diag.Errorf(diagnostic.StructuralViolation, main.Line, "function 'main' must take no parameters, got %d", len(main.Params))
	}
}

// installGlobals binds every global variable in a fresh outermost scope.
// The returned function closes that scope; with GlobalsVisible off the scope
// is already closed and the returned function does nothing.
func (c *Checker) installGlobals() (release func()) {
	release = c.env.EnterScope()
	for _, v := range c.prog.Globals() {
		if _, exists := c.env.Probe(v.Name); exists {
			c.diag.Errorf(diagnostic.DuplicateDeclaration, v.Line, "variable '%s' already defined", v.Name)
			continue
		}
		c.env.Add(v.Name, v.Type)
	}

	if !c.opts.GlobalsVisible {
		release()
		return func() {}
	}
	return release
}

// checkDecls walks every top-level declaration in source order
func (c *Checker) checkDecls() {
	for _, d := range c.prog.Decls {
		switch d := d.(type) {
		case *ast.VariableDecl:
			// duplicates were reported during installation
			c.checkVarType(d, "variable")
		case *ast.FunctionDecl:
			c.checkFunction(d)
		default:
			c.fatalf(d.Pos(), "unknown declaration %T", d)
		}
	}
}
