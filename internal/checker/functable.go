package checker

import (
	"fmt"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/idtable"
)

// FunctionTable is the flat registry of function signatures.
// It is filled once during installation and sealed before any body is checked.
type FunctionTable struct {
	entries map[idtable.Symbol]*ast.FunctionDecl
	order   []*ast.FunctionDecl
	sealed  bool
}

// NewFunctionTable creates an empty, writable table
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{
		entries: make(map[idtable.Symbol]*ast.FunctionDecl),
	}
}

// Define registers fn. It returns false if the name is already present.
func (ft *FunctionTable) Define(fn *ast.FunctionDecl) bool {
	if ft.sealed {
		panic(&InternalError{Line: fn.Line, Msg: fmt.Sprintf("function table is sealed; cannot define '%s'", fn.Name)})
	}
	if _, exists := ft.entries[fn.Name]; exists {
		return false
	}
	ft.entries[fn.Name] = fn
	ft.order = append(ft.order, fn)
	return true
}

// Seal makes the table read-only
func (ft *FunctionTable) Seal() {
	ft.sealed = true
}

// Lookup returns the declaration registered under name
func (ft *FunctionTable) Lookup(name idtable.Symbol) (*ast.FunctionDecl, bool) {
	fn, ok := ft.entries[name]
	return fn, ok
}

// Len returns the number of registered functions
func (ft *FunctionTable) Len() int {
	return len(ft.order)
}

// All returns the registered functions in installation order
func (ft *FunctionTable) All() []*ast.FunctionDecl {
	return ft.order
}
