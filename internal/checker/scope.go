package checker

import (
	"fmt"

	"github.com/lhaig/semant/internal/idtable"
)

// Environment is a stack of scopes mapping variable names to their types
type Environment struct {
	scopes []map[idtable.Symbol]idtable.Symbol
}

// NewEnvironment creates an environment with no open scope
func NewEnvironment() *Environment {
	return &Environment{}
}

// EnterScope pushes an empty scope and returns the function that pops it.
// Releases must nest: releasing a scope that is not innermost is an internal error.
func (e *Environment) EnterScope() (release func()) {
	e.scopes = append(e.scopes, make(map[idtable.Symbol]idtable.Symbol))
	depth := len(e.scopes)
	return func() {
		if len(e.scopes) != depth {
			panic(&InternalError{Msg: fmt.Sprintf("scope released at depth %d, opened at depth %d", len(e.scopes), depth)})
		}
		e.ExitScope()
	}
}

// ExitScope pops and discards the innermost scope
func (e *Environment) ExitScope() {
	if len(e.scopes) == 0 {
		panic(&InternalError{Msg: "exit from empty scope stack"})
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Add binds name in the innermost scope, replacing any binding there.
// Callers check for duplicates first.
func (e *Environment) Add(name, typ idtable.Symbol) {
	if len(e.scopes) == 0 {
		panic(&InternalError{Msg: fmt.Sprintf("binding '%s' with no open scope", name)})
	}
	e.scopes[len(e.scopes)-1][name] = typ
}

// Lookup searches from the innermost scope outwards
func (e *Environment) Lookup(name idtable.Symbol) (idtable.Symbol, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if typ, ok := e.scopes[i][name]; ok {
			return typ, true
		}
	}
	return idtable.Symbol{}, false
}

// Probe looks up a name only in the innermost scope
func (e *Environment) Probe(name idtable.Symbol) (idtable.Symbol, bool) {
	if len(e.scopes) == 0 {
		return idtable.Symbol{}, false
	}
	typ, ok := e.scopes[len(e.scopes)-1][name]
	return typ, ok
}

// Depth returns the number of open scopes
func (e *Environment) Depth() int {
	return len(e.scopes)
}
