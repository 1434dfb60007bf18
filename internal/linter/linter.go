package linter

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/idtable"
)

// Warning is a style or best-practice finding. Warnings never halt compilation.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%d: warning: %s", w.Line, w.Message)
}

// Linter performs style and best-practice checks on a program.
// Names are matched by symbol without regard to scope.
type Linter struct {
	prog     *ast.Program
	warnings []Warning
}

// Lint runs all lint rules on the given program
func Lint(prog *ast.Program) []Warning {
	l := &Linter{prog: prog}

	l.lintGlobals()
	l.lintFunctions()

	return l.warnings
}

func (l *Linter) warnf(line int, format string, args ...interface{}) {
	l.warnings = append(l.warnings, Warning{Line: line, Message: fmt.Sprintf(format, args...)})
}

// lintGlobals checks globals against reads anywhere in the program
func (l *Linter) lintGlobals() {
	used := make(map[idtable.Symbol]bool)
	assigned := make(map[idtable.Symbol]bool)
	for _, fn := range l.prog.Functions() {
		if fn.Body != nil {
			collectUsedNames(fn.Body, used)
			collectAssignedNames(fn.Body, assigned)
		}
	}

	for _, v := range l.prog.Globals() {
		l.checkNaming("variable", v.Name, v.Line)
		switch {
		case !used[v.Name]:
			l.warnf(v.Line, "global '%s' is declared but never used", v.Name)
		case !assigned[v.Name]:
			l.warnf(v.Line, "global '%s' is used but never assigned", v.Name)
		}
	}
}

// lintFunctions checks all functions
func (l *Linter) lintFunctions() {
	for _, fn := range l.prog.Functions() {
		l.checkNaming("function", fn.Name, fn.Line)
		if fn.Body == nil {
			continue
		}

		used := make(map[idtable.Symbol]bool)
		collectUsedNames(fn.Body, used)
		assigned := make(map[idtable.Symbol]bool)
		collectAssignedNames(fn.Body, assigned)

		for _, p := range fn.Params {
			l.checkNaming("parameter", p.Name, p.Line)
			if !used[p.Name] {
				l.warnf(p.Line, "parameter '%s' in '%s' is never used", p.Name, fn.Name)
			}
		}
		l.checkLocals(fn.Body, used, assigned)
		l.checkUnreachable(fn.Body)
	}
}

// checkLocals walks block and every nested block for unused or unassigned locals
func (l *Linter) checkLocals(block *ast.Block, used, assigned map[idtable.Symbol]bool) {
	for _, v := range block.Vars {
		l.checkNaming("variable", v.Name, v.Line)
		switch {
		case !used[v.Name]:
			l.warnf(v.Line, "variable '%s' is declared but never used", v.Name)
		case !assigned[v.Name]:
			l.warnf(v.Line, "variable '%s' is used but never assigned", v.Name)
		}
	}
	for _, b := range nestedBlocks(block) {
		l.checkLocals(b, used, assigned)
	}
}

// checkUnreachable warns about statements following a return, break or
// continue in the same block
func (l *Linter) checkUnreachable(block *ast.Block) {
	for i, stmt := range block.Statements[:max(len(block.Statements)-1, 0)] {
		if isTerminator(stmt) {
			l.warnf(block.Statements[i+1].Pos(), "unreachable statement")
			break
		}
	}
	for _, b := range nestedBlocks(block) {
		l.checkUnreachable(b)
	}
}

func isTerminator(stmt ast.Statement) bool {
	switch stmt.(type) {
	case *ast.ReturnStmt, *ast.BreakStmt, *ast.ContinueStmt:
		return true
	}
	return false
}

// checkNaming warns if a name starts with an uppercase letter, which is
// reserved for type names
func (l *Linter) checkNaming(what string, name idtable.Symbol, line int) {
	r, _ := utf8.DecodeRuneInString(name.String())
	if unicode.IsUpper(r) {
		l.warnf(line, "%s '%s' should start with a lowercase letter", what, name)
	}
}

// --- Tree helpers ---

// nestedBlocks returns the blocks directly nested in block's statements
func nestedBlocks(block *ast.Block) []*ast.Block {
	var blocks []*ast.Block
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.Block:
			blocks = append(blocks, s)
		case *ast.IfStmt:
			if s.Then != nil {
				blocks = append(blocks, s.Then)
			}
			if s.Else != nil {
				blocks = append(blocks, s.Else)
			}
		case *ast.WhileStmt:
			if s.Body != nil {
				blocks = append(blocks, s.Body)
			}
		case *ast.ForStmt:
			if s.Body != nil {
				blocks = append(blocks, s.Body)
			}
		}
	}
	return blocks
}

// collectUsedNames records every identifier read in block
func collectUsedNames(block *ast.Block, used map[idtable.Symbol]bool) {
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.IfStmt:
			collectUsedNamesFromExpr(s.Condition, used)
		case *ast.WhileStmt:
			collectUsedNamesFromExpr(s.Condition, used)
		case *ast.ForStmt:
			collectUsedNamesFromExpr(s.Init, used)
			collectUsedNamesFromExpr(s.Condition, used)
			collectUsedNamesFromExpr(s.Step, used)
		case *ast.ReturnStmt:
			collectUsedNamesFromExpr(s.Value, used)
		case *ast.ExprStmt:
			collectUsedNamesFromExpr(s.Expr, used)
		}
	}
	for _, b := range nestedBlocks(block) {
		collectUsedNames(b, used)
	}
}

func collectUsedNamesFromExpr(expr ast.Expression, used map[idtable.Symbol]bool) {
	switch e := expr.(type) {
	case *ast.Identifier:
		used[e.Name] = true
	case *ast.AssignExpr:
		// the target is a write
		collectUsedNamesFromExpr(e.Value, used)
	case *ast.BinaryExpr:
		collectUsedNamesFromExpr(e.Left, used)
		collectUsedNamesFromExpr(e.Right, used)
	case *ast.UnaryExpr:
		collectUsedNamesFromExpr(e.Operand, used)
	case *ast.CallExpr:
		for _, arg := range e.Args {
			collectUsedNamesFromExpr(arg, used)
		}
	}
}

// collectAssignedNames records every assignment target in block
func collectAssignedNames(block *ast.Block, assigned map[idtable.Symbol]bool) {
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.IfStmt:
			collectAssignedNamesFromExpr(s.Condition, assigned)
		case *ast.WhileStmt:
			collectAssignedNamesFromExpr(s.Condition, assigned)
		case *ast.ForStmt:
			collectAssignedNamesFromExpr(s.Init, assigned)
			collectAssignedNamesFromExpr(s.Condition, assigned)
			collectAssignedNamesFromExpr(s.Step, assigned)
		case *ast.ReturnStmt:
			collectAssignedNamesFromExpr(s.Value, assigned)
		case *ast.ExprStmt:
			collectAssignedNamesFromExpr(s.Expr, assigned)
		}
	}
	for _, b := range nestedBlocks(block) {
		collectAssignedNames(b, assigned)
	}
}

func collectAssignedNamesFromExpr(expr ast.Expression, assigned map[idtable.Symbol]bool) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		assigned[e.Name] = true
		collectAssignedNamesFromExpr(e.Value, assigned)
	case *ast.BinaryExpr:
		collectAssignedNamesFromExpr(e.Left, assigned)
		collectAssignedNamesFromExpr(e.Right, assigned)
	case *ast.UnaryExpr:
		collectAssignedNamesFromExpr(e.Operand, assigned)
	case *ast.CallExpr:
		for _, arg := range e.Args {
			collectAssignedNamesFromExpr(arg, assigned)
		}
	}
}
