package ast

import "github.com/lhaig/semant/internal/idtable"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() int
}

// Decl nodes
type Decl interface {
	Node
	declNode()
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes carry a resolved-type slot written by the checker
type Expression interface {
	Node
	exprNode()
	Type() idtable.Symbol
	SetType(idtable.Symbol)
}

// Program is the ordered list of top-level declarations
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() int {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return 0
}

// Functions returns the function declarations in source order
func (p *Program) Functions() []*FunctionDecl {
	var fns []*FunctionDecl
	for _, d := range p.Decls {
		if fn, ok := d.(*FunctionDecl); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// Globals returns the global variable declarations in source order
func (p *Program) Globals() []*VariableDecl {
	var vars []*VariableDecl
	for _, d := range p.Decls {
		if v, ok := d.(*VariableDecl); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// VariableDecl declares a global, a local, or (inside Params) a formal parameter
type VariableDecl struct {
	Name idtable.Symbol
	Type idtable.Symbol
	Line int
}

func (v *VariableDecl) Pos() int { return v.Line }
func (v *VariableDecl) declNode() {}

// FunctionDecl represents a function declaration
type FunctionDecl struct {
	Name       idtable.Symbol
	ReturnType idtable.Symbol
	Params     []*VariableDecl
	Body       *Block
	Line       int
}

func (f *FunctionDecl) Pos() int { return f.Line }
func (f *FunctionDecl) declNode() {}

// Block is a list of local declarations followed by statements
type Block struct {
	Vars       []*VariableDecl
	Statements []Statement
	Line       int
}

func (b *Block) Pos() int  { return b.Line }
func (b *Block) stmtNode() {}

// IfStmt represents an if statement; Else is nil when absent
type IfStmt struct {
	Condition Expression
	Then      *Block
	Else      *Block
	Line      int
}

func (i *IfStmt) Pos() int  { return i.Line }
func (i *IfStmt) stmtNode() {}

// WhileStmt represents a while loop
type WhileStmt struct {
	Condition Expression
	Body      *Block
	Line      int
}

func (w *WhileStmt) Pos() int  { return w.Line }
func (w *WhileStmt) stmtNode() {}

// ForStmt represents a C-style for loop.
// Omitted clauses hold a *NoExpr.
type ForStmt struct {
	Init      Expression
	Condition Expression
	Step      Expression
	Body      *Block
	Line      int
}

func (f *ForStmt) Pos() int  { return f.Line }
func (f *ForStmt) stmtNode() {}

// ReturnStmt represents a return statement; a bare return holds a *NoExpr
type ReturnStmt struct {
	Value Expression
	Line  int
}

func (r *ReturnStmt) Pos() int  { return r.Line }
func (r *ReturnStmt) stmtNode() {}

// BreakStmt represents a break statement
type BreakStmt struct {
	Line int
}

func (b *BreakStmt) Pos() int  { return b.Line }
func (b *BreakStmt) stmtNode() {}

// ContinueStmt represents a continue statement
type ContinueStmt struct {
	Line int
}

func (c *ContinueStmt) Pos() int  { return c.Line }
func (c *ContinueStmt) stmtNode() {}

// ExprStmt is an expression evaluated for its effect
type ExprStmt struct {
	Expr Expression
	Line int
}

func (e *ExprStmt) Pos() int  { return e.Line }
func (e *ExprStmt) stmtNode() {}

// typed is the resolved-type slot shared by every expression
type typed struct {
	resolved idtable.Symbol
}

func (t *typed) exprNode() {}

// Type returns the type written by the checker, or the zero Symbol before checking
func (t *typed) Type() idtable.Symbol { return t.resolved }

// SetType records the resolved type
func (t *typed) SetType(s idtable.Symbol) { t.resolved = s }

// IntLit represents an integer literal
type IntLit struct {
	typed
	Value int64
	Line  int
}

func (i *IntLit) Pos() int { return i.Line }

// FloatLit represents a floating-point literal
type FloatLit struct {
	typed
	Value float64
	Line  int
}

func (f *FloatLit) Pos() int { return f.Line }

// StringLit represents a string literal
type StringLit struct {
	typed
	Value string
	Line  int
}

func (s *StringLit) Pos() int { return s.Line }

// BoolLit represents a boolean literal
type BoolLit struct {
	typed
	Value bool
	Line  int
}

func (b *BoolLit) Pos() int { return b.Line }

// Identifier is a reference to a variable
type Identifier struct {
	typed
	Name idtable.Symbol
	Line int
}

func (i *Identifier) Pos() int { return i.Line }

// AssignExpr assigns Value to the variable Name
type AssignExpr struct {
	typed
	Name  idtable.Symbol
	Value Expression
	Line  int
}

func (a *AssignExpr) Pos() int { return a.Line }

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	typed
	Op    Op
	Left  Expression
	Right Expression
	Line  int
}

func (b *BinaryExpr) Pos() int { return b.Line }

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	typed
	Op      Op
	Operand Expression
	Line    int
}

func (u *UnaryExpr) Pos() int { return u.Line }

// CallExpr represents a function call
type CallExpr struct {
	typed
	Function idtable.Symbol
	Args     []Expression
	Line     int
}

func (c *CallExpr) Pos() int { return c.Line }

// NoExpr stands in for an omitted expression; it always resolves to Void
type NoExpr struct {
	typed
	Line int
}

func (n *NoExpr) Pos() int { return n.Line }

// NewNoExpr returns an empty expression at line
func NewNoExpr(line int) *NoExpr {
	return &NoExpr{Line: line}
}
