package ast

// Op identifies a binary or unary operator
type Op int

const (
	OpInvalid Op = iota

	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	// Relational
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe

	// Logical
	OpAnd
	OpOr
	OpXor

	// Bitwise
	OpBitAnd
	OpBitOr

	// Unary only
	OpNeg
	OpNot
	OpBitNot
)

var opSpellings = map[Op]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpEq:     "==",
	OpNe:     "!=",
	OpAnd:    "&&",
	OpOr:     "||",
	OpXor:    "^",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpNeg:    "-",
	OpNot:    "!",
	OpBitNot: "~",
}

// String returns the source spelling of the operator
func (o Op) String() string {
	if s, ok := opSpellings[o]; ok {
		return s
	}
	return "?"
}

// IsUnary reports whether o is a prefix operator
func (o Op) IsUnary() bool {
	return o == OpNeg || o == OpNot || o == OpBitNot
}

// BinaryOp maps a source spelling to a binary operator
func BinaryOp(s string) (Op, bool) {
	for op, spelling := range opSpellings {
		if spelling == s && !op.IsUnary() {
			return op, true
		}
	}
	return OpInvalid, false
}

// UnaryOp maps a source spelling to a unary operator
func UnaryOp(s string) (Op, bool) {
	switch s {
	case "-":
		return OpNeg, true
	case "!":
		return OpNot, true
	case "~":
		return OpBitNot, true
	}
	return OpInvalid, false
}
