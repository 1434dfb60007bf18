package diagnostic

import (
	"fmt"
	"strings"
)

// Kind classifies a semantic error
type Kind int

const (
	DuplicateDeclaration Kind = iota
	InvalidType
	UndeclaredIdentifier
	TypeMismatch
	OperatorTypeMismatch
	StructuralViolation
	ControlFlowMisplacement
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case DuplicateDeclaration:
		return "duplicate-declaration"
	case InvalidType:
		return "invalid-type"
	case UndeclaredIdentifier:
		return "undeclared-identifier"
	case TypeMismatch:
		return "type-mismatch"
	case OperatorTypeMismatch:
		return "operator-type-mismatch"
	case StructuralViolation:
		return "structural-violation"
	case ControlFlowMisplacement:
		return "control-flow-misplacement"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single semantic error.
// Line is zero when the error has no associated node.
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
}

// String renders the diagnostic as "<line>: <message>", or just the message without a line
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("%d: %s", d.Line, d.Message)
}

// Diagnostics is an append-only, ordered collection of diagnostics
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Errorf adds a line-tagged diagnostic with formatted message
func (d *Diagnostics) Errorf(kind Kind, line int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	})
}

// Reportf adds a diagnostic that has no source line
func (d *Diagnostics) Reportf(kind Kind, format string, args ...interface{}) {
	d.Errorf(kind, 0, format, args...)
}

// HasErrors returns true if any diagnostic has been recorded
func (d *Diagnostics) HasErrors() bool {
	return len(d.items) > 0
}

// All returns all diagnostics in the order they were recorded
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// CountKind returns the number of diagnostics of the given kind
func (d *Diagnostics) CountKind(kind Kind) int {
	count := 0
	for _, item := range d.items {
		if item.Kind == kind {
			count++
		}
	}
	return count
}

// Format returns one line per diagnostic:
//
//	3: variable 'x' has not been declared
//	function 'main' is not defined
func (d *Diagnostics) Format() string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		builder.WriteString(item.String())
		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
