package idtable

// Reserved spellings
const (
	IntName    = "Int"
	FloatName  = "Float"
	StringName = "String"
	BoolName   = "Bool"
	VoidName   = "Void"
	MainName   = "main"
	PrintfName = "printf"
)

// Reserved holds the handles with special meaning to the analyzer.
// The five type names double as type tags.
type Reserved struct {
	Int    Symbol
	Float  Symbol
	String Symbol
	Bool   Symbol
	Void   Symbol
	Main   Symbol
	Printf Symbol
}

// Reserve interns the reserved spellings in t and returns their handles
func Reserve(t *Table) Reserved {
	return Reserved{
		Int:    t.Add(IntName),
		Float:  t.Add(FloatName),
		String: t.Add(StringName),
		Bool:   t.Add(BoolName),
		Void:   t.Add(VoidName),
		Main:   t.Add(MainName),
		Printf: t.Add(PrintfName),
	}
}

// IsPrimitive reports whether s is one of Int, Float, String, Bool or Void
func (r Reserved) IsPrimitive(s Symbol) bool {
	return s == r.Int || s == r.Float || s == r.String || s == r.Bool || s == r.Void
}

// IsNumeric reports whether s is Int or Float
func (r Reserved) IsNumeric(s Symbol) bool {
	return s == r.Int || s == r.Float
}
