package idtable

// entry is the interned storage behind a Symbol
type entry struct {
	name  string
	index int
}

// Symbol is an interned identifier handle.
// Two symbols from the same Table are equal exactly when their spellings are equal.
type Symbol struct {
	e *entry
}

// String returns the spelling of the symbol
func (s Symbol) String() string {
	if s.e == nil {
		return "<nil>"
	}
	return s.e.name
}

// IsZero reports whether s is the zero Symbol (not produced by any table)
func (s Symbol) IsZero() bool {
	return s.e == nil
}

// Index returns the insertion index of the symbol in its table, or -1 for the zero Symbol
func (s Symbol) Index() int {
	if s.e == nil {
		return -1
	}
	return s.e.index
}

// Table hands out one canonical Symbol per distinct spelling
type Table struct {
	entries map[string]*entry
	order   []*entry
}

// New creates an empty table
func New() *Table {
	return &Table{
		entries: make(map[string]*entry),
	}
}

// Add interns name and returns its canonical handle
func (t *Table) Add(name string) Symbol {
	if e, ok := t.entries[name]; ok {
		return Symbol{e: e}
	}
	e := &entry{name: name, index: len(t.order)}
	t.entries[name] = e
	t.order = append(t.order, e)
	return Symbol{e: e}
}

// Lookup returns the handle for name if it has been interned
func (t *Table) Lookup(name string) (Symbol, bool) {
	e, ok := t.entries[name]
	if !ok {
		return Symbol{}, false
	}
	return Symbol{e: e}, true
}

// Len returns the number of interned spellings
func (t *Table) Len() int {
	return len(t.order)
}

// Symbols returns every interned symbol in insertion order
func (t *Table) Symbols() []Symbol {
	syms := make([]Symbol, len(t.order))
	for i, e := range t.order {
		syms[i] = Symbol{e: e}
	}
	return syms
}
