package diagnostic

import "testing"

func TestFormatWithAndWithoutLine(t *testing.T) {
	d := New()
	d.Errorf(UndeclaredIdentifier, 3, "variable '%s' has not been declared", "x")
	d.Reportf(StructuralViolation, "function 'main' is not defined")

	want := "3: variable 'x' has not been declared\nfunction 'main' is not defined"
	if got := d.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestEmptyFormat(t *testing.T) {
	d := New()
	if d.HasErrors() {
		t.Error("new collection should be empty")
	}
	if d.Format() != "" {
		t.Errorf("expected empty output, got %q", d.Format())
	}
}

func TestCounts(t *testing.T) {
	d := New()
	d.Errorf(TypeMismatch, 1, "a")
	d.Errorf(TypeMismatch, 2, "b")
	d.Errorf(InvalidType, 3, "c")

	if d.Count() != 3 {
		t.Errorf("expected 3 diagnostics, got %d", d.Count())
	}
	if d.CountKind(TypeMismatch) != 2 {
		t.Errorf("expected 2 type mismatches, got %d", d.CountKind(TypeMismatch))
	}
	if d.CountKind(DuplicateDeclaration) != 0 {
		t.Error("expected no duplicate declarations")
	}
	if !d.HasErrors() {
		t.Error("expected HasErrors")
	}
}

func TestOrderIsPreserved(t *testing.T) {
	d := New()
	d.Errorf(InvalidType, 9, "first")
	d.Errorf(InvalidType, 1, "second")

	all := d.All()
	if len(all) != 2 || all[0].Message != "first" || all[1].Message != "second" {
		t.Errorf("diagnostics out of order: %+v", all)
	}
}

func TestKindString(t *testing.T) {
	if ControlFlowMisplacement.String() != "control-flow-misplacement" {
		t.Errorf("unexpected kind name %q", ControlFlowMisplacement.String())
	}
	if Kind(99).String() != "unknown" {
		t.Error("out-of-range kinds should render as unknown")
	}
}
