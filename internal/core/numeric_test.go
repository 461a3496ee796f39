package core

import (
	"math"
	"testing"
)

func TestNewComplexKeepsParts(t *testing.T) {
	rt := newTestRuntime(t)

	ref := rt.NewComplex(FixnumRef(9), FixnumRef(-4))
	c := ref.Obj().(*Complex)
	if c.Re.AsInt() != 9 || c.Im.AsInt() != -4 {
		t.Errorf("parts = (%d, %d), want (9, -4)", c.Re.AsInt(), c.Im.AsInt())
	}
	if rt.ComplexReal(ref).AsInt() != 9 {
		t.Error("real primitive lost the constructed part")
	}
	if rt.ComplexImag(ref).AsInt() != -4 {
		t.Error("imag primitive lost the constructed part")
	}
}

func TestNewComplexFoldsComplexParts(t *testing.T) {
	rt := newTestRuntime(t)

	// (2+1i) + 3i = 2+4i
	inner := rt.NewComplex(FixnumRef(2), FixnumRef(1))
	ref := rt.NewComplex(inner, FixnumRef(3))
	if got := rt.ToS(ref); got != "2+4i" {
		t.Errorf("to_s = %q, want 2+4i", got)
	}
	if rt.ComplexReal(ref).Tag() != TagFixnum || rt.ComplexImag(ref).Tag() != TagFixnum {
		t.Error("integer parts should stay fixnums after folding")
	}

	// (1+2i) + (3+4i)i = (1-4) + (2+3)i
	other := rt.NewComplex(FixnumRef(3), FixnumRef(4))
	both := rt.NewComplex(inner, other)
	re := rt.ComplexReal(both)
	im := rt.ComplexImag(both)
	if re.AsInt() != -2 || im.AsInt() != 4 {
		t.Errorf("parts = (%d, %d), want (-2, 4)", re.AsInt(), im.AsInt())
	}

	// a float part condenses the affected component
	fref := rt.NewComplex(rt.NewComplex(FloatRef(0.5), FixnumRef(1)), FixnumRef(2))
	if got := rt.ComplexReal(fref); got.Tag() != TagFloat || got.AsFloat() != 0.5 {
		t.Errorf("float real part = %v (%s), want 0.5 float", got.AsFloat(), got.Tag())
	}
}

func TestNewComplexRejectsNonNumeric(t *testing.T) {
	rt := newTestRuntime(t)

	exc := trapJump(func() { rt.NewComplex(rt.NewString("x"), FixnumRef(1)) })
	if exc == nil {
		t.Fatal("expected TypeError")
	}
	if exc.Class() != CTypeError {
		t.Errorf("class = %s, want TypeError", exc.Class())
	}
	if want := "no implicit conversion of String into Numeric"; exc.Msg != want {
		t.Errorf("message = %q, want %q", exc.Msg, want)
	}
}

func TestComplexPolar(t *testing.T) {
	rt := newTestRuntime(t)

	ref := rt.ComplexPolar(FixnumRef(2), FixnumRef(3))
	abs := rt.ComplexAbs(ref).AsFloat()
	arg := rt.ComplexArg(ref).AsFloat()
	if math.Abs(abs-2) > 1e-12 {
		t.Errorf("abs = %v, want 2", abs)
	}
	if math.Abs(arg-3) > 1e-12 {
		t.Errorf("arg = %v, want 3", arg)
	}
}

func TestComplexPolarNonNumeric(t *testing.T) {
	rt := newTestRuntime(t)

	exc := trapJump(func() { rt.ComplexPolar(rt.NewString("r"), FixnumRef(0)) })
	if exc == nil {
		t.Fatal("expected TypeError")
	}
	if exc.Class() != CTypeError {
		t.Errorf("class = %s, want TypeError", exc.Class())
	}
}

func TestComplexConjugate(t *testing.T) {
	rt := newTestRuntime(t)

	ref := rt.NewComplex(FixnumRef(1), FixnumRef(2))
	conj := rt.ComplexConjugate(ref)
	if got := rt.ToS(conj); got != "1-2i" {
		t.Errorf("conjugate to_s = %q, want 1-2i", got)
	}
	// representation is preserved, not condensed to float
	if rt.ComplexImag(conj).Tag() != TagFixnum {
		t.Error("conjugate changed the imaginary part's representation")
	}

	fref := rt.NewComplex(FloatRef(0.5), FloatRef(-1.5))
	fconj := rt.ComplexConjugate(fref)
	if got := rt.ComplexImag(fconj).AsFloat(); got != 1.5 {
		t.Errorf("float conjugate imag = %v, want 1.5", got)
	}
}

func TestComplexAbsExact(t *testing.T) {
	rt := newTestRuntime(t)

	ref := rt.NewComplex(FixnumRef(3), FixnumRef(-4))
	if got := rt.ComplexAbs(ref).AsFloat(); got != 5.0 {
		t.Errorf("abs = %v, want exactly 5.0", got)
	}
}

func TestRationalZeroDenominator(t *testing.T) {
	rt := newTestRuntime(t)

	exc := trapJump(func() { rt.NewRational(1, 0) })
	if exc == nil {
		t.Fatal("expected ZeroDivisionError")
	}
	if exc.Class() != CZeroDivisionError {
		t.Errorf("class = %s, want ZeroDivisionError", exc.Class())
	}
}

func TestRegexpBadPattern(t *testing.T) {
	rt := newTestRuntime(t)

	exc := trapJump(func() { rt.NewRegexp("(") })
	if exc == nil {
		t.Fatal("expected RegexpError")
	}
	if exc.Class() != CRegexpError {
		t.Errorf("class = %s, want RegexpError", exc.Class())
	}
}

func TestRegexpMatchMiss(t *testing.T) {
	rt := newTestRuntime(t)

	rx := rt.NewRegexp("xyz")
	got := rt.RegexpMatch(rx, rt.NewString("abc"))
	if !got.IsNil() {
		t.Errorf("miss should return nil, got %v", got.Tag())
	}
}
