package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Complex is a Value checked to carry the runtime's complex tag.
type Complex struct{ Value }

func (Complex) numeric()    {}
func (Complex) objectLike() {}

// ComplexFromValue returns the wrapper iff v's runtime tag is complex. This
// check is the only gate between an arbitrary reference and the complex
// surface below.
func ComplexFromValue(v Value) (Complex, bool) {
	if v.ref.Tag() == core.TagComplex {
		return Complex{v}, true
	}
	return Complex{}, false
}

// complexUnchecked skips the tag check. Only for refs just produced by the
// kernel's complex constructors, which cannot return another tag.
func complexUnchecked(v Value) Complex { return Complex{v} }

// NewComplex builds a complex from rectangular parts. The Numeric bound on
// the arguments makes the underlying construction infallible: a complex
// argument folds into the rectangular form rather than being rejected.
func NewComplex(rt *Runtime, real, imag Numeric) Complex {
	ref := rt.core.NewComplex(real.AsValue().ref, imag.AsValue().ref)
	return complexUnchecked(rt.wrap(ref))
}

// ComplexPolar builds a complex from magnitude and angle. Construction runs
// inside Protect: the runtime rejects arguments it cannot condense to
// floats.
func ComplexPolar(rt *Runtime, abs, arg Numeric) (Complex, error) {
	return Protect(rt, func() Complex {
		ref := rt.core.ComplexPolar(abs.AsValue().ref, arg.AsValue().ref)
		return complexUnchecked(rt.wrap(ref))
	})
}

// Real returns the real part, exactly as constructed. Narrow it with
// TryConvert.
func (c Complex) Real() Value {
	return c.rt.wrap(c.rt.core.ComplexReal(c.ref))
}

// Imag returns the imaginary part, exactly as constructed.
func (c Complex) Imag() Value {
	return c.rt.wrap(c.rt.core.ComplexImag(c.ref))
}

// Conjugate returns the complex conjugate.
func (c Complex) Conjugate() Complex {
	return complexUnchecked(c.rt.wrap(c.rt.core.ComplexConjugate(c.ref)))
}

// Abs returns the magnitude.
func (c Complex) Abs() float64 {
	return floatUnchecked(c.rt.wrap(c.rt.core.ComplexAbs(c.ref))).Float64()
}

// Arg returns the angle of the polar form.
func (c Complex) Arg() float64 {
	return floatUnchecked(c.rt.wrap(c.rt.core.ComplexArg(c.ref))).Float64()
}
