package core

import (
	"math"
	"math/big"
)

// isNumericTag reports whether a Ref can appear as a complex or rational
// component.
func isNumericTag(t Tag) bool {
	switch t {
	case TagFixnum, TagFloat, TagBignum, TagRational:
		return true
	default:
		return false
	}
}

// numericFloat condenses any numeric Ref to a float64.
func numericFloat(r Ref) (float64, bool) {
	switch r.Tag() {
	case TagFixnum:
		return float64(r.AsInt()), true
	case TagFloat:
		return r.AsFloat(), true
	case TagBignum:
		f, _ := new(big.Float).SetInt(r.Obj().(*Bignum).Val).Float64()
		return f, true
	case TagRational:
		f, _ := r.Obj().(*Rational).Val.Float64()
		return f, true
	default:
		return 0, false
	}
}

// exactRat views an exact numeric Ref as a big.Rat. Floats never reach here.
func exactRat(r Ref) *big.Rat {
	switch r.Tag() {
	case TagFixnum:
		return big.NewRat(r.AsInt(), 1)
	case TagBignum:
		return new(big.Rat).SetInt(r.Obj().(*Bignum).Val)
	default:
		return r.Obj().(*Rational).Val
	}
}

// intRef boxes an integer, staying immediate while it fits.
func (rt *Runtime) intRef(v *big.Int) Ref {
	if v.IsInt64() {
		return FixnumRef(v.Int64())
	}
	return rt.NewBignum(v)
}

// addNumeric sums two real numeric Refs. A float operand condenses the sum
// to a float; exact operands stay exact, and the result is rational only
// when an operand was.
func (rt *Runtime) addNumeric(a, b Ref) Ref {
	if a.Tag() == TagFloat || b.Tag() == TagFloat {
		fa, _ := numericFloat(a)
		fb, _ := numericFloat(b)
		return FloatRef(fa + fb)
	}
	sum := new(big.Rat).Add(exactRat(a), exactRat(b))
	if a.Tag() == TagRational || b.Tag() == TagRational {
		return ObjRef(&Rational{basic: basic{class: CRational}, Val: sum})
	}
	return rt.intRef(sum.Num())
}

func (rt *Runtime) subNumeric(a, b Ref) Ref {
	return rt.addNumeric(a, rt.negNumeric(b))
}

// negNumeric negates a numeric Ref, preserving its representation.
func (rt *Runtime) negNumeric(r Ref) Ref {
	switch r.Tag() {
	case TagFixnum:
		return FixnumRef(-r.AsInt())
	case TagFloat:
		return FloatRef(-r.AsFloat())
	case TagBignum:
		return rt.NewBignum(new(big.Int).Neg(r.Obj().(*Bignum).Val))
	case TagRational:
		rat := new(big.Rat).Neg(r.Obj().(*Rational).Val)
		return ObjRef(&Rational{basic: basic{class: CRational}, Val: rat})
	default:
		rt.TypeErrorNoConversion(r, "Numeric")
		return Ref{} // unreachable
	}
}

// NewComplex builds a complex from rectangular parts. Both parts must be
// numeric; anything else raises TypeError. Complex parts fold in, so the
// stored components are always real: x + y*i with complex x, y expands to
// (x.re - y.im) + (x.im + y.re)i.
func (rt *Runtime) NewComplex(re, im Ref) Ref {
	rt.checkOpen()
	if !isNumericTag(re.Tag()) && re.Tag() != TagComplex {
		rt.TypeErrorNoConversion(re, "Numeric")
	}
	if !isNumericTag(im.Tag()) && im.Tag() != TagComplex {
		rt.TypeErrorNoConversion(im, "Numeric")
	}
	if re.Tag() == TagComplex || im.Tag() == TagComplex {
		reR, reI := complexParts(re)
		imR, imI := complexParts(im)
		re = rt.subNumeric(reR, imI)
		im = rt.addNumeric(reI, imR)
	}
	return ObjRef(&Complex{basic: basic{class: CComplex}, Re: re, Im: im})
}

// complexParts splits any numeric Ref into real components.
func complexParts(r Ref) (Ref, Ref) {
	if r.Tag() == TagComplex {
		c := r.Obj().(*Complex)
		return c.Re, c.Im
	}
	return r, FixnumRef(0)
}

// ComplexPolar builds a complex from magnitude and angle. The parts condense
// to floats, so the result's components are always floats.
func (rt *Runtime) ComplexPolar(abs, arg Ref) Ref {
	rt.checkOpen()
	a, ok := numericFloat(abs)
	if !ok {
		rt.TypeErrorNoConversion(abs, "Float")
	}
	t, ok := numericFloat(arg)
	if !ok {
		rt.TypeErrorNoConversion(arg, "Float")
	}
	re := FloatRef(a * math.Cos(t))
	im := FloatRef(a * math.Sin(t))
	return ObjRef(&Complex{basic: basic{class: CComplex}, Re: re, Im: im})
}

// mustComplex is the kernel-internal downcast for primitives whose argument
// is produced by a checked wrapper. Wrong tags raise rather than corrupt.
func (rt *Runtime) mustComplex(r Ref) *Complex {
	c, ok := r.Obj().(*Complex)
	if !ok {
		rt.TypeErrorNoConversion(r, "Complex")
	}
	return c
}

// ComplexReal returns the real part, exactly as constructed.
func (rt *Runtime) ComplexReal(r Ref) Ref {
	return rt.mustComplex(r).Re
}

// ComplexImag returns the imaginary part, exactly as constructed.
func (rt *Runtime) ComplexImag(r Ref) Ref {
	return rt.mustComplex(r).Im
}

// ComplexConjugate negates the imaginary part, preserving representation.
func (rt *Runtime) ComplexConjugate(r Ref) Ref {
	rt.checkOpen()
	c := rt.mustComplex(r)
	return ObjRef(&Complex{basic: basic{class: CComplex}, Re: c.Re, Im: rt.negNumeric(c.Im)})
}

// ComplexAbs returns the magnitude as a float Ref.
func (rt *Runtime) ComplexAbs(r Ref) Ref {
	c := rt.mustComplex(r)
	re, _ := numericFloat(c.Re)
	im, _ := numericFloat(c.Im)
	return FloatRef(math.Hypot(re, im))
}

// ComplexArg returns the angle of the polar form as a float Ref.
func (rt *Runtime) ComplexArg(r Ref) Ref {
	c := rt.mustComplex(r)
	re, _ := numericFloat(c.Re)
	im, _ := numericFloat(c.Im)
	return FloatRef(math.Atan2(im, re))
}

// NewRational builds a reduced fraction. A zero denominator raises
// ZeroDivisionError, matching the runtime's division semantics.
func (rt *Runtime) NewRational(num, den int64) Ref {
	rt.checkOpen()
	if den == 0 {
		rt.Raise(CZeroDivisionError, "divided by 0")
	}
	return ObjRef(&Rational{basic: basic{class: CRational}, Val: big.NewRat(num, den)})
}

// RationalFromBig boxes an existing big.Rat, copying it.
func (rt *Runtime) RationalFromBig(v *big.Rat) Ref {
	rt.checkOpen()
	return ObjRef(&Rational{basic: basic{class: CRational}, Val: new(big.Rat).Set(v)})
}
