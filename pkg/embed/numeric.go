package karst

import (
	"math/big"

	"github.com/karstlang/karst/internal/core"
)

// Integer is a Value checked to carry the runtime's integer tag, fixnum or
// bignum.
type Integer struct{ Value }

func (Integer) numeric() {}

// IntegerFromValue returns the wrapper iff v's runtime tag is an integer
// tag.
func IntegerFromValue(v Value) (Integer, bool) {
	switch v.ref.Tag() {
	case core.TagFixnum, core.TagBignum:
		return Integer{v}, true
	}
	return Integer{}, false
}

// NewInteger boxes a host int64. Small values stay immediate.
func NewInteger(rt *Runtime, v int64) Integer {
	return Integer{rt.wrap(core.FixnumRef(v))}
}

// NewBigInteger boxes an arbitrary-precision integer.
func NewBigInteger(rt *Runtime, v *big.Int) Integer {
	if v.IsInt64() {
		return NewInteger(rt, v.Int64())
	}
	return Integer{rt.wrap(rt.core.NewBignum(v))}
}

// Int64 recovers the host integer. Bignums outside int64 report a
// RangeError-kind error.
func (i Integer) Int64() (int64, error) {
	switch i.ref.Tag() {
	case core.TagFixnum:
		return i.ref.AsInt(), nil
	case core.TagBignum:
		b := i.ref.Obj().(*core.Bignum).Val
		if !b.IsInt64() {
			return 0, NewError(RangeErrorClass(), "bignum too big to convert into int64")
		}
		return b.Int64(), nil
	}
	return 0, NewError(TypeErrorClass(), "no implicit conversion of %s into Integer", i.ClassName())
}

// Float is a Value checked to carry the runtime's float tag.
type Float struct{ Value }

func (Float) numeric() {}

// FloatFromValue returns the wrapper iff v's runtime tag is float.
func FloatFromValue(v Value) (Float, bool) {
	if v.ref.Tag() == core.TagFloat {
		return Float{v}, true
	}
	return Float{}, false
}

// floatUnchecked skips the tag check. Only for refs produced by kernel
// calls that guarantee a float, like abs and arg.
func floatUnchecked(v Value) Float { return Float{v} }

// NewFloat boxes a host float64.
func NewFloat(rt *Runtime, v float64) Float {
	return Float{rt.wrap(core.FloatRef(v))}
}

// Float64 recovers the host float. Infallible: the tag guarantees the
// representation.
func (f Float) Float64() float64 { return f.ref.AsFloat() }

// Rational is a Value checked to carry the runtime's rational tag. The
// surface here is presentation-only; arithmetic stays the runtime's
// business.
type Rational struct{ Value }

func (Rational) numeric()    {}
func (Rational) objectLike() {}

// RationalFromValue returns the wrapper iff v's runtime tag is rational.
func RationalFromValue(v Value) (Rational, bool) {
	if v.ref.Tag() == core.TagRational {
		return Rational{v}, true
	}
	return Rational{}, false
}

// NewRational builds a reduced fraction. A zero denominator surfaces as a
// ZeroDivisionError-kind error.
func NewRational(rt *Runtime, num, den int64) (Rational, error) {
	return Protect(rt, func() Rational {
		return Rational{rt.wrap(rt.core.NewRational(num, den))}
	})
}
