package karst

import (
	"math/big"
	"reflect"

	"github.com/karstlang/karst/internal/core"
)

// conversionError is the uniform downcast failure: a TypeError-kind error
// naming the runtime class of the offending value, in the runtime's own
// implicit-conversion message shape.
func conversionError(v Value, target string) *Error {
	return NewError(TypeErrorClass(), "no implicit conversion of %s into %s", v.ClassName(), target)
}

// ToValue converts a Go value to a runtime value. The conversion is total
// for an open runtime: host kinds without a runtime counterpart box as
// opaque foreign objects, and runtime values and wrappers pass through
// unchanged. Allocation runs under the trap, so a torn-down runtime
// surfaces as an error rather than an escaped jump.
func (rt *Runtime) ToValue(val any) (Value, error) {
	return Protect(rt, func() Value { return rt.toValue(val) })
}

func (rt *Runtime) toValue(val any) Value {
	if val == nil {
		return rt.Nil()
	}

	// Already a runtime value?
	if rv, ok := val.(ReprValue); ok {
		return rv.AsValue()
	}

	switch v := val.(type) {
	case *big.Int:
		return NewBigInteger(rt, v).AsValue()
	case *big.Rat:
		return rt.wrap(rt.core.RationalFromBig(v))
	case complex128:
		return NewComplex(rt, NewFloat(rt, real(v)), NewFloat(rt, imag(v))).AsValue()
	case error:
		return NewException(rt, RuntimeErrorClass(), v.Error()).AsValue()
	}

	r := reflect.ValueOf(val)
	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(rt, r.Int()).AsValue()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if r.Uint() > uint64(1<<63-1) {
			return NewBigInteger(rt, new(big.Int).SetUint64(r.Uint())).AsValue()
		}
		return NewInteger(rt, int64(r.Uint())).AsValue()
	case reflect.Float32, reflect.Float64:
		return NewFloat(rt, r.Float()).AsValue()
	case reflect.Bool:
		return rt.Bool(r.Bool())
	case reflect.String:
		return NewStr(rt, r.String()).AsValue()
	default:
		return rt.wrap(rt.core.NewForeign(val))
	}
}

// FromValue converts a runtime value to a Go value. targetType is optional;
// when provided the result is shaped to it, otherwise each tag picks its
// natural host type.
func (rt *Runtime) FromValue(v Value, targetType reflect.Type) (any, error) {
	if targetType != nil && targetType == reflect.TypeOf((*Value)(nil)).Elem() {
		return v, nil
	}

	switch v.ref.Tag() {
	case core.TagNil:
		return nil, nil
	case core.TagTrue:
		return true, nil
	case core.TagFalse:
		return false, nil
	case core.TagFixnum:
		return shapeInt(v, v.ref.AsInt(), targetType)
	case core.TagFloat:
		return shapeFloat(v, v.ref.AsFloat(), targetType)
	case core.TagBignum:
		b := v.ref.Obj().(*core.Bignum).Val
		if targetType == nil || targetType == reflect.TypeOf((*big.Int)(nil)) {
			return new(big.Int).Set(b), nil
		}
		if b.IsInt64() {
			return shapeInt(v, b.Int64(), targetType)
		}
		return nil, NewError(RangeErrorClass(), "bignum too big to convert into %s", targetType)
	case core.TagString:
		return v.ref.Obj().(*core.String).Val, nil
	case core.TagSymbol:
		return v.ref.Obj().(*core.Symbol).Name, nil
	case core.TagRational:
		rat := v.ref.Obj().(*core.Rational).Val
		if targetType != nil && targetType.Kind() == reflect.Float64 {
			f, _ := rat.Float64()
			return f, nil
		}
		return new(big.Rat).Set(rat), nil
	case core.TagComplex:
		c, _ := ComplexFromValue(v)
		re, err := TryConvert[float64](c.Real())
		if err != nil {
			return nil, err
		}
		im, err := TryConvert[float64](c.Imag())
		if err != nil {
			return nil, err
		}
		return complex(re, im), nil
	case core.TagForeign:
		return v.ref.Obj().(*core.Foreign).Val, nil
	default:
		if targetType == nil {
			return v, nil
		}
		return nil, conversionError(v, targetType.String())
	}
}

func shapeInt(v Value, n int64, targetType reflect.Type) (any, error) {
	if targetType == nil {
		return n, nil
	}
	switch targetType.Kind() {
	case reflect.Int:
		return int(n), nil
	case reflect.Int64:
		return n, nil
	case reflect.Float64:
		return float64(n), nil
	default:
		return nil, conversionError(v, targetType.String())
	}
}

func shapeFloat(v Value, f float64, targetType reflect.Type) (any, error) {
	if targetType == nil || targetType.Kind() == reflect.Float64 {
		return f, nil
	}
	return nil, conversionError(v, targetType.String())
}

// TryConvert narrows a runtime value to a host type. It never panics: a tag
// mismatch or semantic failure comes back as a TypeError-kind error naming
// the value's runtime class.
//
// Supported T: the host primitives with runtime counterparts (int, int64,
// float64, bool, string, *big.Int, *big.Rat, complex128), Value itself, and
// every typed wrapper via its checked constructor.
func TryConvert[T any](v Value) (T, error) {
	var zero T
	var out any
	var err error

	switch any(zero).(type) {
	case Value:
		out = v
	case int, int64, float64:
		out, err = v.rt.FromValue(v, reflect.TypeOf(zero))
	case bool:
		// Truthiness is not conversion; only the runtime's booleans narrow.
		switch v.ref.Tag() {
		case core.TagTrue:
			out = true
		case core.TagFalse:
			out = false
		default:
			err = conversionError(v, "Boolean")
		}
	case string:
		switch v.ref.Tag() {
		case core.TagString, core.TagSymbol:
			out, err = v.rt.FromValue(v, nil)
		default:
			err = conversionError(v, "String")
		}
	case *big.Int, *big.Rat, complex128:
		out, err = v.rt.FromValue(v, reflect.TypeOf(zero))
	case Integer:
		out, err = fromChecked(v, "Integer", IntegerFromValue)
	case Float:
		out, err = fromChecked(v, "Float", FloatFromValue)
	case Str:
		out, err = fromChecked(v, "String", StrFromValue)
	case Symbol:
		out, err = fromChecked(v, "Symbol", SymbolFromValue)
	case Complex:
		out, err = fromChecked(v, "Complex", ComplexFromValue)
	case Rational:
		out, err = fromChecked(v, "Rational", RationalFromValue)
	case Regexp:
		out, err = fromChecked(v, "Regexp", RegexpFromValue)
	case Match:
		out, err = fromChecked(v, "MatchData", MatchFromValue)
	case Exception:
		out, err = fromChecked(v, "Exception", ExceptionFromValue)
	default:
		err = conversionError(v, reflect.TypeOf(zero).String())
	}

	if err != nil {
		return zero, err
	}
	t, ok := out.(T)
	if !ok {
		return zero, conversionError(v, reflect.TypeOf(zero).String())
	}
	return t, nil
}

// fromChecked adapts a wrapper's checked constructor to the conversion
// protocol: the failure path only fires when the tag check fails.
func fromChecked[W any](v Value, name string, from func(Value) (W, bool)) (any, error) {
	w, ok := from(v)
	if !ok {
		return nil, conversionError(v, name)
	}
	return w, nil
}
