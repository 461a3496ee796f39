package core

import (
	"math"
)

// Tag identifies the runtime category of a value behind a Ref.
type Tag uint8

const (
	TagNone Tag = iota // zero Ref, never a live value
	TagNil
	TagFalse
	TagTrue
	TagFixnum
	TagFloat
	TagBignum
	TagString
	TagSymbol
	TagComplex
	TagRational
	TagRegexp
	TagMatch
	TagException
	TagForeign // host value boxed opaquely, catch-all
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagNil:
		return "nil"
	case TagFalse:
		return "false"
	case TagTrue:
		return "true"
	case TagFixnum:
		return "fixnum"
	case TagFloat:
		return "float"
	case TagBignum:
		return "bignum"
	case TagString:
		return "string"
	case TagSymbol:
		return "symbol"
	case TagComplex:
		return "complex"
	case TagRational:
		return "rational"
	case TagRegexp:
		return "regexp"
	case TagMatch:
		return "match"
	case TagException:
		return "exception"
	case TagForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// Ref is an opaque reference to a runtime value: either a small immediate
// (fixnum, float, bool, nil — never heap-tracked) or a pointer to a
// heap object owned by the runtime.
//
// The obj pointer doubles as the liveness anchor: as long as the host holds
// the Ref on its stack, the object stays reachable. A Ref must never outlive
// the runtime that issued it; using one after Runtime.Close is a contract
// violation.
//
// The zero Ref has TagNone and is not a value. Checked constructors in the
// embedding layer reject it.
type Ref struct {
	tag  Tag
	data uint64 // int64 bits or float64 bits for immediates
	obj  Object // heap objects only, nil for immediates
}

// Immediate constructors.

func NilRef() Ref           { return Ref{tag: TagNil} }
func TrueRef() Ref          { return Ref{tag: TagTrue} }
func FalseRef() Ref         { return Ref{tag: TagFalse} }
func FixnumRef(v int64) Ref { return Ref{tag: TagFixnum, data: uint64(v)} }

func FloatRef(v float64) Ref {
	return Ref{tag: TagFloat, data: math.Float64bits(v)}
}

func BoolRef(v bool) Ref {
	if v {
		return TrueRef()
	}
	return FalseRef()
}

// ObjRef wraps a heap object. Internal allocation sites only.
func ObjRef(o Object) Ref {
	return Ref{tag: o.Tag(), obj: o}
}

// Tag reports the runtime type tag. This is the single discriminant the
// checked downcast constructors inspect.
func (r Ref) Tag() Tag { return r.tag }

func (r Ref) IsZero() bool      { return r.tag == TagNone }
func (r Ref) IsNil() bool       { return r.tag == TagNil }
func (r Ref) IsImmediate() bool { return r.obj == nil }

func (r Ref) AsInt() int64     { return int64(r.data) }
func (r Ref) AsFloat() float64 { return math.Float64frombits(r.data) }
func (r Ref) AsBool() bool     { return r.tag == TagTrue }

// Obj returns the heap object, or nil for immediates.
func (r Ref) Obj() Object { return r.obj }

// Truthy follows the runtime's truth protocol: only nil and false are falsy.
func (r Ref) Truthy() bool {
	return r.tag != TagNil && r.tag != TagFalse && r.tag != TagNone
}

// Identical reports reference identity: bit equality for immediates, same
// heap object for boxed values.
func (r Ref) Identical(other Ref) bool {
	if r.tag != other.tag {
		return false
	}
	if r.IsImmediate() {
		return r.data == other.data
	}
	return r.obj == other.obj
}
