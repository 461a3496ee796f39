// Package karst is the embedding API for the karst runtime: a safe interop
// layer between statically typed Go hosts and the runtime's dynamically
// typed, runtime-managed values.
//
// The layer has four load-bearing pieces: Value (the opaque reference),
// checked typed wrappers narrowed by runtime type tag, the bidirectional
// conversion protocol (ToValue / TryConvert), and Protect, the only place
// the runtime's non-local exception jumps are converted back into ordinary
// Go errors.
package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Value is an opaque reference to a runtime value together with the runtime
// handle that issued it. Values are borrows: they are valid only while the
// owning runtime is open, and carry no host-side destructor responsibility.
//
// The zero Value is not a live reference; every checked constructor rejects
// it.
type Value struct {
	ref core.Ref
	rt  *Runtime
}

// ReprValue is satisfied by Value and by every typed wrapper: anything that
// represents a runtime value. It is sealed; implementations outside this
// package would have no way to uphold the tag invariants.
type ReprValue interface {
	// AsValue upcasts to the plain opaque reference. Infallible and
	// zero-cost: wrappers add no state beyond the Value itself.
	AsValue() Value

	reprValue()
}

// Numeric marks wrapper types whose tag guarantees numeric behavior.
// Complex components accept any Numeric; polar construction additionally
// requires magnitude and angle the runtime can condense to floats, and
// rejects the rest with a raised TypeError.
type Numeric interface {
	ReprValue
	numeric()
}

// ObjectLike marks heap-boxed, non-immediate values that support the
// identity-based object protocol (inspect, class name). Immediates do not
// qualify.
type ObjectLike interface {
	ReprValue
	objectLike()
}

func (v Value) AsValue() Value { return v }
func (v Value) reprValue()     {}

// Runtime returns the handle that issued this value.
func (v Value) Runtime() *Runtime { return v.rt }

// IsNil reports whether the value is the runtime's nil.
func (v Value) IsNil() bool { return v.ref.IsNil() }

// IsZero reports whether this is the zero Value rather than a live
// reference.
func (v Value) IsZero() bool { return v.rt == nil || v.ref.IsZero() }

// Truthy follows the runtime's truth protocol: everything except nil and
// false.
func (v Value) Truthy() bool { return v.ref.Truthy() }

// ClassName reports the runtime's class name for the value, as used in the
// runtime's own error messages.
func (v Value) ClassName() string { return core.ClassName(v.ref) }

// Identical reports reference identity: same immediate bits or same heap
// object. This is the identity model boxed values round-trip under.
func (v Value) Identical(other Value) bool {
	return v.rt == other.rt && v.ref.Identical(other.ref)
}

// String presents the value through the runtime's string-conversion
// protocol. Formatting is never reimplemented host-side.
func (v Value) String() string {
	if v.IsZero() {
		return "<zero value>"
	}
	return v.rt.core.ToS(v.ref)
}

// Inspect is the runtime's debugging presentation.
func (v Value) Inspect() string {
	if v.IsZero() {
		return "<zero value>"
	}
	return v.rt.core.Inspect(v.ref)
}

// wrap builds a Value around a kernel ref. Internal use.
func (rt *Runtime) wrap(ref core.Ref) Value {
	return Value{ref: ref, rt: rt}
}
