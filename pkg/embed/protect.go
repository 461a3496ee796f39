package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Protect runs fn, which may call raising runtime primitives, and traps any
// non-local exception jump before it reaches the host call stack. A trapped
// jump comes back as a *Error wrapping the live exception object; a normal
// completion comes back as Ok.
//
// This is the only place the runtime's unwinding is stopped. Every layer
// above it sees ordinary returns, and no caller may invoke a possibly
// raising primitive outside of it. Nested Protect calls trap innermost
// first: a jump is consumed by the closest enclosing boundary and never
// travels past it.
//
// Panics that are not runtime jumps are the host's own and propagate
// untouched.
func Protect[T any](rt *Runtime, fn func() T) (out T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		j, ok := r.(*core.Jump)
		if !ok {
			panic(r)
		}
		var zero T
		out = zero
		err = errorFromJump(rt, j)
	}()
	out = fn()
	return out, nil
}

// protectErr is Protect for closures with no result.
func protectErr(rt *Runtime, fn func()) error {
	_, err := Protect(rt, func() struct{} {
		fn()
		return struct{}{}
	})
	return err
}
