package core

import (
	"fmt"
	goruntime "runtime"
)

// Jump is the runtime's non-local exit. Primitives never return errors; any
// failure panics with a *Jump carrying the live exception object, and the
// nearest protect trap above converts it back into an ordinary value.
//
// A recover that sees anything other than a *Jump must re-panic: other panics
// belong to the host, not the runtime.
type Jump struct {
	Exc Ref // always TagException
}

func (j *Jump) String() string {
	if e, ok := j.Exc.Obj().(*Exception); ok {
		return fmt.Sprintf("%s: %s", e.Class().Name, e.Msg)
	}
	return "unknown jump"
}

// Error makes an escaped jump panic readable. A jump that reaches the Go
// runtime unhandled means a raising primitive was called outside protect.
func (j *Jump) Error() string { return "unprotected exception jump: " + j.String() }

// NewException allocates an exception instance without raising it.
func (rt *Runtime) NewException(class *Class, msg string) Ref {
	if class == nil || !class.Ancestor(CException) {
		class = CRuntimeError
	}
	exc := &Exception{basic: basic{class: class}, Msg: msg, Backtrace: captureBacktrace(rt.cfg.MaxBacktrace)}
	return ObjRef(exc)
}

// Raise builds an exception and unwinds to the nearest protect trap.
func (rt *Runtime) Raise(class *Class, format string, args ...any) {
	exc := rt.NewException(class, fmt.Sprintf(format, args...))
	rt.RaiseRef(exc)
}

// RaiseRef unwinds with an existing exception object. Used by hosts
// re-raising a trapped exception; the object travels unchanged.
func (rt *Runtime) RaiseRef(exc Ref) {
	if exc.Tag() != TagException {
		exc = rt.NewException(CTypeError, fmt.Sprintf("exception object expected, got %s", ClassName(exc)))
	}
	if rt.log != nil {
		e := exc.Obj().(*Exception)
		rt.log.WithField("class", e.Class().Name).Debug("raise: ", e.Msg)
	}
	panic(&Jump{Exc: exc})
}

// TypeErrorNoConversion raises the runtime's implicit-conversion failure with
// its canonical message shape.
func (rt *Runtime) TypeErrorNoConversion(val Ref, target string) {
	rt.Raise(CTypeError, "no implicit conversion of %s into %s", ClassName(val), target)
}

func captureBacktrace(max int) []string {
	if max <= 0 {
		max = 16
	}
	pcs := make([]uintptr, max)
	n := goruntime.Callers(3, pcs)
	if n == 0 {
		return nil
	}
	frames := goruntime.CallersFrames(pcs[:n])
	var bt []string
	for {
		f, more := frames.Next()
		bt = append(bt, fmt.Sprintf("%s:%d in %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return bt
}
