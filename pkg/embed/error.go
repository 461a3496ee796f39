package karst

import (
	"fmt"

	"github.com/karstlang/karst/internal/core"
)

// ExceptionClass identifies a built-in exception class, used as the target
// when the host constructs an error without a live exception object.
type ExceptionClass struct {
	class *core.Class
}

func (c ExceptionClass) Name() string { return c.class.Name }

// Built-in exception class accessors.
func StandardErrorClass() ExceptionClass     { return ExceptionClass{core.CStandardError} }
func RuntimeErrorClass() ExceptionClass      { return ExceptionClass{core.CRuntimeError} }
func TypeErrorClass() ExceptionClass         { return ExceptionClass{core.CTypeError} }
func ArgumentErrorClass() ExceptionClass     { return ExceptionClass{core.CArgumentError} }
func RangeErrorClass() ExceptionClass        { return ExceptionClass{core.CRangeError} }
func ZeroDivisionErrorClass() ExceptionClass { return ExceptionClass{core.CZeroDivisionError} }
func RegexpErrorClass() ExceptionClass       { return ExceptionClass{core.CRegexpError} }

// Error is the uniform failure value of every fallible operation. It is
// either exception-backed — it wraps the live exception object a trapped
// jump carried, class identity and backtrace intact — or host-constructed
// from a target class and a message.
type Error struct {
	exc   Value // exception-backed kind; zero otherwise
	class *core.Class
	msg   string
}

// NewError builds a host-constructed Error aimed at the given exception
// class.
func NewError(class ExceptionClass, format string, args ...any) *Error {
	return &Error{class: class.class, msg: fmt.Sprintf(format, args...)}
}

func errorFromJump(rt *Runtime, j *core.Jump) *Error {
	exc := j.Exc.Obj().(*core.Exception)
	return &Error{
		exc:   rt.wrap(j.Exc),
		class: exc.Class(),
		msg:   exc.Msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.class.Name, e.msg)
}

// Message returns the error text without the class prefix.
func (e *Error) Message() string { return e.msg }

// ClassName reports the exception class the error targets or carries.
func (e *Error) ClassName() string { return e.class.Name }

// IsKind reports whether the error's class is class or a descendant of it.
func (e *Error) IsKind(class ExceptionClass) bool {
	return e.class.Ancestor(class.class)
}

// Exception returns the live exception object, if this error came out of a
// trapped jump.
func (e *Error) Exception() (Exception, bool) {
	if e.exc.IsZero() {
		return Exception{}, false
	}
	return exceptionUnchecked(e.exc), true
}

// Raise re-raises the error into the runtime: the original exception object
// when one is carried, a fresh one from the class and message otherwise.
// Must be called under Protect or an outer trap; otherwise the jump escapes
// as a host panic.
func (e *Error) Raise(rt *Runtime) {
	if exc, ok := e.Exception(); ok {
		rt.core.RaiseRef(exc.ref)
	}
	rt.core.Raise(e.class, "%s", e.msg)
}
