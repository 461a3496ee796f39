package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Exception is a Value checked to carry the runtime's exception tag.
// Trapped jumps hand these out through Error.Exception.
type Exception struct{ Value }

func (Exception) objectLike() {}

// ExceptionFromValue returns the wrapper iff v's runtime tag is exception.
func ExceptionFromValue(v Value) (Exception, bool) {
	if v.ref.Tag() == core.TagException {
		return Exception{v}, true
	}
	return Exception{}, false
}

// exceptionUnchecked skips the tag check. Only for refs carried by a
// trapped jump, which always holds an exception object.
func exceptionUnchecked(v Value) Exception { return Exception{v} }

// NewException allocates an exception instance without raising it.
func NewException(rt *Runtime, class ExceptionClass, msg string) Exception {
	return exceptionUnchecked(rt.wrap(rt.core.NewException(class.class, msg)))
}

// Message returns the exception text.
func (e Exception) Message() string {
	return e.ref.Obj().(*core.Exception).Msg
}

// Backtrace returns the native frames captured when the exception was
// allocated, innermost first.
func (e Exception) Backtrace() []string {
	bt := e.ref.Obj().(*core.Exception).Backtrace
	out := make([]string, len(bt))
	copy(out, bt)
	return out
}
