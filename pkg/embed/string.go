package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Str is a Value checked to carry the runtime's string tag. Named Str to
// leave String for the conversion-protocol method.
type Str struct{ Value }

func (Str) objectLike() {}

// StrFromValue returns the wrapper iff v's runtime tag is string.
func StrFromValue(v Value) (Str, bool) {
	if v.ref.Tag() == core.TagString {
		return Str{v}, true
	}
	return Str{}, false
}

// strUnchecked skips the tag check. Only for refs just produced by the
// kernel's string allocator.
func strUnchecked(v Value) Str { return Str{v} }

// NewStr boxes a host string.
func NewStr(rt *Runtime, s string) Str {
	return strUnchecked(rt.wrap(rt.core.NewString(s)))
}

// Text recovers the host string. Infallible: the tag guarantees the
// representation.
func (s Str) Text() string {
	return s.ref.Obj().(*core.String).Val
}

// Symbol is a Value checked to carry the runtime's symbol tag. Symbols are
// interned per runtime: the same name always yields the identical object.
type Symbol struct{ Value }

func (Symbol) objectLike() {}

// SymbolFromValue returns the wrapper iff v's runtime tag is symbol.
func SymbolFromValue(v Value) (Symbol, bool) {
	if v.ref.Tag() == core.TagSymbol {
		return Symbol{v}, true
	}
	return Symbol{}, false
}

// Intern returns the runtime's symbol for name.
func Intern(rt *Runtime, name string) Symbol {
	return Symbol{rt.wrap(rt.core.Intern(name))}
}

// Name recovers the symbol's name.
func (s Symbol) Name() string {
	return s.ref.Obj().(*core.Symbol).Name
}
