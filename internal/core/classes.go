package core

// Class is immutable built-in class metadata. The hierarchy is static and
// shared by all runtimes; only instances are per-runtime.
type Class struct {
	Name   string
	Parent *Class
}

// Ancestor reports whether c is other or a descendant of other.
func (c *Class) Ancestor(other *Class) bool {
	for p := c; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string { return c.Name }

// Built-in class table.
var (
	CBasicObject = &Class{Name: "BasicObject"}
	CObject      = &Class{Name: "Object", Parent: CBasicObject}

	CNil     = &Class{Name: "NilClass", Parent: CObject}
	CBoolean = &Class{Name: "Boolean", Parent: CObject}

	CNumeric  = &Class{Name: "Numeric", Parent: CObject}
	CInteger  = &Class{Name: "Integer", Parent: CNumeric}
	CFloat    = &Class{Name: "Float", Parent: CNumeric}
	CComplex  = &Class{Name: "Complex", Parent: CNumeric}
	CRational = &Class{Name: "Rational", Parent: CNumeric}

	CString    = &Class{Name: "String", Parent: CObject}
	CSymbol    = &Class{Name: "Symbol", Parent: CObject}
	CRegexp    = &Class{Name: "Regexp", Parent: CObject}
	CMatchData = &Class{Name: "MatchData", Parent: CObject}
	CForeign   = &Class{Name: "Foreign", Parent: CObject}

	CException         = &Class{Name: "Exception", Parent: CObject}
	CStandardError     = &Class{Name: "StandardError", Parent: CException}
	CRuntimeError      = &Class{Name: "RuntimeError", Parent: CStandardError}
	CTypeError         = &Class{Name: "TypeError", Parent: CStandardError}
	CArgumentError     = &Class{Name: "ArgumentError", Parent: CStandardError}
	CRangeError        = &Class{Name: "RangeError", Parent: CStandardError}
	CZeroDivisionError = &Class{Name: "ZeroDivisionError", Parent: CStandardError}
	CRegexpError       = &Class{Name: "RegexpError", Parent: CStandardError}
	CFrozenError       = &Class{Name: "FrozenError", Parent: CRuntimeError}
)

// ClassOf maps any Ref to its class. Immediates resolve through the tag,
// heap objects through their header.
func ClassOf(r Ref) *Class {
	switch r.Tag() {
	case TagNil:
		return CNil
	case TagTrue, TagFalse:
		return CBoolean
	case TagFixnum:
		return CInteger
	case TagFloat:
		return CFloat
	case TagNone:
		return nil
	default:
		if o := r.Obj(); o != nil {
			return o.Class()
		}
		return nil
	}
}

// ClassName returns the runtime's reported class name for a Ref, used by
// conversion error messages.
func ClassName(r Ref) string {
	if c := ClassOf(r); c != nil {
		return c.Name
	}
	return "Object"
}
