package core

import (
	"fmt"
	"strconv"
	"strings"
)

// formatFloat prints floats the way the runtime does: shortest round-trip
// form, with a trailing .0 when the value is integral.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}

// ToS implements the runtime's string-conversion protocol. Presentation of
// boxed values always goes through here; the embedding layer never formats
// on its own, so precision and per-type conventions stay the runtime's.
func (rt *Runtime) ToS(r Ref) string {
	switch r.Tag() {
	case TagNil:
		return ""
	case TagTrue:
		return "true"
	case TagFalse:
		return "false"
	case TagFixnum:
		return strconv.FormatInt(r.AsInt(), 10)
	case TagFloat:
		return formatFloat(r.AsFloat())
	case TagBignum:
		return r.Obj().(*Bignum).Val.String()
	case TagString:
		return r.Obj().(*String).Val
	case TagSymbol:
		return r.Obj().(*Symbol).Name
	case TagComplex:
		return rt.complexToS(r.Obj().(*Complex))
	case TagRational:
		return r.Obj().(*Rational).Val.String()
	case TagRegexp:
		return "(?-mix:" + r.Obj().(*Regexp).Source + ")"
	case TagMatch:
		return r.Obj().(*MatchData).Matched()
	case TagException:
		return r.Obj().(*Exception).Msg
	case TagForeign:
		return fmt.Sprintf("%v", r.Obj().(*Foreign).Val)
	default:
		return ""
	}
}

// complexToS prints rectangular form: real, sign, |imag|, "i".
func (rt *Runtime) complexToS(c *Complex) string {
	re := rt.ToS(c.Re)
	im := c.Im
	sign := "+"
	if isNegativeNumeric(im) {
		sign = "-"
		im = rt.negNumeric(im)
	}
	return re + sign + rt.ToS(im) + "i"
}

func isNegativeNumeric(r Ref) bool {
	switch r.Tag() {
	case TagFixnum:
		return r.AsInt() < 0
	case TagFloat:
		return r.AsFloat() < 0
	case TagBignum:
		return r.Obj().(*Bignum).Val.Sign() < 0
	case TagRational:
		return r.Obj().(*Rational).Val.Sign() < 0
	default:
		return false
	}
}

// Inspect is the debugging presentation.
func (rt *Runtime) Inspect(r Ref) string {
	switch r.Tag() {
	case TagNil:
		return "nil"
	case TagString:
		return strconv.Quote(r.Obj().(*String).Val)
	case TagSymbol:
		return ":" + r.Obj().(*Symbol).Name
	case TagComplex:
		return "(" + rt.complexToS(r.Obj().(*Complex)) + ")"
	case TagRational:
		return "(" + r.Obj().(*Rational).Val.String() + ")"
	case TagRegexp:
		return "/" + r.Obj().(*Regexp).Source + "/"
	case TagMatch:
		m := r.Obj().(*MatchData)
		return fmt.Sprintf("#<MatchData %s>", strconv.Quote(m.Matched()))
	case TagException:
		e := r.Obj().(*Exception)
		return fmt.Sprintf("#<%s: %s>", e.Class().Name, e.Msg)
	case TagForeign:
		return fmt.Sprintf("#<Foreign %v>", r.Obj().(*Foreign).Val)
	default:
		return rt.ToS(r)
	}
}
