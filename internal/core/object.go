package core

import (
	"math/big"
	"regexp"
)

// Object is a heap value owned by a runtime. Each carries the class pointer
// assigned at allocation, like the basic header the runtime puts in front of
// every boxed value.
type Object interface {
	Tag() Tag
	Class() *Class
}

// basic is embedded by every heap object.
type basic struct {
	class *Class
}

func (b *basic) Class() *Class { return b.class }

// String is an immutable byte string.
type String struct {
	basic
	Val string
}

func (*String) Tag() Tag { return TagString }

// Symbol is an interned name. Interning is per runtime: two symbols with the
// same name within one runtime are the same object.
type Symbol struct {
	basic
	Name string
}

func (*Symbol) Tag() Tag { return TagSymbol }

// Bignum holds integers outside the fixnum range.
type Bignum struct {
	basic
	Val *big.Int
}

func (*Bignum) Tag() Tag { return TagBignum }

// Complex stores its parts as numeric Refs, not as condensed floats, so the
// exact values the constructor received are recoverable.
type Complex struct {
	basic
	Re Ref
	Im Ref
}

func (*Complex) Tag() Tag { return TagComplex }

// Rational is a reduced fraction.
type Rational struct {
	basic
	Val *big.Rat
}

func (*Rational) Tag() Tag { return TagRational }

// Regexp wraps a compiled pattern.
type Regexp struct {
	basic
	Source string
	Re     *regexp.Regexp
}

func (*Regexp) Tag() Tag { return TagRegexp }

// MatchData is the result of a successful regexp match.
type MatchData struct {
	basic
	Subject string
	Pattern Ref   // the Regexp that produced the match
	Offsets []int // pairs of byte offsets per group, -1 for unmatched
}

func (*MatchData) Tag() Tag { return TagMatch }

// Matched returns the whole matched substring.
func (m *MatchData) Matched() string {
	if len(m.Offsets) < 2 || m.Offsets[0] < 0 {
		return ""
	}
	return m.Subject[m.Offsets[0]:m.Offsets[1]]
}

// Exception is a raised (or raisable) error object. Once raised it travels
// through the non-local jump machinery unchanged, so class identity and
// backtrace survive to the trap point.
type Exception struct {
	basic
	Msg       string
	Backtrace []string
}

func (*Exception) Tag() Tag { return TagException }

// Foreign boxes an arbitrary host value the runtime has no tag for.
type Foreign struct {
	basic
	Val any
}

func (*Foreign) Tag() Tag { return TagForeign }
