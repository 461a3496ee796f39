package karst

import (
	"github.com/karstlang/karst/internal/core"
)

// Regexp is a Value checked to carry the runtime's regexp tag.
type Regexp struct{ Value }

func (Regexp) objectLike() {}

// RegexpFromValue returns the wrapper iff v's runtime tag is regexp.
func RegexpFromValue(v Value) (Regexp, bool) {
	if v.ref.Tag() == core.TagRegexp {
		return Regexp{v}, true
	}
	return Regexp{}, false
}

// NewRegexp compiles a pattern in the runtime. Invalid syntax surfaces as a
// RegexpError-kind error.
func NewRegexp(rt *Runtime, pattern string) (Regexp, error) {
	return Protect(rt, func() Regexp {
		return Regexp{rt.wrap(rt.core.NewRegexp(pattern))}
	})
}

// Source returns the pattern text.
func (r Regexp) Source() string {
	return r.ref.Obj().(*core.Regexp).Source
}

// Match runs the pattern against subject. ok is false on a miss.
func (r Regexp) Match(subject string) (m Match, ok bool, err error) {
	ref, err := Protect(r.rt, func() core.Ref {
		return r.rt.core.RegexpMatch(r.ref, r.rt.core.NewString(subject))
	})
	if err != nil {
		return Match{}, false, err
	}
	if ref.IsNil() {
		return Match{}, false, nil
	}
	return matchUnchecked(r.rt.wrap(ref)), true, nil
}

// Match is a Value checked to carry the runtime's match-data tag. Beyond
// recovering the pattern that produced it, everything it supports comes from
// the generic object capability: inspect, class name, the string-conversion
// protocol.
type Match struct{ Value }

func (Match) objectLike() {}

// Regexp returns the pattern that produced this match.
func (m Match) Regexp() Regexp {
	return Regexp{m.rt.wrap(m.ref.Obj().(*core.MatchData).Pattern)}
}

// MatchFromValue returns the wrapper iff v's runtime tag is match data.
func MatchFromValue(v Value) (Match, bool) {
	if v.ref.Tag() == core.TagMatch {
		return Match{v}, true
	}
	return Match{}, false
}

// matchUnchecked skips the tag check. Only for refs just produced by the
// kernel's match primitive.
func matchUnchecked(v Value) Match { return Match{v} }
