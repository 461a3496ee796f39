package core

import "regexp"

// NewRegexp compiles a pattern. Invalid syntax raises RegexpError with the
// compiler's message.
func (rt *Runtime) NewRegexp(pattern string) Ref {
	rt.checkOpen()
	re, err := regexp.Compile(pattern)
	if err != nil {
		rt.Raise(CRegexpError, "%v", err)
	}
	return ObjRef(&Regexp{basic: basic{class: CRegexp}, Source: pattern, Re: re})
}

// RegexpMatch matches rx against subject. Returns a MatchData Ref on a hit
// and nil on a miss; a non-string subject raises TypeError.
func (rt *Runtime) RegexpMatch(rx, subject Ref) Ref {
	rt.checkOpen()
	r, ok := rx.Obj().(*Regexp)
	if !ok {
		rt.TypeErrorNoConversion(rx, "Regexp")
	}
	s, ok := subject.Obj().(*String)
	if !ok {
		rt.TypeErrorNoConversion(subject, "String")
	}
	offsets := r.Re.FindStringSubmatchIndex(s.Val)
	if offsets == nil {
		return NilRef()
	}
	return ObjRef(&MatchData{
		basic:   basic{class: CMatchData},
		Subject: s.Val,
		Pattern: rx,
		Offsets: offsets,
	})
}
