package core

import (
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/karstlang/karst/internal/config"
)

// Runtime owns a heap of boxed values, the per-runtime symbol table, and the
// named global roots. It is not reentrant from independent goroutines: hosts
// running concurrent callers must serialize on Lock/Unlock, the runtime's
// equivalent of a global interpreter lock.
type Runtime struct {
	id  string
	cfg config.Config
	log *logrus.Entry

	mu     sync.Mutex
	closed atomic.Bool

	symbols map[string]*Symbol
	globals map[string]Ref
	pins    map[*pin]struct{}
}

// pin is an explicit GC root registration for a Ref that must outlive the
// native call frame that introduced it.
type pin struct {
	ref Ref
}

// New initializes a runtime. The returned handle is the only way to reach
// the runtime's primitives; after Close every Ref it issued is invalid.
func New(cfg config.Config) *Runtime {
	cfg = cfg.Normalized()

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if cfg.Trace {
		logger.SetLevel(logrus.DebugLevel)
	}

	rt := &Runtime{
		id:      uuid.NewString(),
		cfg:     cfg,
		symbols: make(map[string]*Symbol, cfg.SymbolCapacity),
		globals: make(map[string]Ref),
		pins:    make(map[*pin]struct{}),
	}
	rt.log = logger.WithField("runtime", rt.id)
	rt.log.Debug("runtime initialized")
	return rt
}

// ID returns the runtime's instance id.
func (rt *Runtime) ID() string { return rt.id }

// Lock serializes host entry into the runtime. All primitive calls between
// Lock and Unlock observe a single active execution context.
func (rt *Runtime) Lock()   { rt.mu.Lock() }
func (rt *Runtime) Unlock() { rt.mu.Unlock() }

// Close tears the runtime down. Every Ref issued before Close becomes
// invalid; fallible operations on a closed runtime raise RuntimeError,
// everything else is a host contract violation.
func (rt *Runtime) Close() {
	if rt.closed.Swap(true) {
		return
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if n := len(rt.pins); n > 0 {
		rt.log.Warnf("runtime closed with %d unreleased pins", n)
	}
	rt.symbols = nil
	rt.globals = nil
	rt.pins = nil
	rt.log.Debug("runtime closed")
}

// Closed reports whether Close has run.
func (rt *Runtime) Closed() bool { return rt.closed.Load() }

// checkOpen raises RuntimeError when the runtime has been torn down. Called
// by every raising primitive; infallible accessors skip it and document the
// contract instead.
func (rt *Runtime) checkOpen() {
	if rt.closed.Load() {
		rt.Raise(CRuntimeError, "use of closed runtime %s", rt.id)
	}
}

// Pin registers ref as an explicit GC root and returns its release func.
// Use it for refs that must survive past the call frame that obtained them.
func (rt *Runtime) Pin(ref Ref) (release func()) {
	rt.checkOpen()
	p := &pin{ref: ref}
	rt.pins[p] = struct{}{}
	return func() {
		if rt.closed.Load() {
			return
		}
		delete(rt.pins, p)
	}
}

// SetGlobal roots a value under a name, replacing any previous binding.
// A nil ref unroots the name.
func (rt *Runtime) SetGlobal(name string, ref Ref) {
	rt.checkOpen()
	if ref.IsZero() || ref.IsNil() {
		delete(rt.globals, name)
		return
	}
	rt.globals[name] = ref
}

// GetGlobal looks a named root up.
func (rt *Runtime) GetGlobal(name string) (Ref, bool) {
	rt.checkOpen()
	ref, ok := rt.globals[name]
	return ref, ok
}

// Allocation primitives. These cannot fail the tag check by construction:
// the object is created with the advertised tag.

func (rt *Runtime) NewString(s string) Ref {
	rt.checkOpen()
	return ObjRef(&String{basic: basic{class: CString}, Val: s})
}

// Intern returns the symbol for name, allocating it on first use. Two
// interned symbols with the same name are reference-identical.
func (rt *Runtime) Intern(name string) Ref {
	rt.checkOpen()
	if sym, ok := rt.symbols[name]; ok {
		return ObjRef(sym)
	}
	sym := &Symbol{basic: basic{class: CSymbol}, Name: name}
	rt.symbols[name] = sym
	return ObjRef(sym)
}

func (rt *Runtime) NewBignum(v *big.Int) Ref {
	rt.checkOpen()
	return ObjRef(&Bignum{basic: basic{class: CInteger}, Val: new(big.Int).Set(v)})
}

func (rt *Runtime) NewForeign(v any) Ref {
	rt.checkOpen()
	return ObjRef(&Foreign{basic: basic{class: CForeign}, Val: v})
}
