package karst

import (
	"fmt"

	"github.com/karstlang/karst/internal/config"
	"github.com/karstlang/karst/internal/core"
)

// Runtime is the embedding handle. Init it once, hand values around while it
// is open, Close it when done; every Value it issued dies with it.
//
// The runtime is not reentrant from independent goroutines. Hosts that call
// in from more than one goroutine must serialize on Lock/Unlock.
type Runtime struct {
	core *core.Runtime
}

type initOptions struct {
	cfg config.Config
	err error
}

// Option adjusts runtime initialization.
type Option func(*initOptions)

// WithConfig replaces the whole configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *initOptions) { o.cfg = cfg }
}

// WithConfigFile loads configuration from a karst.yaml path. Load errors
// surface from Init.
func WithConfigFile(path string) Option {
	return func(o *initOptions) {
		o.cfg, o.err = config.Load(path)
	}
}

// WithTrace turns on debug-level primitive tracing.
func WithTrace() Option {
	return func(o *initOptions) { o.cfg.Trace = true }
}

// Init starts a runtime and returns its handle. The handle is required
// before any operation in this package is valid.
func Init(opts ...Option) (*Runtime, error) {
	o := initOptions{cfg: config.Default()}
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return nil, fmt.Errorf("init: %w", o.err)
		}
	}
	return &Runtime{core: core.New(o.cfg)}, nil
}

// Close tears the runtime down. After Close, fallible operations return a
// RuntimeError-kind *Error; using values through infallible accessors is a
// contract violation.
func (rt *Runtime) Close() error {
	rt.core.Close()
	return nil
}

// ID returns the runtime instance id, as stamped on its log entries.
func (rt *Runtime) ID() string { return rt.core.ID() }

// Lock and Unlock serialize host entry, the embedding-side equivalent of a
// global interpreter lock. Single-goroutine hosts never need them.
func (rt *Runtime) Lock()   { rt.core.Lock() }
func (rt *Runtime) Unlock() { rt.core.Unlock() }

// Set roots a value under a global name, keeping it alive independently of
// any host stack frame. Setting nil unroots the name.
func (rt *Runtime) Set(name string, v Value) error {
	return protectErr(rt, func() {
		rt.core.SetGlobal(name, v.ref)
	})
}

// Get looks up a named global root.
func (rt *Runtime) Get(name string) (Value, error) {
	return Protect(rt, func() Value {
		ref, ok := rt.core.GetGlobal(name)
		if !ok {
			return rt.wrap(core.NilRef())
		}
		return rt.wrap(ref)
	})
}

// Bind marshals a Go value and roots it under a global name.
func (rt *Runtime) Bind(name string, val any) error {
	v, err := rt.ToValue(val)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	return rt.Set(name, v)
}

// Pin registers a value as an explicit GC root for the span until release is
// called. Use it for values that must outlive the call frame that obtained
// them.
func (rt *Runtime) Pin(v Value) (release func(), err error) {
	return Protect(rt, func() func() {
		return rt.core.Pin(v.ref)
	})
}

// Nil returns the runtime's nil.
func (rt *Runtime) Nil() Value { return rt.wrap(core.NilRef()) }

// Bool returns the runtime's true or false.
func (rt *Runtime) Bool(b bool) Value { return rt.wrap(core.BoolRef(b)) }
