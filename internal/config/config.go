// Package config holds the runtime tuning knobs and their karst.yaml
// loader.
//
// Everything here has a working default: an embedding host can pass the zero
// Config and get a quiet runtime. The file form exists for hosts that want
// to flip tracing or resize tables without recompiling.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level karst.yaml configuration.
type Config struct {
	// LogLevel sets the runtime's diagnostic verbosity
	// (panic, fatal, error, warn, info, debug, trace).
	LogLevel string `yaml:"log_level,omitempty"`

	// Trace forces debug-level logging of primitive activity
	// (raises, teardown, leaked pins) regardless of LogLevel.
	Trace bool `yaml:"trace,omitempty"`

	// SymbolCapacity preallocates the per-runtime symbol table.
	SymbolCapacity int `yaml:"symbol_capacity,omitempty"`

	// MaxBacktrace caps the native frames captured per exception.
	MaxBacktrace int `yaml:"max_backtrace,omitempty"`
}

// Default returns the configuration an embedding host gets when it provides
// nothing.
func Default() Config {
	return Config{
		LogLevel:       "warn",
		SymbolCapacity: 64,
		MaxBacktrace:   16,
	}
}

// Normalized fills unset fields with defaults and validates the rest.
// Invalid values are replaced, not rejected: a bad config must never keep a
// runtime from starting.
func (c Config) Normalized() Config {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.SymbolCapacity <= 0 {
		c.SymbolCapacity = def.SymbolCapacity
	}
	if c.MaxBacktrace <= 0 {
		c.MaxBacktrace = def.MaxBacktrace
	}
	return c
}

// Load reads a karst.yaml file. Unknown fields are an error so typos
// surface instead of silently configuring nothing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes config from raw yaml.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c.Normalized(), nil
}
