package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Mode identifies one of the two invocation contexts of the front end.
type Mode string

const (
	// ModeConfigure sets up the build environment for the project.
	ModeConfigure Mode = "configure"
	// ModeCompose runs the actual build.
	ModeCompose Mode = "compose"
)

// ModeMask describes which modes an option is applicable to.
type ModeMask uint8

const (
	MaskConfigure ModeMask = 1 << iota
	MaskCompose

	MaskBoth = MaskConfigure | MaskCompose
)

// Applies reports whether the mask covers the given mode.
func (m ModeMask) Applies(mode Mode) bool {
	switch mode {
	case ModeConfigure:
		return m&MaskConfigure != 0
	case ModeCompose:
		return m&MaskCompose != 0
	}
	return false
}

// Arity describes how many values an option carries.
type Arity int

const (
	// Flag options carry no value; their presence is the value.
	Flag Arity = iota
	// SingleValue options carry exactly one value.
	SingleValue
)

// OptionDef describes a single recognized option. Definitions are immutable
// after registry construction.
type OptionDef struct {
	Name    string
	Arity   Arity
	Modes   ModeMask
	Type    cty.Type
	Default *cty.Value
}

// Registry is the closed catalog of recognized options for one application
// instance. It is constructed once per process and read-only thereafter.
type Registry struct {
	byName map[string]*OptionDef
	order  []*OptionDef
}

// New creates a registry from the given definitions, preserving their
// declaration order. A repeated name is a programming error.
func New(defs ...OptionDef) (*Registry, error) {
	r := &Registry{byName: make(map[string]*OptionDef, len(defs))}
	for i := range defs {
		def := defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("registry: option with empty name at position %d", i)
		}
		if _, ok := r.byName[def.Name]; ok {
			return nil, fmt.Errorf("registry: option %q declared twice", def.Name)
		}
		if def.Arity == Flag && def.Type != cty.Bool {
			return nil, fmt.Errorf("registry: flag option %q must be typed bool, got %s", def.Name, def.Type.FriendlyName())
		}
		r.byName[def.Name] = &def
		r.order = append(r.order, &def)
	}
	return r, nil
}

// Lookup returns the definition for name, if registered.
func (r *Registry) Lookup(name string) (*OptionDef, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Known reports whether name is a registered option.
func (r *Registry) Known(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Options returns all definitions in declaration order. The returned slice
// must not be mutated.
func (r *Registry) Options() []*OptionDef {
	return r.order
}

// ParseMode validates a mode identifier from user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeConfigure:
		return ModeConfigure, nil
	case ModeCompose:
		return ModeCompose, nil
	}
	return "", fmt.Errorf("unknown mode %q: must be %q or %q", s, ModeConfigure, ModeCompose)
}
