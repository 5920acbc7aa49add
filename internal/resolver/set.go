package resolver

import "github.com/zclconf/go-cty/cty"

// Source records where a resolved value came from, highest-precedence last.
type Source int

const (
	SourceDefault Source = iota
	SourceShared
	SourceMode
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceShared:
		return "preset"
	case SourceMode:
		return "preset (mode section)"
	case SourceCLI:
		return "command line"
	}
	return "unknown"
}

// Set is the fully merged, typed option set for one invocation. It is built
// once, consumed by the invocation builder, and discarded.
type Set struct {
	values      map[string]cty.Value
	sources     map[string]Source
	passThrough []string
}

func newSet() *Set {
	return &Set{
		values:  make(map[string]cty.Value),
		sources: make(map[string]Source),
	}
}

// Value returns the resolved value for an option name, if present. Flags
// resolve to cty.True; absence means the flag is off.
func (s *Set) Value(name string) (cty.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Source returns where the value for name came from.
func (s *Set) Source(name string) (Source, bool) {
	src, ok := s.sources[name]
	return src, ok
}

// Has reports whether name is present in the set.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of named options in the set.
func (s *Set) Len() int {
	return len(s.values)
}

// PassThrough returns the verbatim pass-through tokens, in their original
// relative order. The returned slice must not be mutated.
func (s *Set) PassThrough() []string {
	return s.passThrough
}

func (s *Set) put(name string, v cty.Value, src Source) {
	s.values[name] = v
	s.sources[name] = src
}
