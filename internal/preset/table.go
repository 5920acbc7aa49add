package preset

import (
	"sort"
	"strings"

	"github.com/vk/stanza/internal/registry"
)

// Key identifies a section: a bare preset name holds options shared by both
// run modes, a mode-qualified key holds options exclusive to that mode.
type Key struct {
	Mode registry.Mode // empty for a shared section
	Name string
}

// SharedKey returns the key of the shared section for a preset name.
func SharedKey(name string) Key {
	return Key{Name: name}
}

// ModeKey returns the key of the mode-exclusive section for a preset name.
func ModeKey(mode registry.Mode, name string) Key {
	return Key{Mode: mode, Name: name}
}

func (k Key) String() string {
	if k.Mode == "" {
		return k.Name
	}
	return string(k.Mode) + ":" + k.Name
}

// Entry is a single raw line of a section body, before any validation
// against the option registry.
type Entry struct {
	Name     string
	Value    string
	HasValue bool

	// Definition site, for error reporting.
	File string
	Line int
}

// Section is the ordered body of one [key] block.
type Section struct {
	Key     Key
	Entries []Entry

	File string
	Line int
}

// Table maps section keys to sections. It is built once per invocation and
// read-only afterwards.
type Table struct {
	sections map[Key]*Section
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{sections: make(map[Key]*Section)}
}

// Section returns the section for key, if present.
func (t *Table) Section(key Key) (*Section, bool) {
	s, ok := t.sections[key]
	return s, ok
}

// Len returns the number of sections in the table.
func (t *Table) Len() int {
	return len(t.sections)
}

// add inserts a section, rejecting a colliding key.
func (t *Table) add(s *Section) error {
	if existing, ok := t.sections[s.Key]; ok {
		return &DuplicateSectionError{
			Key:        s.Key,
			FirstFile:  existing.File,
			FirstLine:  existing.Line,
			SecondFile: s.File,
			SecondLine: s.Line,
		}
	}
	t.sections[s.Key] = s
	return nil
}

// Names returns the distinct preset names in the table, sorted
// case-insensitively. Mode-qualified sections count under their base name.
func (t *Table) Names() []string {
	seen := make(map[string]struct{}, len(t.sections))
	var names []string
	for key := range t.sections {
		if _, ok := seen[key.Name]; ok {
			continue
		}
		seen[key.Name] = struct{}{}
		names = append(names, key.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
