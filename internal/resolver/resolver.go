package resolver

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/stanza/internal/ctxlog"
	"github.com/vk/stanza/internal/preset"
	"github.com/vk/stanza/internal/registry"
)

// Override is one option supplied directly on the command line, already
// tokenized by the CLI layer.
type Override struct {
	Name     string
	Value    string
	HasValue bool
}

// Input carries everything one resolution needs. All fields are read-only
// during Resolve.
type Input struct {
	// Preset is the requested preset name. Empty means direct mode: no
	// sections are merged and the set is built from defaults, overrides,
	// and pass-through alone.
	Preset string
	Mode   registry.Mode

	Table    *preset.Table
	Registry *registry.Registry

	// Substitutions feed ${name} placeholders in option values.
	Substitutions map[string]string

	Overrides   []Override
	PassThrough []string
}

// Resolve merges the preset sections with the command line into one typed
// option set. Any error is fatal; the invocation builder never sees a
// partial result.
func Resolve(ctx context.Context, in Input) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	set := newSet()

	if in.Preset != "" {
		if err := mergePreset(in, set); err != nil {
			return nil, err
		}
		logger.Debug("Preset sections merged.", "preset", in.Preset, "mode", in.Mode, "options", set.Len())
	}

	// Registry defaults sit below everything else and never conflict.
	for _, def := range in.Registry.Options() {
		if def.Default == nil || set.Has(def.Name) || !def.Modes.Applies(in.Mode) {
			continue
		}
		set.put(def.Name, *def.Default, SourceDefault)
	}

	// The command line always wins, including over the preset.
	for _, o := range in.Overrides {
		v, err := typedValue(in, o.Name, o.Value, o.HasValue, "")
		if err != nil {
			return nil, err
		}
		set.put(o.Name, v, SourceCLI)
	}

	set.passThrough = append([]string(nil), in.PassThrough...)

	logger.Debug("Resolution complete.", "options", set.Len(), "pass_through", len(set.passThrough))
	return set, nil
}

// mergePreset folds the shared and mode-exclusive sections into the set,
// shared first. Duplicates are rejected rather than overridden: a preset
// must be internally unambiguous.
func mergePreset(in Input, set *Set) error {
	shared, ok := in.Table.Section(preset.SharedKey(in.Preset))
	if !ok {
		return &Error{Kind: PresetNotFound, Preset: in.Preset}
	}

	merged := make([]mergedEntry, 0, len(shared.Entries))
	for _, e := range shared.Entries {
		merged = append(merged, mergedEntry{Entry: e, source: SourceShared})
	}
	if modeSec, ok := in.Table.Section(preset.ModeKey(in.Mode, in.Preset)); ok {
		for _, e := range modeSec.Entries {
			merged = append(merged, mergedEntry{Entry: e, source: SourceMode})
		}
	}

	seen := make(map[string]preset.Entry, len(merged))
	for _, m := range merged {
		if first, dup := seen[m.Name]; dup {
			return &Error{
				Kind:   DuplicateOption,
				Preset: in.Preset,
				Option: m.Name,
				Detail: fmt.Sprintf("declared at %s:%d and %s:%d", first.File, first.Line, m.File, m.Line),
			}
		}
		seen[m.Name] = m.Entry

		v, err := typedValue(in, m.Name, m.Value, m.HasValue, in.Preset)
		if err != nil {
			return err
		}
		set.put(m.Name, v, m.source)
	}
	return nil
}

type mergedEntry struct {
	preset.Entry
	source Source
}

// typedValue validates one option against the registry and produces its
// typed value: registry membership, arity, mode applicability, placeholder
// expansion, and conversion to the declared type, in that order.
func typedValue(in Input, name, raw string, hasValue bool, presetName string) (cty.Value, error) {
	def, ok := in.Registry.Lookup(name)
	if !ok {
		return cty.NilVal, &Error{Kind: UnknownOption, Preset: presetName, Option: name}
	}
	if !def.Modes.Applies(in.Mode) {
		return cty.NilVal, &Error{
			Kind:   ModeMismatch,
			Preset: presetName,
			Option: name,
			Detail: fmt.Sprintf("not applicable in %s mode", in.Mode),
		}
	}

	if def.Arity == registry.Flag {
		if hasValue {
			return cty.NilVal, &Error{
				Kind:   ArityMismatch,
				Preset: presetName,
				Option: name,
				Detail: "flag option does not take a value",
			}
		}
		return cty.True, nil
	}

	if !hasValue {
		return cty.NilVal, &Error{
			Kind:   ArityMismatch,
			Preset: presetName,
			Option: name,
			Detail: "option requires a value",
		}
	}

	expanded, err := expand(raw, in.Substitutions, presetName, name)
	if err != nil {
		return cty.NilVal, err
	}
	v, convErr := convert.Convert(cty.StringVal(expanded), def.Type)
	if convErr != nil {
		return cty.NilVal, &Error{
			Kind:   InvalidValue,
			Preset: presetName,
			Option: name,
			Detail: fmt.Sprintf("%q is not a valid %s", expanded, def.Type.FriendlyName()),
		}
	}
	return v, nil
}

// expand replaces ${name} placeholders in a value. An unresolved placeholder
// is an error, never passed along literally.
func expand(raw string, subs map[string]string, presetName, option string) (string, error) {
	var out []byte
	for i := 0; i < len(raw); {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			end := -1
			for j := i + 2; j < len(raw); j++ {
				if raw[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return "", &Error{
					Kind:   UnknownSubstitution,
					Preset: presetName,
					Option: option,
					Detail: fmt.Sprintf("unterminated placeholder in %q", raw),
				}
			}
			key := raw[i+2 : end]
			val, ok := subs[key]
			if !ok {
				return "", &Error{
					Kind:   UnknownSubstitution,
					Preset: presetName,
					Option: option,
					Detail: fmt.Sprintf("no substitution supplied for ${%s}", key),
				}
			}
			out = append(out, val...)
			i = end + 1
			continue
		}
		out = append(out, raw[i])
		i++
	}
	return string(out), nil
}
