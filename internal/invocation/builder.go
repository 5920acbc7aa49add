// Package invocation renders a resolved option set into the literal argument
// vector for the downstream build driver.
package invocation

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/stanza/internal/registry"
	"github.com/vk/stanza/internal/resolver"
)

// Error reports an inconsistency between the resolved set and the registry.
// By the time the builder runs every name has been validated, so this is an
// internal defect rather than a user error.
type Error struct {
	Option string
	Detail string
}

func (e *Error) Error() string {
	if e.Option == "" {
		return "internal invocation error: " + e.Detail
	}
	return fmt.Sprintf("internal invocation error: option %q: %s", e.Option, e.Detail)
}

// Build converts the set into argv form. Flags become --name, valued options
// become a --name value pair, and pass-through tokens come last in their
// original relative order.
//
// The walk follows registry declaration order, not set iteration order, so
// two resolutions with the same effective options always generate the same
// vector.
func Build(set *resolver.Set, reg *registry.Registry, mode registry.Mode) ([]string, error) {
	args := make([]string, 0, 2*set.Len()+len(set.PassThrough()))
	rendered := 0

	for _, def := range reg.Options() {
		v, ok := set.Value(def.Name)
		if !ok {
			continue
		}
		if !def.Modes.Applies(mode) {
			return nil, &Error{Option: def.Name, Detail: fmt.Sprintf("resolved for %s mode but not applicable to it", mode)}
		}
		rendered++

		if def.Arity == registry.Flag {
			if v.False() {
				continue
			}
			args = append(args, "--"+def.Name)
			continue
		}

		str, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, &Error{Option: def.Name, Detail: fmt.Sprintf("cannot render %s value as a string", v.Type().FriendlyName())}
		}
		args = append(args, "--"+def.Name, str.AsString())
	}

	// Every named entry must have been rendered; anything left over carries
	// a name the registry does not know, which resolution should have
	// rejected.
	if rendered != set.Len() {
		return nil, &Error{Option: "", Detail: "resolved set contains options absent from the registry"}
	}

	args = append(args, set.PassThrough()...)
	return args, nil
}
