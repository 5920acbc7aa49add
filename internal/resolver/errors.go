package resolver

import "fmt"

// Kind classifies a resolution failure.
type Kind int

const (
	// PresetNotFound: the requested preset has no shared section.
	PresetNotFound Kind = iota
	// DuplicateOption: the same option appears twice in the merged preset.
	DuplicateOption
	// UnknownOption: the option is not in the registry and not pass-through.
	UnknownOption
	// ArityMismatch: a flag carries a value, or a valued option has none.
	ArityMismatch
	// ModeMismatch: the option is not applicable to the requested mode.
	ModeMismatch
	// InvalidValue: the value does not convert to the option's declared type.
	InvalidValue
	// UnknownSubstitution: a value placeholder has no supplied substitution.
	UnknownSubstitution
)

func (k Kind) String() string {
	switch k {
	case PresetNotFound:
		return "preset not found"
	case DuplicateOption:
		return "duplicate option"
	case UnknownOption:
		return "unknown option"
	case ArityMismatch:
		return "arity mismatch"
	case ModeMismatch:
		return "mode mismatch"
	case InvalidValue:
		return "invalid value"
	case UnknownSubstitution:
		return "unknown substitution"
	}
	return "resolution error"
}

// Error is a fatal resolution failure. It names the offending preset and
// option so the message alone is enough to locate the problem.
type Error struct {
	Kind   Kind
	Preset string
	Option string
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Option != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Option)
	}
	if e.Preset != "" {
		msg = fmt.Sprintf("%s (preset %q)", msg, e.Preset)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}
