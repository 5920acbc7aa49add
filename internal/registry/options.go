package registry

import "github.com/zclconf/go-cty/cty"

func strDefault(s string) *cty.Value {
	v := cty.StringVal(s)
	return &v
}

// Default is the shared catalog of options the front end accepts, either in
// preset files or directly on the command line. Declaration order here fixes
// the argument order of every generated invocation.
func Default() *Registry {
	r, err := New(
		// Options shared by both run modes.
		OptionDef{Name: "dry-run", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "jobs", Arity: SingleValue, Modes: MaskBoth, Type: cty.Number},
		OptionDef{Name: "clean", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "verbose", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "repository", Arity: SingleValue, Modes: MaskBoth, Type: cty.String},
		OptionDef{Name: "test", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "benchmark", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "debug", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "release", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "ninja", Arity: Flag, Modes: MaskBoth, Type: cty.Bool},
		OptionDef{Name: "ode-version", Arity: SingleValue, Modes: MaskBoth, Type: cty.String},
		OptionDef{Name: "anthem-version", Arity: SingleValue, Modes: MaskBoth, Type: cty.String},

		// Options valid only when configuring the build environment.
		OptionDef{Name: "cmake-generator", Arity: SingleValue, Modes: MaskConfigure, Type: cty.String, Default: strDefault("Ninja")},
		OptionDef{Name: "host-cc", Arity: SingleValue, Modes: MaskConfigure, Type: cty.String},
		OptionDef{Name: "host-cxx", Arity: SingleValue, Modes: MaskConfigure, Type: cty.String},

		// Options valid only when composing the build.
		OptionDef{Name: "developer-build", Arity: Flag, Modes: MaskCompose, Type: cty.Bool},
		OptionDef{Name: "assertions", Arity: Flag, Modes: MaskCompose, Type: cty.Bool},
		OptionDef{Name: "docs", Arity: Flag, Modes: MaskCompose, Type: cty.Bool},
		OptionDef{Name: "lint", Arity: Flag, Modes: MaskCompose, Type: cty.Bool},
	)
	if err != nil {
		// The catalog is compile-time data; a bad entry is a programmer error.
		panic(err)
	}
	return r
}
