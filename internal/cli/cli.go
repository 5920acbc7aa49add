package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/stanza/internal/app"
	"github.com/vk/stanza/internal/registry"
	"github.com/vk/stanza/internal/resolver"
)

// Version is the front end's version string, stamped at build time.
var Version = "0.3.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `stanza - a preset-driven front end for the ode build driver.

Usage:
  stanza <configure|compose> [options] [-- pass-through options]

Modes:
  configure   Set up the build environment for the project.
  compose     Run the actual build.

Options:
  --preset NAME       Expand the named preset (alias: --name).
  --file PATH         Preset file or directory; repeatable. Defaults to
                      presets/build-presets.ini when present.
  --show-presets      List the available preset names and exit.
  --expand-only       Print the expanded driver invocation without running it.
  --set NAME=VALUE    Supply a ${NAME} placeholder substitution; repeatable.
  --driver PATH       Build driver executable (default "ode-build-driver").
  --log-level LEVEL   Logging level: debug, info, warn, or error.
  --log-format FORMAT Log output format: text or json.
  -h, --help          Show this help text.
  --version           Show the version and exit.

Any other --<option>[=VALUE] token is resolved against the option catalog
and overrides the preset-declared value; the command line always wins.
Everything after -- is forwarded to the build driver verbatim.
`

// Parse tokenizes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	if len(args) == 0 {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}
	switch args[0] {
	case "-h", "--help", "help":
		fmt.Fprint(output, usageText)
		return nil, true, nil
	case "--version", "version":
		fmt.Fprintf(output, "stanza %s\n", Version)
		return nil, true, nil
	}

	mode, err := registry.ParseMode(args[0])
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := app.Config{
		Mode:          mode,
		DriverPath:    "ode-build-driver",
		LogFormat:     "text",
		LogLevel:      "info",
		Substitutions: map[string]string{},
	}

	catalog := registry.Default()
	tokens := args[1:]
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == "--" {
			cfg.PassThrough = append(cfg.PassThrough, tokens[i+1:]...)
			break
		}
		if !strings.HasPrefix(tok, "--") {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", tok)}
		}

		name, value, hasValue := strings.Cut(tok[2:], "=")
		if name == "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("malformed option %q", tok)}
		}

		// takeValue fetches the option's value from the inline =VALUE form
		// or from the following token.
		takeValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(tokens) || tokens[i+1] == "--" {
				return "", fmt.Errorf("option --%s requires a value", name)
			}
			i++
			return tokens[i], nil
		}

		switch name {
		case "help", "h":
			fmt.Fprint(output, usageText)
			return nil, true, nil
		case "version":
			fmt.Fprintf(output, "stanza %s\n", Version)
			return nil, true, nil
		case "preset", "name":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			cfg.Preset = v
		case "file":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			cfg.PresetFiles = append(cfg.PresetFiles, v)
		case "set":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			subName, subValue, ok := strings.Cut(v, "=")
			if !ok || subName == "" {
				return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("malformed substitution %q: expected NAME=VALUE", v)}
			}
			cfg.Substitutions[subName] = subValue
		case "driver":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			cfg.DriverPath = v
		case "show-presets":
			cfg.ShowPresets = true
		case "expand-only":
			cfg.ExpandOnly = true
		case "log-level":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			cfg.LogLevel = strings.ToLower(v)
		case "log-format":
			v, err := takeValue()
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
			cfg.LogFormat = strings.ToLower(v)
		default:
			// Anything else is a direct option override, resolved against
			// the catalog later. Valued options accept the two-token form
			// when the next token is not itself an option.
			ov := resolver.Override{Name: name, Value: value, HasValue: hasValue}
			if !hasValue {
				if def, known := catalog.Lookup(name); known && def.Arity == registry.SingleValue {
					if i+1 < len(tokens) && tokens[i+1] != "--" && !strings.HasPrefix(tokens[i+1], "--") {
						i++
						ov.Value = tokens[i]
						ov.HasValue = true
					}
				}
			}
			cfg.Overrides = append(cfg.Overrides, ov)
		}
	}
	slog.Debug("Arguments tokenized successfully.")

	switch cfg.LogFormat {
	case "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "mode", config.Mode, "preset", config.Preset)
	return config, false, nil
}
