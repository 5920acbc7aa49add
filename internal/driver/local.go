package driver

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/vk/stanza/internal/ctxlog"
	"github.com/vk/stanza/internal/registry"
)

// Local implements Driver by spawning the configured executable in-process,
// with the run mode as the first argument.
type Local struct {
	// Path is the build driver executable.
	Path string

	OutW io.Writer
	ErrW io.Writer
}

// NewLocal creates a local driver for the given executable path.
func NewLocal(path string, outW, errW io.Writer) *Local {
	return &Local{Path: path, OutW: outW, ErrW: errW}
}

// Run executes the build driver and waits for it to finish.
func (d *Local) Run(ctx context.Context, mode registry.Mode, args []string) error {
	logger := ctxlog.FromContext(ctx)

	call := append([]string{string(mode)}, args...)
	logger.Debug("Invoking build driver.", "path", d.Path, "command", shellquote.Join(append([]string{d.Path}, call...)...))

	cmd := exec.CommandContext(ctx, d.Path, call...)
	cmd.Stdout = d.OutW
	cmd.Stderr = d.ErrW
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build driver %s failed: %w", d.Path, err)
	}
	return nil
}

// Describe renders the full driver invocation as a copy-pasteable shell
// command, for logging and dry runs.
func Describe(path string, mode registry.Mode, args []string) string {
	call := append([]string{path, string(mode)}, args...)
	return shellquote.Join(call...)
}
