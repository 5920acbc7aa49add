// Package testutil provides the shared harness for exercising the front end
// end to end: temp-dir preset fixtures, a recording driver, and a
// thread-safe output buffer.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stanza/internal/app"
	"github.com/vk/stanza/internal/cli"
	"github.com/vk/stanza/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecorderDriver implements driver.Driver and records the hand-off instead
// of spawning anything. Err, when set, is returned to simulate a failing
// build driver.
type RecorderDriver struct {
	Mode  registry.Mode
	Args  []string
	Calls int
	Err   error
}

// Run records the invocation.
func (d *RecorderDriver) Run(_ context.Context, mode registry.Mode, args []string) error {
	d.Calls++
	d.Mode = mode
	d.Args = append([]string(nil), args...)
	return d.Err
}

// File is one preset file fixture. Order matters: the harness passes --file
// flags in slice order, which is the table-construction order.
type File struct {
	Name    string
	Content string
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Output string
	Err    error
	Driver *RecorderDriver
}

// RunApp writes the preset fixtures to a temp directory, tokenizes the given
// command line (mode first, then one --file per fixture, then extra), and
// runs the app against a recording driver.
func RunApp(t *testing.T, mode string, files []File, extra ...string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	args := []string{mode, "--log-level", "debug"}
	for _, f := range files {
		path := filepath.Join(tmpDir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(f.Content), 0o644))
		args = append(args, "--file", path)
	}
	args = append(args, extra...)

	out := &SafeBuffer{}
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return &HarnessResult{Output: out.String(), Err: err}
	}
	require.False(t, shouldExit, "harness command lines must not request a clean exit")

	rec := &RecorderDriver{}
	testApp := app.New(out, cfg, rec)
	runErr := testApp.Run(context.Background())

	return &HarnessResult{Output: out.String(), Err: runErr, Driver: rec}
}
