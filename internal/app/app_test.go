package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/stanza/internal/registry"
)

type recorder struct {
	mode  registry.Mode
	args  []string
	calls int
}

func (r *recorder) Run(_ context.Context, mode registry.Mode, args []string) error {
	r.calls++
	r.mode = mode
	r.args = append([]string(nil), args...)
	return nil
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Mode: "deploy", DriverPath: "driver"})
	require.Error(t, err)

	_, err = NewConfig(Config{Mode: registry.ModeCompose})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Mode: registry.ModeCompose, DriverPath: "driver"})
	require.NoError(t, err)
	assert.Equal(t, registry.ModeCompose, cfg.Mode)
}

func TestRunExpandsPresetFileDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ini"), []byte("[other]\nclean\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ini"), []byte("[dev]\ntest\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a preset file"), 0o644))

	cfg, err := NewConfig(Config{
		Mode:        registry.ModeCompose,
		Preset:      "dev",
		PresetFiles: []string{dir},
		DriverPath:  "driver",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	rec := &recorder{}
	require.NoError(t, New(out, cfg, rec).Run(context.Background()))

	require.Equal(t, 1, rec.calls)
	assert.Equal(t, registry.ModeCompose, rec.mode)
	assert.Equal(t, []string{"--test"}, rec.args)
}

func TestRunShowPresetsSkipsResolution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "p.ini")
	require.NoError(t, os.WriteFile(path, []byte("[beta]\n[Alpha]\n"), 0o644))

	cfg, err := NewConfig(Config{
		Mode:        registry.ModeCompose,
		ShowPresets: true,
		PresetFiles: []string{path},
		DriverPath:  "driver",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	rec := &recorder{}
	require.NoError(t, New(out, cfg, rec).Run(context.Background()))

	assert.Equal(t, 0, rec.calls)
	assert.Contains(t, out.String(), "Alpha")
	assert.Contains(t, out.String(), "beta")
}
