package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/stanza/internal/ctxlog"
	"github.com/vk/stanza/internal/driver"
	"github.com/vk/stanza/internal/fsutil"
	"github.com/vk/stanza/internal/invocation"
	"github.com/vk/stanza/internal/preset"
	"github.com/vk/stanza/internal/resolver"
)

// defaultPresetFile is consulted when no --file flag is given, matching the
// conventional location inside a project checkout.
const defaultPresetFile = "presets/build-presets.ini"

// Run executes one invocation: load the preset table, resolve the option
// set, build the driver argument vector, and hand it off. Every error is
// fatal and surfaces immediately; the driver never receives a partially
// resolved invocation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "preset", a.config.Preset)

	files, err := a.presetFiles()
	if err != nil {
		return err
	}

	table, err := preset.ParseFiles(ctx, files)
	if err != nil {
		return err
	}

	if a.config.ShowPresets {
		a.logger.Info("The available presets are:")
		for _, name := range table.Names() {
			fmt.Fprintln(a.outW, name)
		}
		return nil
	}

	set, err := resolver.Resolve(ctx, resolver.Input{
		Preset:        a.config.Preset,
		Mode:          a.config.Mode,
		Table:         table,
		Registry:      a.registry,
		Substitutions: a.config.Substitutions,
		Overrides:     a.config.Overrides,
		PassThrough:   a.config.PassThrough,
	})
	if err != nil {
		return err
	}

	args, err := invocation.Build(set, a.registry, a.config.Mode)
	if err != nil {
		return err
	}

	command := driver.Describe(a.config.DriverPath, a.config.Mode, args)
	if a.config.Preset != "" {
		a.logger.Info("Using preset.", "preset", a.config.Preset, "expands_to", command)
	} else {
		a.logger.Debug("Direct invocation assembled.", "command", command)
	}

	// A dry run resolves and prints the invocation but never spawns the
	// driver, whether the flag came from the preset or the command line.
	if a.config.ExpandOnly || set.Has("dry-run") {
		fmt.Fprintln(a.outW, command)
		return nil
	}

	return a.driver.Run(ctx, a.config.Mode, args)
}

// presetFiles expands the configured preset file list: directories expand to
// their .ini files in sorted order, and an empty list falls back to the
// conventional project file when it exists.
func (a *App) presetFiles() ([]string, error) {
	paths := a.config.PresetFiles
	if len(paths) == 0 {
		if _, err := os.Stat(defaultPresetFile); err == nil {
			paths = []string{defaultPresetFile}
		} else {
			a.logger.Debug("No preset files supplied and no default file found.")
			return nil, nil
		}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &preset.FileError{Path: p, Err: err}
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := fsutil.FindFilesByExtension(p, ".ini")
		if err != nil {
			return nil, &preset.FileError{Path: p, Err: err}
		}
		files = append(files, found...)
	}
	a.logger.Debug("Preset file list expanded.", "files", files)
	return files, nil
}
