// Package app wires the front end together: it validates the configuration
// handed over by the CLI layer, builds the logger, loads the preset table,
// and runs the parse → resolve → build → drive pipeline for one invocation.
package app
