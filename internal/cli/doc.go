// Package cli is responsible for tokenizing command-line arguments,
// validating user input, and handling process-level concerns like exit
// codes. It translates the run mode, preset flags, direct option overrides,
// and the pass-through tail into the application's internal configuration.
package cli
