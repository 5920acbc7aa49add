// Package resolver turns a preset name, a run mode, and the command line
// into a single conflict-free, typed option set.
//
// Precedence, lowest to highest: registry defaults, preset sections (shared
// then mode-exclusive, duplicates rejected), command-line overrides. The
// command line is the one legitimate last-wins point: a human typing a flag
// directly is assumed to mean it literally. Pass-through tokens are carried
// verbatim and never validated.
//
// Resolution is deterministic: identical inputs produce an identical set,
// with no dependence on map iteration order, the clock, or the environment.
package resolver
