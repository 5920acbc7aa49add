// Package preset reads INI-like preset-definition files into an immutable
// table of named sections.
//
// A section header is either [name] for options shared by both run modes or
// [mode:name] for options exclusive to one mode. Body lines are bare option
// names (flags) or name=value pairs, split at the first '='. Blank lines and
// lines starting with '#' or ';' are ignored.
//
// The table is built once per invocation from the supplied file list, in
// order. Later files may add new sections, but a colliding section key is a
// hard error reported with both file paths: presets are meant to be
// unambiguous per name, so nothing ever shadows silently.
package preset
