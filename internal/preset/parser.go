package preset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/stanza/internal/ctxlog"
	"github.com/vk/stanza/internal/registry"
)

// ParseFiles reads every supplied preset file, in order, into a single
// table. Any file, syntax, or collision error is fatal: the tool cannot
// proceed with a partially parsed configuration.
func ParseFiles(ctx context.Context, paths []string) (*Table, error) {
	logger := ctxlog.FromContext(ctx)
	table := NewTable()
	for _, path := range paths {
		logger.Debug("Parsing preset file.", "path", path)
		if err := parseFile(path, table); err != nil {
			return nil, err
		}
	}
	logger.Debug("Preset table constructed.", "files", len(paths), "sections", table.Len())
	return table, nil
}

func parseFile(path string, table *Table) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var current *Section
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}

		if strings.HasPrefix(text, "[") {
			key, err := parseHeader(text, path, line)
			if err != nil {
				return err
			}
			current = &Section{Key: key, File: path, Line: line}
			if err := table.add(current); err != nil {
				return err
			}
			continue
		}

		if current == nil {
			return &ParseError{File: path, Line: line, Message: fmt.Sprintf("entry %q outside any section", text)}
		}
		entry := parseEntry(text, path, line)
		if entry.Name == "" {
			return &ParseError{File: path, Line: line, Message: fmt.Sprintf("entry %q has no option name", text)}
		}
		current.Entries = append(current.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// parseHeader handles a [name] or [mode:name] line.
func parseHeader(text, path string, line int) (Key, error) {
	if !strings.HasSuffix(text, "]") {
		return Key{}, &ParseError{File: path, Line: line, Message: fmt.Sprintf("malformed section header %q", text)}
	}
	inner := strings.TrimSpace(text[1 : len(text)-1])
	if inner == "" {
		return Key{}, &ParseError{File: path, Line: line, Message: "empty section header"}
	}

	modePart, name, qualified := strings.Cut(inner, ":")
	if !qualified {
		return SharedKey(inner), nil
	}

	modePart = strings.TrimSpace(modePart)
	name = strings.TrimSpace(name)
	if name == "" {
		return Key{}, &ParseError{File: path, Line: line, Message: fmt.Sprintf("malformed section header %q: missing preset name", text)}
	}
	mode, err := registry.ParseMode(modePart)
	if err != nil {
		return Key{}, &ParseError{File: path, Line: line, Message: fmt.Sprintf("malformed section header %q: %v", text, err)}
	}
	return ModeKey(mode, name), nil
}

// parseEntry splits a body line at the first '='. A line without '=' is a
// bare flag.
func parseEntry(text, path string, line int) Entry {
	name, value, hasValue := strings.Cut(text, "=")
	entry := Entry{
		Name:     strings.TrimSpace(name),
		HasValue: hasValue,
		File:     path,
		Line:     line,
	}
	if hasValue {
		entry.Value = strings.TrimSpace(value)
	}
	return entry
}
