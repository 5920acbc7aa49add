package preset

import "fmt"

// FileError reports a preset file that could not be read at all.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("preset file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports malformed preset syntax with its exact location.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// DuplicateSectionError reports a section key defined more than once, either
// within one file or across the supplied file list. Both definition sites are
// named so the user can pick which one to keep.
type DuplicateSectionError struct {
	Key        Key
	FirstFile  string
	FirstLine  int
	SecondFile string
	SecondLine int
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("duplicate preset section [%s]: defined at %s:%d and %s:%d",
		e.Key, e.FirstFile, e.FirstLine, e.SecondFile, e.SecondLine)
}
