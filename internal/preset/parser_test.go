package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/stanza/internal/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFiles(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "presets.ini", `
# Developer preset.
[dev]
test
benchmark
debug
ninja

; Mode-exclusive additions.
[compose:dev]
developer-build

[release]
jobs=8
repository = anthem
cmake-generator=Unix Makefiles
`)

	table, err := ParseFiles(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	dev, ok := table.Section(SharedKey("dev"))
	require.True(t, ok)
	require.Len(t, dev.Entries, 4)
	for i, want := range []string{"test", "benchmark", "debug", "ninja"} {
		assert.Equal(t, want, dev.Entries[i].Name)
		assert.False(t, dev.Entries[i].HasValue)
	}
	assert.Equal(t, path, dev.Entries[0].File)
	assert.Equal(t, 4, dev.Entries[0].Line)

	devCompose, ok := table.Section(ModeKey(registry.ModeCompose, "dev"))
	require.True(t, ok)
	require.Len(t, devCompose.Entries, 1)
	assert.Equal(t, "developer-build", devCompose.Entries[0].Name)

	release, ok := table.Section(SharedKey("release"))
	require.True(t, ok)
	require.Len(t, release.Entries, 3)
	assert.Equal(t, Entry{Name: "jobs", Value: "8", HasValue: true, File: path, Line: 14}, release.Entries[0])
	assert.Equal(t, "repository", release.Entries[1].Name)
	assert.Equal(t, "anthem", release.Entries[1].Value)
	// The value keeps everything after the first '='.
	assert.Equal(t, "Unix Makefiles", release.Entries[2].Value)
}

func TestParseFilesValueSplitsAtFirstEquals(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "p.ini", "[x]\nrepository=a=b=c\n")
	table, err := ParseFiles(context.Background(), []string{path})
	require.NoError(t, err)

	s, ok := table.Section(SharedKey("x"))
	require.True(t, ok)
	require.Len(t, s.Entries, 1)
	assert.Equal(t, "a=b=c", s.Entries[0].Value)
}

func TestParseFilesErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "unterminated header",
			content:  "[dev\ntest\n",
			wantLine: 1,
			wantMsg:  "malformed section header",
		},
		{
			name:     "empty header",
			content:  "[]\n",
			wantLine: 1,
			wantMsg:  "empty section header",
		},
		{
			name:     "unknown mode qualifier",
			content:  "[deploy:dev]\n",
			wantLine: 1,
			wantMsg:  "unknown mode",
		},
		{
			name:     "missing preset name",
			content:  "[compose:]\n",
			wantLine: 1,
			wantMsg:  "missing preset name",
		},
		{
			name:     "entry outside any section",
			content:  "# comment\ndebug\n",
			wantLine: 2,
			wantMsg:  "outside any section",
		},
		{
			name:     "entry with no option name",
			content:  "[dev]\n=orphan value\n",
			wantLine: 2,
			wantMsg:  "no option name",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "bad.ini", tc.content)
			_, err := ParseFiles(context.Background(), []string{path})
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, path, parseErr.File)
			assert.Equal(t, tc.wantLine, parseErr.Line)
			assert.Contains(t, parseErr.Error(), tc.wantMsg)
		})
	}
}

func TestParseFilesMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.ini")
	_, err := ParseFiles(context.Background(), []string{missing})
	require.Error(t, err)

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, missing, fileErr.Path)
}

func TestParseFilesDuplicateSectionWithinFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dup.ini", "[dev]\ntest\n[dev]\ndebug\n")
	_, err := ParseFiles(context.Background(), []string{path})
	require.Error(t, err)

	var dupErr *DuplicateSectionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "dev", dupErr.Key.Name)
	assert.Equal(t, 1, dupErr.FirstLine)
	assert.Equal(t, 3, dupErr.SecondLine)
}

func TestParseFilesDuplicateSectionAcrossFiles(t *testing.T) {
	t.Parallel()

	first := writeFile(t, "a.ini", "[dev]\ntest\n")
	second := writeFile(t, "b.ini", "[dev]\ndebug\n")

	_, err := ParseFiles(context.Background(), []string{first, second})
	require.Error(t, err)

	var dupErr *DuplicateSectionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, first, dupErr.FirstFile)
	assert.Equal(t, second, dupErr.SecondFile)
	// The message must identify both file paths.
	assert.Contains(t, err.Error(), first)
	assert.Contains(t, err.Error(), second)
}

func TestTableNames(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "names.ini", "[Zulu]\n[alpha]\n[compose:Mike]\n[configure:alpha]\n")
	table, err := ParseFiles(context.Background(), []string{path})
	require.NoError(t, err)

	// Case-insensitive sort, mode-qualified sections counted under their
	// base name, no duplicates.
	assert.Equal(t, []string{"alpha", "Mike", "Zulu"}, table.Names())
}
