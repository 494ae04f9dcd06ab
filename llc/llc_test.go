package llc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var jsonstring = `{
  "version": 1,
  "mediaFileName": "holiday.mp4",
  "cutSegments": [
    {
      "start": 0,
      "end": 2,
      "name": "segment 1"
    },
    {
      "start": 16.48,
      "end": 24.8,
      "name": ""
    }
  ]
}`

func TestMarshal(t *testing.T) {
	doc := New("holiday.mp4")
	doc.CutSegments = append(doc.CutSegments,
		Segment{Start: 0, End: 2, Name: "segment 1"},
		Segment{Start: 16.48, End: 24.8},
	)

	out, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, jsonstring, string(out))
}

func TestMarshalEmptyDocument(t *testing.T) {
	// No cuts must still serialize as an empty list, not null.
	out, err := Marshal(New("holiday.mp4"))
	require.NoError(t, err)
	require.Contains(t, string(out), `"cutSegments": []`)
}

func TestWriteFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.llc")
	doc := New("holiday.mp4")
	doc.CutSegments = append(doc.CutSegments, Segment{Start: 1, End: 2})

	require.NoError(t, WriteFile(dest, doc, false))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)

	expected, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, string(expected), string(written))
}

func TestWriteFileLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.llc")

	require.NoError(t, WriteFile(dest, New("holiday.mp4"), false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "out.llc", entries[0].Name())
}

func TestWriteFilePermissions(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.llc")

	require.NoError(t, WriteFile(dest, New("holiday.mp4"), false))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFileRefusesExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.llc")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

	err := WriteFile(dest, New("holiday.mp4"), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	data, readErr := os.ReadFile(dest)
	require.NoError(t, readErr)
	require.Equal(t, "old", string(data))
}

func TestWriteFileOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.llc")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

	require.NoError(t, WriteFile(dest, New("holiday.mp4"), true))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{"))
	require.Contains(t, string(data), `"mediaFileName": "holiday.mp4"`)
}

func TestWriteFileBadDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "no-such-dir", "out.llc")

	err := WriteFile(dest, New("holiday.mp4"), false)
	require.Error(t, err)
	require.NoFileExists(t, dest)
}
