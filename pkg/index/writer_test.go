package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/expo-skills/skillsindex/pkg/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs", "skills.json")

	idx := &Index{Entries: []Entry{{
		Name:        "skill-a",
		Folder:      "skill-a",
		Description: "Does A",
		References:  []skills.Reference{},
	}}}
	require.NoError(t, idx.Write(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "manifest ends with a newline")
	assert.Contains(t, string(data), `"name": "skill-a"`)
}

func TestWriteOverwritesExistingManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(out, []byte("stale content"), 0o644))

	idx := &Index{Entries: []Entry{}}
	require.NoError(t, idx.Write(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "skills.json")

	idx := &Index{Entries: []Entry{}}
	require.NoError(t, idx.Write(out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "skills.json", entries[0].Name())
}

func TestWriteFailureLeavesExistingManifestUntouched(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(existing, []byte("[]\n"), 0o644))

	// A regular file where the output directory should be makes the write
	// fail before anything is staged.
	blocker := filepath.Join(dir, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	idx := &Index{Entries: []Entry{{Name: "skill-a"}}}
	err := idx.Write(filepath.Join(blocker, "skills.json"))
	require.Error(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
