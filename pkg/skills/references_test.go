package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReference(t *testing.T, skillDir, name, content string) {
	t.Helper()
	refsDir := filepath.Join(skillDir, "references")
	require.NoError(t, os.MkdirAll(refsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refsDir, name), []byte(content), 0o644))
}

func TestCollectReferences(t *testing.T) {
	skillDir := t.TempDir()

	writeReference(t, skillDir, "routing.md", "# Routing Deep Dive\n\nDetails.\n")
	writeReference(t, skillDir, "api-cheatsheet.md", "No heading here, just prose.\n")
	writeReference(t, skillDir, "notes.txt", "# Not markdown\n")

	refs, err := collectReferences(skillDir)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	// Sorted by filename; titles come from the first H1 or the filename.
	assert.Equal(t, Reference{Title: "Api Cheatsheet", File: "references/api-cheatsheet.md"}, refs[0])
	assert.Equal(t, Reference{Title: "Routing Deep Dive", File: "references/routing.md"}, refs[1])
}

func TestCollectReferencesIgnoresNestedFiles(t *testing.T) {
	skillDir := t.TempDir()

	writeReference(t, skillDir, "top-level.md", "# Top Level\n")
	nested := filepath.Join(skillDir, "references", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "hidden.md"), []byte("# Hidden\n"), 0o644))

	refs, err := collectReferences(skillDir)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "references/top-level.md", refs[0].File)
}

func TestCollectReferencesMissingDir(t *testing.T) {
	refs, err := collectReferences(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.NotNil(t, refs)
}

func TestInferTitle(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("uses first H1", func(t *testing.T) {
		path := filepath.Join(tmpDir, "guide.md")
		require.NoError(t, os.WriteFile(path, []byte("intro line\n\n# The Real Title\n\n# Second Heading\n"), 0o644))
		assert.Equal(t, "The Real Title", inferTitle(path))
	})

	t.Run("falls back to filename", func(t *testing.T) {
		path := filepath.Join(tmpDir, "eas-build_setup.md")
		require.NoError(t, os.WriteFile(path, []byte("no headings\n"), 0o644))
		assert.Equal(t, "Eas Build Setup", inferTitle(path))
	})

	t.Run("missing file falls back to filename", func(t *testing.T) {
		assert.Equal(t, "Gone Missing", inferTitle(filepath.Join(tmpDir, "gone-missing.md")))
	})
}
