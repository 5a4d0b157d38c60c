package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkillFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SkillFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLint(t *testing.T) {
	t.Run("valid skill passes", func(t *testing.T) {
		path := writeSkillFile(t, `---
name: valid-skill
description: All good
license: MIT
---

# Valid Skill
`)
		assert.NoError(t, Lint(path))
	})

	t.Run("duplicate keys rejected", func(t *testing.T) {
		path := writeSkillFile(t, `---
name: dup-skill
name: dup-skill-again
description: Duplicate name key
---
`)
		err := Lint(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid YAML")
	})

	t.Run("missing frontmatter", func(t *testing.T) {
		path := writeSkillFile(t, "# No frontmatter\n")
		assert.ErrorIs(t, Lint(path), ErrNoFrontmatter)
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		path := writeSkillFile(t, "---\nname: dangling\ndescription: never closed\n")
		assert.ErrorIs(t, Lint(path), ErrNoFrontmatter)
	})

	t.Run("missing fields are both reported", func(t *testing.T) {
		path := writeSkillFile(t, "---\nlicense: MIT\n---\n")
		err := Lint(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("non-string required field rejected", func(t *testing.T) {
		path := writeSkillFile(t, `---
name: 42
description: Numeric name
---
`)
		err := Lint(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name must be a non-empty string")
	})

	t.Run("missing file", func(t *testing.T) {
		err := Lint("/non/existent/SKILL.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read skill file")
	})
}

func TestFrontmatterBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "well-formed block",
			input:    "---\nname: a\ndescription: b\n---\nbody",
			expected: "name: a\ndescription: b",
			ok:       true,
		},
		{
			name:  "no delimiters",
			input: "# heading only",
			ok:    false,
		},
		{
			name:  "unterminated block",
			input: "---\nname: a",
			ok:    false,
		},
		{
			name:     "empty block",
			input:    "---\n---\nbody",
			expected: "",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := frontmatterBlock(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, block)
		})
	}
}
