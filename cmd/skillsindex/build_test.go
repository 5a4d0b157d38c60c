package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuildFlagSet(t *testing.T) *cobra.Command {
	t.Helper()
	defaults := NewBuildConfig()
	cmd := &cobra.Command{}
	cmd.Flags().StringP("root", "r", defaults.Root, "")
	cmd.Flags().StringP("out", "o", defaults.Output, "")
	cmd.Flags().StringSliceP("exclude", "x", defaults.Excludes, "")
	return cmd
}

func TestNewBuildConfig(t *testing.T) {
	config := NewBuildConfig()
	assert.Equal(t, ".", config.Root)
	assert.Equal(t, "docs/skills.json", config.Output)
	assert.Empty(t, config.Excludes)
}

func TestGetBuildConfigFromFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := newBuildFlagSet(t)
		config := getBuildConfigFromFlags(cmd)
		assert.Equal(t, ".", config.Root)
		assert.Equal(t, "docs/skills.json", config.Output)
	})

	t.Run("custom values", func(t *testing.T) {
		cmd := newBuildFlagSet(t)
		require.NoError(t, cmd.Flags().Set("root", "../skills"))
		require.NoError(t, cmd.Flags().Set("out", "out/manifest.json"))
		require.NoError(t, cmd.Flags().Set("exclude", "wip-*"))

		config := getBuildConfigFromFlags(cmd)
		assert.Equal(t, "../skills", config.Root)
		assert.Equal(t, "out/manifest.json", config.Output)
		assert.Equal(t, []string{"wip-*"}, config.Excludes)
	})

	t.Run("missing flags fall back to defaults", func(t *testing.T) {
		config := getBuildConfigFromFlags(&cobra.Command{})
		assert.Equal(t, ".", config.Root)
		assert.Equal(t, "docs/skills.json", config.Output)
	})
}
