package main

import (
	"fmt"
	"os"

	"github.com/expo-skills/skillsindex/pkg/index"
	"github.com/expo-skills/skillsindex/pkg/presenter"
	"github.com/expo-skills/skillsindex/pkg/skills"
	"github.com/spf13/cobra"
)

// BuildConfig holds configuration for the build command
type BuildConfig struct {
	Root     string
	Output   string
	Excludes []string
}

// NewBuildConfig creates a BuildConfig with default values
func NewBuildConfig() *BuildConfig {
	return &BuildConfig{
		Root:   ".",
		Output: "docs/skills.json",
	}
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the skills manifest",
	Long: `Scan the repository root for skill folders and write the aggregated
manifest. Folders whose SKILL.md is missing frontmatter or required fields
are skipped with a warning; the build still succeeds.

Examples:
  skillsindex build
  skillsindex build --root ../skills --out docs/skills.json
  skillsindex build --exclude 'wip-*'`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getBuildConfigFromFlags(cmd)

		idx, err := buildIndex(cmd, config)
		if err != nil {
			os.Exit(1)
		}

		if err := idx.Write(config.Output); err != nil {
			presenter.Error(err, "Failed to write manifest")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("%s -> %s", idx.Summary(), config.Output))
	},
}

func init() {
	defaults := NewBuildConfig()
	buildCmd.Flags().StringP("root", "r", defaults.Root, "Repository root to scan")
	buildCmd.Flags().StringP("out", "o", defaults.Output, "Manifest output path")
	buildCmd.Flags().StringSliceP("exclude", "x", defaults.Excludes, "Folder name patterns to skip (glob)")
}

func getBuildConfigFromFlags(cmd *cobra.Command) *BuildConfig {
	config := NewBuildConfig()
	if root, err := cmd.Flags().GetString("root"); err == nil && root != "" {
		config.Root = root
	}
	if out, err := cmd.Flags().GetString("out"); err == nil && out != "" {
		config.Output = out
	}
	if excludes, err := cmd.Flags().GetStringSlice("exclude"); err == nil {
		config.Excludes = excludes
	}
	return config
}

// buildIndex runs one scan and reports skipped folders. Fatal problems are
// presented here; the caller only decides how to exit.
func buildIndex(cmd *cobra.Command, config *BuildConfig) (*index.Index, error) {
	builder, err := index.NewBuilder(
		skills.WithRoot(config.Root),
		skills.WithExcludes(config.Excludes...),
	)
	if err != nil {
		presenter.Error(err, "Invalid configuration")
		return nil, err
	}

	idx, err := builder.Build(cmd.Context())
	if err != nil {
		presenter.Error(err, "Failed to scan skills root")
		return nil, err
	}

	for _, p := range idx.Skipped {
		presenter.Warning(fmt.Sprintf("Skipping %s: %v", p.Folder, p.Err))
	}

	return idx, nil
}
