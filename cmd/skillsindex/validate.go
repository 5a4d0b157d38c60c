package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/expo-skills/skillsindex/pkg/presenter"
	"github.com/expo-skills/skillsindex/pkg/skills"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate skill frontmatter strictly",
	Long: `Check every skill folder's SKILL.md frontmatter. This is stricter than
build: duplicate YAML keys, non-string required fields, and syntax problems
all fail validation. Exits non-zero when anything is wrong.`,
	Run: func(cmd *cobra.Command, _ []string) {
		root, _ := cmd.Flags().GetString("root")
		validateSkills(root)
	},
}

func init() {
	validateCmd.Flags().StringP("root", "r", ".", "Repository root to scan")
}

func validateSkills(root string) {
	discovery, err := skills.NewDiscovery(skills.WithRoot(root))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	found, problems, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	var result *multierror.Error

	for _, p := range problems {
		result = multierror.Append(result, errors.Wrapf(p.Err, "skill %q", p.Folder))
	}

	for _, skill := range found {
		skillPath := filepath.Join(skill.Directory, skills.SkillFileName)
		if err := skills.Lint(skillPath); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "skill %q", skill.Folder))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		presenter.Error(err, "Validation failed")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("All %d skill(s) are valid", len(found)))
}
