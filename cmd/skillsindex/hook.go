package main

import (
	"os"
	"path/filepath"

	"github.com/expo-skills/skillsindex/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const preCommitScript = `#!/bin/sh
# Regenerate the skills manifest so the committed tree never goes stale.
skillsindex build --quiet || exit 1
git add docs/skills.json
`

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git pre-commit hook",
	Long:  `Install the git pre-commit hook that keeps the skills manifest in sync with committed skill content.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a pre-commit hook that rebuilds the manifest",
	Long: `Write .git/hooks/pre-commit so the skills manifest is rebuilt and staged
before every commit. Refuses to overwrite an existing hook unless --force is
given.`,
	Run: func(cmd *cobra.Command, _ []string) {
		force, _ := cmd.Flags().GetBool("force")
		if err := installPreCommitHook(".", force); err != nil {
			presenter.Error(err, "Failed to install pre-commit hook")
			os.Exit(1)
		}
		presenter.Success("Installed pre-commit hook")
	},
}

func init() {
	hookInstallCmd.Flags().Bool("force", false, "Overwrite an existing pre-commit hook")
	hookCmd.AddCommand(hookInstallCmd)
}

func installPreCommitHook(repoRoot string, force bool) error {
	gitDir := filepath.Join(repoRoot, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return errors.Errorf("%s is not a git repository", repoRoot)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create hooks directory")
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if !force {
		if _, err := os.Stat(hookPath); err == nil {
			return errors.Errorf("pre-commit hook already exists at %s (use --force to overwrite)", hookPath)
		}
	}

	if err := os.WriteFile(hookPath, []byte(preCommitScript), 0o755); err != nil {
		return errors.Wrap(err, "failed to write pre-commit hook")
	}

	return nil
}
