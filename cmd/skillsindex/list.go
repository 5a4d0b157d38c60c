package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/expo-skills/skillsindex/pkg/presenter"
	"github.com/expo-skills/skillsindex/pkg/skills"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Long:  `List the skills found under the repository root with their names, folders, and descriptions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		root, _ := cmd.Flags().GetString("root")
		listSkills(root)
	},
}

func init() {
	listCmd.Flags().StringP("root", "r", ".", "Repository root to scan")
}

func listSkills(root string) {
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

	for _, p := range problems {
		presenter.Warning(fmt.Sprintf("Skipping %s: %v", p.Folder, p.Err))
	}

	if len(found) == 0 {
		presenter.Info("No skills found")
		return
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFOLDER\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t-----------")

	for _, skill := range found {
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Folder, description)
	}
	tw.Flush()
}
