package main

import (
	"fmt"
	"os"

	"github.com/expo-skills/skillsindex/pkg/index"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the manifest entry schema",
	Long: `Print the JSON Schema of one manifest entry. The manifest file itself is a
JSON array of entries ordered by folder name; this schema is the stable
contract consumed by the documentation browser.`,
	Run: func(_ *cobra.Command, _ []string) {
		out, err := index.SchemaJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating schema: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}
