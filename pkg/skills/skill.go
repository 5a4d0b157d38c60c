// Package skills discovers documentation skills in a repository. A skill is
// a directory containing a SKILL.md file whose YAML frontmatter describes
// the skill's name and purpose; optional references/, scripts/, and
// templates/ subfolders carry supporting material.
package skills

// SkillFileName is the markdown file that marks a directory as a skill.
const SkillFileName = "SKILL.md"

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string            // Unique name from frontmatter
	Description string            // Brief description from frontmatter
	Folder      string            // Directory name under the repository root
	Directory   string            // Full path to the skill directory
	Metadata    map[string]string // Extra scalar frontmatter keys, passed through unchanged
	References  []Reference       // Supporting documents under references/
}

// Reference points to a supporting markdown document inside a skill folder.
type Reference struct {
	Title string `json:"title"`
	File  string `json:"file"`
}

// Problem records why a skill folder was left out of the index.
type Problem struct {
	Folder string
	Err    error
}
