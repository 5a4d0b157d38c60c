package skills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// reservedDirs are sibling directories that never contain skills.
var reservedDirs = map[string]struct{}{
	"docs":         {},
	"scripts":      {},
	"template":     {},
	"node_modules": {},
	"__pycache__":  {},
}

// Discovery enumerates skill folders under a repository root.
type Discovery struct {
	root     string
	excludes []glob.Glob
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoot sets the repository root to scan
func WithRoot(root string) Option {
	return func(d *Discovery) error {
		if root == "" {
			return errors.New("root must not be empty")
		}
		d.root = root
		return nil
	}
}

// WithExcludes adds glob patterns for folder names to skip
func WithExcludes(patterns ...string) Option {
	return func(d *Discovery) error {
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return errors.Wrapf(err, "invalid exclude pattern %q", pattern)
			}
			d.excludes = append(d.excludes, g)
		}
		return nil
	}
}

// NewDiscovery creates a skill discovery instance rooted at the current
// directory unless configured otherwise.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{root: "."}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Root returns the repository root being scanned
func (d *Discovery) Root() string {
	return d.root
}

// DiscoverSkills scans the root and returns the skills found in folder-name
// order, together with the folders whose SKILL.md could not be used. Only a
// missing or unreadable root is an error; per-folder failures are reported
// as problems so one broken skill never blocks the rest.
func (d *Discovery) DiscoverSkills() ([]*Skill, []Problem, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot read skills root %q", d.root)
	}

	var skills []*Skill
	var problems []Problem

	for _, entry := range entries {
		name := entry.Name()
		if d.excluded(name) {
			continue
		}

		dir := filepath.Join(d.root, name)
		info, err := os.Stat(dir) // follows symlinks
		if err != nil || !info.IsDir() {
			continue
		}

		skillPath := filepath.Join(dir, SkillFileName)
		if _, err := os.Stat(skillPath); os.IsNotExist(err) {
			continue // scaffolding folders without a SKILL.md are legal
		}

		skill, err := parseSkillFile(skillPath)
		if err != nil {
			problems = append(problems, Problem{Folder: name, Err: err})
			continue
		}

		skill.Folder = name
		skill.Directory = dir
		skill.References, err = collectReferences(dir)
		if err != nil {
			problems = append(problems, Problem{Folder: name, Err: err})
			continue
		}

		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Folder < skills[j].Folder
	})

	return skills, problems, nil
}

func (d *Discovery) excluded(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if _, ok := reservedDirs[name]; ok {
		return true
	}
	for _, g := range d.excludes {
		if g.Match(name) {
			return true
		}
	}
	return false
}
