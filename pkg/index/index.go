// Package index builds and serializes the skills manifest consumed by the
// documentation browser.
package index

import (
	"context"
	"fmt"

	"github.com/expo-skills/skillsindex/pkg/logger"
	"github.com/expo-skills/skillsindex/pkg/skills"
)

// Entry is one manifest record. The JSON shape is a stable external
// contract: the manifest file is a JSON array of entries ordered by folder
// name.
type Entry struct {
	Name        string             `json:"name"`
	Folder      string             `json:"folder"`
	Description string             `json:"description"`
	Metadata    map[string]string  `json:"metadata,omitempty"`
	References  []skills.Reference `json:"references"`
}

// Index is the result of one build run.
type Index struct {
	Entries []Entry
	Skipped []skills.Problem
}

// Builder produces the manifest from a skill discovery.
type Builder struct {
	discovery *skills.Discovery
}

// NewBuilder creates a Builder over a discovery configured with the given
// options.
func NewBuilder(opts ...skills.Option) (*Builder, error) {
	discovery, err := skills.NewDiscovery(opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{discovery: discovery}, nil
}

// Build scans the root and assembles the manifest. Folders with unusable
// SKILL.md files are logged and recorded as skipped; only a missing or
// unreadable root is an error.
func (b *Builder) Build(ctx context.Context) (*Index, error) {
	found, problems, err := b.discovery.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	for _, p := range problems {
		logger.G(ctx).WithField("folder", p.Folder).WithError(p.Err).Warn("skipping skill")
	}

	entries := make([]Entry, 0, len(found))
	for _, skill := range found {
		refs := skill.References
		if refs == nil {
			refs = []skills.Reference{} // serialize as [] rather than null
		}
		entries = append(entries, Entry{
			Name:        skill.Name,
			Folder:      skill.Folder,
			Description: skill.Description,
			Metadata:    skill.Metadata,
			References:  refs,
		})
	}

	logger.G(ctx).WithFields(map[string]interface{}{
		"indexed": len(entries),
		"skipped": len(problems),
	}).Debug("manifest assembled")

	return &Index{Entries: entries, Skipped: problems}, nil
}

// Summary renders the user-facing result line.
func (idx *Index) Summary() string {
	if len(idx.Skipped) == 0 {
		return fmt.Sprintf("Indexed %d skill(s)", len(idx.Entries))
	}
	return fmt.Sprintf("Indexed %d skill(s), %d skipped", len(idx.Entries), len(idx.Skipped))
}
