package skills

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// collectReferences lists the top-level references/*.md documents of a skill
// folder in filename order. A missing references directory yields an empty
// list.
func collectReferences(skillDir string) ([]Reference, error) {
	matches, err := doublestar.Glob(os.DirFS(skillDir), "references/*.md")
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan references")
	}
	sort.Strings(matches)

	refs := make([]Reference, 0, len(matches))
	for _, match := range matches {
		refs = append(refs, Reference{
			Title: inferTitle(filepath.Join(skillDir, filepath.FromSlash(match))),
			File:  match,
		})
	}
	return refs, nil
}

// inferTitle returns the first H1 heading of a markdown file, falling back
// to a humanized form of the filename.
func inferTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return titleFromFilename(path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return titleFromFilename(path)
}

func titleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
