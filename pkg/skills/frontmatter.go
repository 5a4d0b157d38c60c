package skills

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

var (
	// ErrNoFrontmatter indicates a SKILL.md without a leading --- block.
	ErrNoFrontmatter = errors.New("missing frontmatter")
	// ErrMissingName indicates frontmatter without a name field.
	ErrMissingName = errors.New("skill name is required in frontmatter")
	// ErrMissingDescription indicates frontmatter without a description field.
	ErrMissingDescription = errors.New("skill description is required in frontmatter")
)

// requiredFields holds the frontmatter keys every skill must provide.
type requiredFields struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// parseSkillFile reads a SKILL.md file and extracts its frontmatter.
func parseSkillFile(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}
	return parseFrontmatter(content)
}

func parseFrontmatter(content []byte) (*Skill, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, ErrNoFrontmatter
	}

	var fields requiredFields
	var decodeMeta mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fields,
		Metadata:         &decodeMeta,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create frontmatter decoder")
	}
	if err := decoder.Decode(metaData); err != nil {
		return nil, errors.Wrap(err, "failed to decode frontmatter")
	}

	if fields.Name == "" {
		return nil, ErrMissingName
	}
	if fields.Description == "" {
		return nil, ErrMissingDescription
	}

	return &Skill{
		Name:        fields.Name,
		Description: fields.Description,
		Metadata:    passthroughFields(metaData, decodeMeta.Unused),
	}, nil
}

// passthroughFields keeps unknown scalar frontmatter keys (license,
// compatibility, ...) so downstream consumers see them unchanged. Nested
// structures are not part of the manifest contract and are dropped.
func passthroughFields(metaData map[string]interface{}, unused []string) map[string]string {
	if len(unused) == 0 {
		return nil
	}

	extra := make(map[string]string)
	for _, key := range unused {
		switch v := metaData[key].(type) {
		case string:
			extra[key] = v
		case bool, int, int64, uint64, float64:
			extra[key] = fmt.Sprintf("%v", v)
		}
	}

	if len(extra) == 0 {
		return nil
	}
	return extra
}
