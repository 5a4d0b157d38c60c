package skills

import (
	"os"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Lint checks a SKILL.md frontmatter block more strictly than discovery
// does: yaml.v3 rejects duplicate keys and reports syntax problems that the
// lenient markdown parse glosses over, and required fields must be strings.
func Lint(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read skill file")
	}

	block, ok := frontmatterBlock(string(content))
	if !ok {
		return ErrNoFrontmatter
	}

	var result *multierror.Error

	var fields map[string]interface{}
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "frontmatter is not valid YAML"))
		return result.ErrorOrNil()
	}

	if v, ok := fields["name"]; !ok {
		result = multierror.Append(result, ErrMissingName)
	} else if s, isString := v.(string); !isString || s == "" {
		result = multierror.Append(result, errors.New("name must be a non-empty string"))
	}

	if v, ok := fields["description"]; !ok {
		result = multierror.Append(result, ErrMissingDescription)
	} else if s, isString := v.(string); !isString || s == "" {
		result = multierror.Append(result, errors.New("description must be a non-empty string"))
	}

	return result.ErrorOrNil()
}

// frontmatterBlock returns the raw text between the leading --- delimiters.
func frontmatterBlock(content string) (string, bool) {
	if !strings.HasPrefix(content, "---") {
		return "", false
	}

	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
