package index

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// EntrySchema reflects the JSON Schema of one manifest entry. The manifest
// file itself is an array of these.
func EntrySchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{}
	return reflector.Reflect(&Entry{})
}

// SchemaJSON renders the entry schema as indented JSON.
func SchemaJSON() (string, error) {
	data, err := json.MarshalIndent(EntrySchema(), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize schema")
	}
	return string(data), nil
}
