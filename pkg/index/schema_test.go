package index

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntrySchema(t *testing.T) {
	schema := EntrySchema()
	require.NotNil(t, schema)

	out, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	raw := out
	for _, field := range []string{"name", "folder", "description", "metadata", "references"} {
		assert.Contains(t, raw, `"`+field+`"`)
	}
}
