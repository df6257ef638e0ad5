package config

import (
	"encoding/json"
	"sort"

	"github.com/invopop/jsonschema"
)

// schemaDraft is the dialect declared by GenerateSchema.
const schemaDraft = "https://json-schema.org/draft/2020-12/schema"

// GenerateSchema returns the JSON Schema for agentschema.yml. Each extension
// schema becomes an optional top-level property under its key.
func GenerateSchema(extensions map[string]*jsonschema.Schema) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Unknown keys are rejected; extensions are added explicitly below.
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
	}

	// Config without the Extensions catch-all.
	type BaseConfig struct {
		OutputDir string `yaml:"output_dir,omitempty" jsonschema:"description=Directory schemas are written to; relative paths resolve against this file"`
		Indent    string `yaml:"indent,omitempty" jsonschema:"description=Indentation for pretty-printed schemas,pattern=^[ \\t]*$"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Version = schemaDraft
	schema.Title = "agentschema Configuration"
	schema.Description = "Schema for agentschema.yml and agentschema.toml."

	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		schema.Properties.Set(key, extensions[key])
	}

	return schema
}

// MarshalSchema pretty-prints a schema.
func MarshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
