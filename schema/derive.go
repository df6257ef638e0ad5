package schema

import (
	"github.com/invopop/jsonschema"
)

// Draft is the JSON Schema dialect every emitted document declares.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// NewReflector returns the reflector used for struct types: every field
// required, no extra properties, no $id, root expanded inline.
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:                 true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}
}

// Derive builds the root schema for a job.
func Derive(job Job) *jsonschema.Schema {
	return job.Derive(NewReflector())
}

// resultSchema encodes a success-or-error result as
// oneOf [{"Ok": null}, {"Err": <error>}] with the error schema in $defs.
func resultSchema(title, errName string, errSchema *jsonschema.Schema) *jsonschema.Schema {
	okProps := jsonschema.NewProperties()
	okProps.Set("Ok", &jsonschema.Schema{Type: "null"})

	errProps := jsonschema.NewProperties()
	errProps.Set("Err", &jsonschema.Schema{Ref: "#/$defs/" + errName})

	return &jsonschema.Schema{
		Version: Draft,
		Title:   title,
		OneOf: []*jsonschema.Schema{
			{
				Type:                 "object",
				Properties:           okProps,
				Required:             []string{"Ok"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
			{
				Type:                 "object",
				Properties:           errProps,
				Required:             []string{"Err"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
		Definitions: jsonschema.Definitions{
			errName: errSchema,
		},
	}
}
