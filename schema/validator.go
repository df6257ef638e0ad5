package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/grovetools/agentschema/errors"
)

// Validator validates documents against one emitted schema.
type Validator struct {
	name   string
	schema *jsonschema.Schema
}

// NewValidator compiles rendered schema text registered under name.
func NewValidator(name string, schemaData []byte) (*Validator, error) {
	url := name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", url, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", url, err)
	}

	return &Validator{name: name, schema: compiled}, nil
}

// Validator renders the named schema and compiles it.
func (e *Exporter) Validator(name string) (*Validator, error) {
	job, err := e.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := e.Render(job)
	if err != nil {
		return nil, err
	}
	return NewValidator(job.Name, data)
}

// ValidateDocument validates raw JSON text.
func (v *Validator) ValidateDocument(doc []byte) error {
	var instance interface{}
	if err := json.Unmarshal(doc, &instance); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "document is not valid JSON").
			WithDetail("schema", v.name)
	}
	return v.validate(instance)
}

// Validate marshals value to JSON and validates the result. Use it to check
// that Go values encode to documents the schema accepts.
func (v *Validator) Validate(value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for validation: %w", err)
	}
	return v.ValidateDocument(data)
}

func (v *Validator) validate(instance interface{}) error {
	err := v.schema.Validate(instance)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	var messages []string
	collectErrors(validationErr, &messages)
	return errors.ValidationFailed(v.name, messages)
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, fmt.Sprintf("- %s: %s", location, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
