package models

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Kind names one arm of a tagged variant. It is written to the "kind" field.
type Kind string

// variant describes one arm of a tagged union.
type variant struct {
	kind       Kind
	hasPayload bool
}

// taggedJSON is the wire form shared by every tagged variant.
type taggedJSON struct {
	Kind    Kind    `json:"kind"`
	Payload *string `json:"payload,omitempty"`
}

func lookupVariant(variants []variant, kind Kind) (variant, bool) {
	for _, v := range variants {
		if v.kind == kind {
			return v, true
		}
	}
	return variant{}, false
}

func encodeTagged(variants []variant, kind Kind, payload string) ([]byte, error) {
	v, ok := lookupVariant(variants, kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	wire := taggedJSON{Kind: kind}
	if v.hasPayload {
		wire.Payload = &payload
	}
	return json.Marshal(wire)
}

func decodeTagged(variants []variant, data []byte) (Kind, string, error) {
	var wire taggedJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return "", "", err
	}
	v, ok := lookupVariant(variants, wire.Kind)
	if !ok {
		return "", "", fmt.Errorf("unknown kind %q", wire.Kind)
	}
	switch {
	case v.hasPayload && wire.Payload == nil:
		return "", "", fmt.Errorf("kind %q requires a payload", wire.Kind)
	case !v.hasPayload && wire.Payload != nil:
		return "", "", fmt.Errorf("kind %q does not carry a payload", wire.Kind)
	}
	if wire.Payload == nil {
		return wire.Kind, "", nil
	}
	return wire.Kind, *wire.Payload, nil
}

// variantSchema builds a oneOf with one object per arm. Arms without data
// have no payload property at all.
func variantSchema(variants []variant) *jsonschema.Schema {
	arms := make([]*jsonschema.Schema, 0, len(variants))
	for _, v := range variants {
		props := jsonschema.NewProperties()
		props.Set("kind", &jsonschema.Schema{
			Type: "string",
			Enum: []any{string(v.kind)},
		})
		required := []string{"kind"}
		if v.hasPayload {
			props.Set("payload", &jsonschema.Schema{Type: "string"})
			required = append(required, "payload")
		}
		arms = append(arms, &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             required,
			AdditionalProperties: jsonschema.FalseSchema,
		})
	}
	return &jsonschema.Schema{OneOf: arms}
}
