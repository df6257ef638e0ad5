package models

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Status is the lifecycle state of an input or one of its actions.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
)

// Statuses lists every valid Status in declaration order.
var Statuses = []Status{StatusProcessing, StatusSuccess, StatusFailure}

// ParseStatus converts a lowercase status name to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q: must be one of processing, success, failure", s)
	}
	return status, nil
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects anything but the lowercase status names.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// JSONSchema constrains Status to its lowercase names.
func (Status) JSONSchema() *jsonschema.Schema {
	enum := make([]any, 0, len(Statuses))
	for _, s := range Statuses {
		enum = append(enum, string(s))
	}
	return &jsonschema.Schema{
		Type: "string",
		Enum: enum,
	}
}
