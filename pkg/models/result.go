package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is either success with no value or a failure carrying E.
// It encodes as {"Ok":null} or {"Err":<E>}.
type Result[E any] struct {
	Err *E
}

// Ok returns a successful Result.
func Ok[E any]() Result[E] {
	return Result[E]{}
}

// Fail returns a failed Result carrying err.
func Fail[E any](err E) Result[E] {
	return Result[E]{Err: &err}
}

// IsOk reports whether r is a success.
func (r Result[E]) IsOk() bool {
	return r.Err == nil
}

func (r Result[E]) MarshalJSON() ([]byte, error) {
	if r.Err == nil {
		return []byte(`{"Ok":null}`), nil
	}
	return json.Marshal(struct {
		Err *E `json:"Err"`
	}{Err: r.Err})
}

func (r *Result[E]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("result must be an object: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("result must have exactly one of Ok or Err, got %d keys", len(raw))
	}

	if ok, found := raw["Ok"]; found {
		if !bytes.Equal(bytes.TrimSpace(ok), []byte("null")) {
			return fmt.Errorf("result Ok must be null")
		}
		r.Err = nil
		return nil
	}

	payload, found := raw["Err"]
	if !found {
		return fmt.Errorf("result must have exactly one of Ok or Err")
	}
	var e E
	if err := json.Unmarshal(payload, &e); err != nil {
		return err
	}
	r.Err = &e
	return nil
}
