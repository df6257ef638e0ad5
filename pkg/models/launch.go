package models

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Launch failure kinds reported by the remote client.
const (
	KindLaunchFailed        Kind = "LaunchFailed"
	KindInternalClientError Kind = "InternalClientError"
	KindClientExited        Kind = "ClientExited"
)

// Local launch failure kinds.
const (
	KindSpawnFailed   Kind = "SpawnFailed"
	KindNoStdout      Kind = "NoStdout"
	KindLineCorrupted Kind = "LineCorrupted"
)

var launchResultVariants = []variant{
	{kind: KindLaunchFailed, hasPayload: true},
	{kind: KindInternalClientError, hasPayload: true},
	{kind: KindClientExited, hasPayload: true},
}

var launchLocalResultVariants = []variant{
	{kind: KindSpawnFailed, hasPayload: true},
	{kind: KindNoStdout},
	{kind: KindLineCorrupted, hasPayload: true},
}

// LaunchResultError explains why launching through the client failed.
// Every kind carries a message. It encodes as {"kind": ..., "payload": ...}
// like LaunchLocalResultError, not as a single-key object named after the kind.
type LaunchResultError struct {
	Kind    Kind
	Message string
}

func LaunchFailed(msg string) LaunchResultError {
	return LaunchResultError{Kind: KindLaunchFailed, Message: msg}
}

func InternalClientError(msg string) LaunchResultError {
	return LaunchResultError{Kind: KindInternalClientError, Message: msg}
}

func ClientExited(msg string) LaunchResultError {
	return LaunchResultError{Kind: KindClientExited, Message: msg}
}

func (e LaunchResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e LaunchResultError) MarshalJSON() ([]byte, error) {
	return encodeTagged(launchResultVariants, e.Kind, e.Message)
}

func (e *LaunchResultError) UnmarshalJSON(data []byte) error {
	kind, msg, err := decodeTagged(launchResultVariants, data)
	if err != nil {
		return fmt.Errorf("launch result error: %w", err)
	}
	*e = LaunchResultError{Kind: kind, Message: msg}
	return nil
}

func (LaunchResultError) JSONSchema() *jsonschema.Schema {
	return variantSchema(launchResultVariants)
}

// LaunchLocalResultError explains why spawning a local client failed.
// NoStdout carries no message.
type LaunchLocalResultError struct {
	Kind    Kind
	Message string
}

func SpawnFailed(msg string) LaunchLocalResultError {
	return LaunchLocalResultError{Kind: KindSpawnFailed, Message: msg}
}

func NoStdout() LaunchLocalResultError {
	return LaunchLocalResultError{Kind: KindNoStdout}
}

func LineCorrupted(line string) LaunchLocalResultError {
	return LaunchLocalResultError{Kind: KindLineCorrupted, Message: line}
}

func (e LaunchLocalResultError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e LaunchLocalResultError) MarshalJSON() ([]byte, error) {
	return encodeTagged(launchLocalResultVariants, e.Kind, e.Message)
}

func (e *LaunchLocalResultError) UnmarshalJSON(data []byte) error {
	kind, msg, err := decodeTagged(launchLocalResultVariants, data)
	if err != nil {
		return fmt.Errorf("launch local result error: %w", err)
	}
	*e = LaunchLocalResultError{Kind: kind, Message: msg}
	return nil
}

func (LaunchLocalResultError) JSONSchema() *jsonschema.Schema {
	return variantSchema(launchLocalResultVariants)
}

// LaunchResult is the outcome of launching through the client.
type LaunchResult = Result[LaunchResultError]

// LaunchLocalResult is the outcome of spawning a local client.
type LaunchLocalResult = Result[LaunchLocalResultError]
