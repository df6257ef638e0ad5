package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/pkg/models"
)

func mustValidator(t *testing.T, e *Exporter, name string) *Validator {
	t.Helper()
	v, err := e.Validator(name)
	require.NoError(t, err)
	return v
}

func TestEverySchemaCompiles(t *testing.T) {
	e := newTestExporter()
	for _, name := range e.Registry().Names() {
		mustValidator(t, e, name)
	}
}

func TestValidatorUnknownSchema(t *testing.T) {
	_, err := newTestExporter().Validator("status")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeSchemaNotFound))
}

func TestStatusAcceptsOnlyLowercaseNames(t *testing.T) {
	v := mustValidator(t, newTestExporter(), "action_log")
	doc := func(status string) []byte {
		return []byte(fmt.Sprintf(`{"action":"run","status":%q,"timestamp":"2024-01-01T00:00:00Z"}`, status))
	}

	for _, status := range []string{"processing", "success", "failure"} {
		assert.NoError(t, v.ValidateDocument(doc(status)), "status %q should be accepted", status)
	}
	for _, status := range []string{"Processing", "Success", "Failure", "FAILURE", "", "done"} {
		err := v.ValidateDocument(doc(status))
		require.Error(t, err, "status %q should be rejected", status)
		assert.True(t, errors.Is(err, errors.ErrCodeValidationFailed))
	}
}

func TestLaunchLocalResultErrorKinds(t *testing.T) {
	e := newTestExporter()
	errSchema := models.LaunchLocalResultError{}.JSONSchema()
	errSchema.Version = Draft
	data, err := e.Marshal(errSchema)
	require.NoError(t, err)
	v, err := NewValidator("launch_local_result_error", data)
	require.NoError(t, err)

	accepted := []string{
		`{"kind":"NoStdout"}`,
		`{"kind":"SpawnFailed","payload":"permission denied"}`,
		`{"kind":"LineCorrupted","payload":""}`,
	}
	for _, doc := range accepted {
		assert.NoError(t, v.ValidateDocument([]byte(doc)), "expected %s to be accepted", doc)
	}

	rejected := []string{
		`{"kind":"SpawnFailed"}`,
		`{"kind":"LineCorrupted"}`,
		`{"kind":"NoStdout","payload":"x"}`,
		`{"kind":"Unknown","payload":"x"}`,
		`{"payload":"x"}`,
		`{"kind":"SpawnFailed","payload":42}`,
	}
	for _, doc := range rejected {
		assert.Error(t, v.ValidateDocument([]byte(doc)), "expected %s to be rejected", doc)
	}
}

func TestLaunchResultDocuments(t *testing.T) {
	e := newTestExporter()
	local := mustValidator(t, e, "launch_local_result")
	remote := mustValidator(t, e, "launch_result")

	for _, doc := range []string{
		`{"Ok":null}`,
		`{"Err":{"kind":"NoStdout"}}`,
		`{"Err":{"kind":"SpawnFailed","payload":"enoent"}}`,
	} {
		assert.NoError(t, local.ValidateDocument([]byte(doc)), doc)
	}
	for _, doc := range []string{
		`{}`,
		`{"Ok":{}}`,
		`{"Err":{"kind":"SpawnFailed"}}`,
		`{"Ok":null,"Err":{"kind":"NoStdout"}}`,
		`{"Err":{"kind":"LaunchFailed","payload":"x"}}`,
	} {
		assert.Error(t, local.ValidateDocument([]byte(doc)), doc)
	}

	assert.NoError(t, remote.ValidateDocument([]byte(`{"Err":{"kind":"ClientExited","payload":"exit 1"}}`)))
	assert.Error(t, remote.ValidateDocument([]byte(`{"Err":{"kind":"NoStdout"}}`)))
}

func TestValidateDocumentRejectsBadJSON(t *testing.T) {
	v := mustValidator(t, newTestExporter(), "local_message")
	err := v.ValidateDocument([]byte(`{"message":`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestValidationErrorListsLocations(t *testing.T) {
	v := mustValidator(t, newTestExporter(), "input_log")
	err := v.ValidateDocument([]byte(`{"input":"x","status":"success","timestamp":"2024-01-01T00:00:00Z","actions":[{"action":"a","status":"bogus","timestamp":"2024-01-01T00:00:00Z"}]}`))
	require.Error(t, err)

	groveErr, ok := errors.As(err)
	require.True(t, ok)
	problems, ok := groveErr.Details["problems"].([]string)
	require.True(t, ok)
	require.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "/actions/0/status")
}

func TestValidateGoValues(t *testing.T) {
	v := mustValidator(t, newTestExporter(), "local_message")
	assert.NoError(t, v.Validate(models.LocalMessage{Message: "hello"}))
	assert.Error(t, v.Validate(map[string]any{"message": 1}))
	assert.Error(t, v.Validate(map[string]any{"message": "hi", "extra": true}))
}
