package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"processing", "success", "failure"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, s := range []string{"Processing", "SUCCESS", "", "done"} {
		_, err := ParseStatus(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(StatusFailure)
	require.NoError(t, err)
	assert.Equal(t, `"failure"`, string(data))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"processing"`), &s))
	assert.Equal(t, StatusProcessing, s)

	assert.Error(t, json.Unmarshal([]byte(`"Success"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`1`), &s))
}

func TestStatusSchema(t *testing.T) {
	s := Status("").JSONSchema()
	assert.Equal(t, "string", s.Type)
	assert.Equal(t, []any{"processing", "success", "failure"}, s.Enum)
}

func TestInputLogEncodesNilActionsAsArray(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(InputLog{Input: "ls", Status: StatusSuccess, Timestamp: ts})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"input":"ls","status":"success","timestamp":"2024-05-01T12:00:00Z","actions":[]}`,
		string(data))
}

func TestInputLogRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := InputLog{
		Input:     "build",
		Status:    StatusProcessing,
		Timestamp: ts,
		Actions: []ActionLog{
			{Action: "compile", Status: StatusSuccess, Timestamp: ts},
			{Action: "link", Status: StatusFailure, Timestamp: ts.Add(time.Second)},
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out InputLog
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestLaunchLocalResultErrorEncoding(t *testing.T) {
	tests := []struct {
		name string
		err  LaunchLocalResultError
		want string
	}{
		{"spawn failed", SpawnFailed("no such file"), `{"kind":"SpawnFailed","payload":"no such file"}`},
		{"no stdout", NoStdout(), `{"kind":"NoStdout"}`},
		{"line corrupted", LineCorrupted("\x00garbage"), `{"kind":"LineCorrupted","payload":"\u0000garbage"}`},
		{"empty payload kept", SpawnFailed(""), `{"kind":"SpawnFailed","payload":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.err)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back LaunchLocalResultError
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.err, back)
		})
	}
}

func TestLaunchLocalResultErrorDecodeRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"missing payload":    `{"kind":"SpawnFailed"}`,
		"unexpected payload": `{"kind":"NoStdout","payload":"x"}`,
		"unknown kind":       `{"kind":"Exploded","payload":"x"}`,
		"remote kind":        `{"kind":"LaunchFailed","payload":"x"}`,
		"not an object":      `"NoStdout"`,
	} {
		t.Run(name, func(t *testing.T) {
			var e LaunchLocalResultError
			assert.Error(t, json.Unmarshal([]byte(doc), &e))
		})
	}
}

func TestLaunchResultErrorEncoding(t *testing.T) {
	for _, e := range []LaunchResultError{
		LaunchFailed("exec format error"),
		InternalClientError("panic"),
		ClientExited("exit status 2"),
	} {
		data, err := json.Marshal(e)
		require.NoError(t, err)

		var back LaunchResultError
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, e, back)
	}

	data, err := json.Marshal(LaunchFailed("boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"LaunchFailed","payload":"boom"}`, string(data))

	var e LaunchResultError
	assert.Error(t, json.Unmarshal([]byte(`{"LaunchFailed":"boom"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"ClientExited"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"NoStdout"}`), &e))
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, "LaunchFailed: boom", LaunchFailed("boom").Error())
	assert.Equal(t, "NoStdout", NoStdout().Error())
	assert.Equal(t, "SpawnFailed: denied", SpawnFailed("denied").Error())
}

func TestResultEncoding(t *testing.T) {
	data, err := json.Marshal(Ok[LaunchResultError]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ok":null}`, string(data))

	data, err = json.Marshal(Fail(NoStdout()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Err":{"kind":"NoStdout"}}`, string(data))

	var local LaunchLocalResult
	require.NoError(t, json.Unmarshal(data, &local))
	require.False(t, local.IsOk())
	assert.Equal(t, NoStdout(), *local.Err)

	var remote LaunchResult
	require.NoError(t, json.Unmarshal([]byte(`{"Ok":null}`), &remote))
	assert.True(t, remote.IsOk())
}

func TestResultDecodeRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"empty object":  `{}`,
		"both keys":     `{"Ok":null,"Err":{"kind":"ClientExited","payload":"1"}}`,
		"ok not null":   `{"Ok":{}}`,
		"unknown key":   `{"Value":null}`,
		"bad error":     `{"Err":{"kind":"NoStdout"}}`,
		"not an object": `null`,
	} {
		t.Run(name, func(t *testing.T) {
			var r LaunchResult
			assert.Error(t, json.Unmarshal([]byte(doc), &r))
		})
	}
}

func TestVariantSchemaOmitsPayloadForBareKinds(t *testing.T) {
	s := LaunchLocalResultError{}.JSONSchema()
	require.Len(t, s.OneOf, 3)

	for i, want := range []struct {
		kind     string
		required []string
	}{
		{"SpawnFailed", []string{"kind", "payload"}},
		{"NoStdout", []string{"kind"}},
		{"LineCorrupted", []string{"kind", "payload"}},
	} {
		arm := s.OneOf[i]
		assert.Equal(t, "object", arm.Type)
		assert.Equal(t, want.required, arm.Required)

		kind, ok := arm.Properties.Get("kind")
		require.True(t, ok)
		assert.Equal(t, []any{want.kind}, kind.Enum)

		_, hasPayload := arm.Properties.Get("payload")
		assert.Equal(t, len(want.required) == 2, hasPayload)
	}
}
