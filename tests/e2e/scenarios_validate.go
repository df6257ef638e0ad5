package main

import (
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ValidateDocumentsScenario validates good and bad documents against the schemas.
func ValidateDocumentsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-validate",
		Description: "validate accepts conforming documents and rejects miscased statuses and payload-less SpawnFailed.",
		Tags:        []string{"validate"},
		Steps: []harness.Step{
			{
				Name: "Validate documents",
				Func: func(ctx *harness.Context) error {
					docsDir := ctx.NewDir("docs")
					docs := map[string]string{
						"ok.json":         `{"Ok":null}`,
						"no_stdout.json":  `{"Err":{"kind":"NoStdout"}}`,
						"spawn.json":      `{"Err":{"kind":"SpawnFailed"}}`,
						"input_log.json":  `{"input":"ls","status":"success","timestamp":"2024-02-03T04:05:06Z","actions":[]}`,
						"processing.json": `{"action":"spawn","status":"Processing","timestamp":"2024-02-03T04:05:06Z"}`,
					}
					for name, content := range docs {
						if err := fs.WriteString(filepath.Join(docsDir, name), content); err != nil {
							return err
						}
					}

					binary, err := findBinary()
					if err != nil {
						return err
					}

					cases := []struct {
						schema string
						file   string
						exit   int
					}{
						{"launch_local_result", "ok.json", 0},
						{"launch_local_result", "no_stdout.json", 0},
						{"launch_local_result", "spawn.json", 1},
						{"input_log", "input_log.json", 0},
						{"action_log", "processing.json", 1},
						{"status", "ok.json", 1},
					}
					for _, tc := range cases {
						cmd := ctx.Command(binary, "validate", tc.schema, tc.file).Dir(docsDir)
						result := cmd.Run()
						ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
						if err := assert.Equal(tc.exit, result.ExitCode, "validate "+tc.schema+" "+tc.file); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}
