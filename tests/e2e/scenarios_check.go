package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// CheckDriftScenario exports, edits a file, and expects check to catch it.
func CheckDriftScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-check-drift",
		Description: "check passes right after export and fails once a schema file is edited or removed.",
		Tags:        []string{"check"},
		Steps: []harness.Step{
			{
				Name: "Check a freshly exported directory",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.NewDir("drift")
					outDir := filepath.Join(projectDir, "schemas")

					binary, err := findBinary()
					if err != nil {
						return err
					}

					export := ctx.Command(binary, "-o", outDir).Dir(projectDir)
					result := export.Run()
					ctx.ShowCommandOutput(export.String(), result.Stdout, result.Stderr)
					if result.Error != nil {
						return fmt.Errorf("export failed: %w", result.Error)
					}

					ctx.Set("out_dir", outDir)

					check := ctx.Command(binary, "check", "-o", outDir).Dir(projectDir)
					result = check.Run()
					ctx.ShowCommandOutput(check.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "check should pass after export"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, "up to date", "check should report a clean directory")
				},
			},
			{
				Name: "Edit and remove schema files, then check again",
				Func: func(ctx *harness.Context) error {
					outDir := ctx.GetString("out_dir")
					if err := fs.WriteString(filepath.Join(outDir, "input_log.json"), "{}\n"); err != nil {
						return err
					}
					if err := os.Remove(filepath.Join(outDir, "launch_result.json")); err != nil {
						return err
					}

					binary, err := findBinary()
					if err != nil {
						return err
					}

					check := ctx.Command(binary, "check", "-o", outDir)
					result := check.Run()
					ctx.ShowCommandOutput(check.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(1, result.ExitCode, "check should fail on drift"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "missing: launch_result.json", "missing file should be listed"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, "input_log.json (generated)", "stale file should be diffed")
				},
			},
		},
	}
}
