package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ExportFreshDirScenario exports into a directory that does not exist yet.
func ExportFreshDirScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-export-fresh-dir",
		Description: "Creates the output directory and writes exactly five parseable schema files.",
		Tags:        []string{"export"},
		Steps: []harness.Step{
			{
				Name: "Export into a missing directory",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.NewDir("fresh")
					outDir := filepath.Join(projectDir, "out", "schemas")

					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "--out", outDir).Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if err := assert.Equal(0, result.ExitCode, "export should exit successfully"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, outDir, "stdout should name the output directory"); err != nil {
						return err
					}

					names, err := listFiles(outDir)
					if err != nil {
						return err
					}
					if err := assert.Equal(strings.Join(schemaFiles, ","), strings.Join(names, ","), "output should hold exactly the five schema files"); err != nil {
						return err
					}

					for _, name := range schemaFiles {
						data, err := os.ReadFile(filepath.Join(outDir, name))
						if err != nil {
							return err
						}
						var doc map[string]any
						if err := json.Unmarshal(data, &doc); err != nil {
							return fmt.Errorf("%s is not valid JSON: %w", name, err)
						}
						if err := assert.Contains(string(data), `"$schema"`, name+" should declare its dialect"); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// ExportIdempotentScenario runs the export twice and compares the bytes.
func ExportIdempotentScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-export-idempotent",
		Description: "A second export into an existing directory produces byte-identical files.",
		Tags:        []string{"export"},
		Steps: []harness.Step{
			{
				Name: "Export twice",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.NewDir("twice")
					outDir := filepath.Join(projectDir, "schemas")

					binary, err := findBinary()
					if err != nil {
						return err
					}

					var runs []map[string]string
					for i := 0; i < 2; i++ {
						cmd := ctx.Command(binary, "-o", outDir).Dir(projectDir)
						result := cmd.Run()
						ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
						if result.Error != nil {
							return fmt.Errorf("export run %d failed: %w", i+1, result.Error)
						}
						files, err := snapshot(outDir)
						if err != nil {
							return err
						}
						runs = append(runs, files)
					}

					for _, name := range schemaFiles {
						if err := assert.Equal(runs[0][name], runs[1][name], name+" should not change between runs"); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// ExportModuleRootScenario runs without flags from inside a Go module.
func ExportModuleRootScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-export-module-root",
		Description: "With no flags, schemas land in the schemas directory next to go.mod.",
		Tags:        []string{"export", "config"},
		Steps: []harness.Step{
			{
				Name: "Export from a nested package directory",
				Func: func(ctx *harness.Context) error {
					moduleDir := ctx.NewDir("module")
					if err := fs.WriteString(filepath.Join(moduleDir, "go.mod"), "module example.com/launcher\n\ngo 1.24\n"); err != nil {
						return err
					}
					pkgDir := filepath.Join(moduleDir, "internal", "launch")
					if err := fs.CreateDir(pkgDir); err != nil {
						return err
					}

					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary).Dir(pkgDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if result.Error != nil {
						return fmt.Errorf("`agentschema` failed: %w", result.Error)
					}

					want := filepath.Join(moduleDir, "schemas")
					if err := assert.Contains(result.Stdout, want, "schemas should be written under the module root"); err != nil {
						return err
					}
					names, err := listFiles(want)
					if err != nil {
						return err
					}
					return assert.Equal(len(schemaFiles), len(names), "module schemas directory should hold five files")
				},
			},
		},
	}
}

// ExportConfigScenario uses agentschema.yml to pick the directory and indent.
func ExportConfigScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-export-config",
		Description: "output_dir and indent from agentschema.yml are honoured.",
		Tags:        []string{"export", "config"},
		Steps: []harness.Step{
			{
				Name: "Export with a project config file",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.NewDir("configured")
					configYAML := `output_dir: generated/schemas
indent: "    "
logging:
  level: debug
  format:
    preset: json
`
					if err := fs.WriteString(filepath.Join(projectDir, "agentschema.yml"), configYAML); err != nil {
						return err
					}

					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary).Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if result.Error != nil {
						return fmt.Errorf("`agentschema` failed: %w", result.Error)
					}

					outDir := filepath.Join(projectDir, "generated", "schemas")
					data, err := os.ReadFile(filepath.Join(outDir, "local_message.json"))
					if err != nil {
						return fmt.Errorf("config output_dir was not used: %w", err)
					}
					if err := assert.Contains(string(data), "\n    \"", "schemas should use the configured indent"); err != nil {
						return err
					}
					// Debug-level JSON logs go to stderr when it is not a terminal.
					return assert.Contains(result.Stderr, `"msg":"Wrote schema"`, "per-file debug logs should be emitted as JSON")
				},
			},
		},
	}
}

// ExportBlockedOutputScenario points the output at an existing regular file.
func ExportBlockedOutputScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-export-blocked-output",
		Description: "An output path occupied by a file fails with a non-zero exit and writes nothing.",
		Tags:        []string{"export", "errors"},
		Steps: []harness.Step{
			{
				Name: "Export onto a regular file",
				Func: func(ctx *harness.Context) error {
					projectDir := ctx.NewDir("blocked")
					blocked := filepath.Join(projectDir, "schemas")
					if err := fs.WriteString(blocked, "occupied"); err != nil {
						return err
					}

					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "--out", blocked).Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if err := assert.Equal(1, result.ExitCode, "export onto a file should fail"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stderr, "Cannot create output directory", "stderr should explain the failure"); err != nil {
						return err
					}
					data, err := os.ReadFile(blocked)
					if err != nil {
						return err
					}
					return assert.Equal("occupied", string(data), "the blocking file should be untouched")
				},
			},
		},
	}
}
