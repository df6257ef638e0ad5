package main

import (
	"fmt"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-version",
		Description: "Prints build information and exits successfully.",
		Tags:        []string{"basic"},
		Steps: []harness.Step{
			{
				Name: "Run 'agentschema version'",
				Func: func(ctx *harness.Context) error {
					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "version")
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if err := assert.Equal(0, result.ExitCode, "agentschema version should exit successfully"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "agentschema ", "Output should name the tool"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, "Go Version:", "Output should contain Go Version")
				},
			},
		},
	}
}

// ListScenario tests that 'list' prints every schema in export order.
func ListScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "agentschema-list",
		Description: "Lists the five exported schemas.",
		Tags:        []string{"basic"},
		Steps: []harness.Step{
			{
				Name: "Run 'agentschema list'",
				Func: func(ctx *harness.Context) error {
					binary, err := findBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "list")
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if result.Error != nil {
						return fmt.Errorf("`agentschema list` failed: %w", result.Error)
					}

					for _, title := range []string{"ActionLog", "InputLog", "LaunchResult", "LaunchLocalResult", "LocalMessage"} {
						if err := assert.Contains(result.Stdout, title, "list should include "+title); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}
