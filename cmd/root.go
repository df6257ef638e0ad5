package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/agentschema/cli"
	"github.com/grovetools/agentschema/config"
	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/schema"
	"github.com/grovetools/agentschema/version"
)

// NewRootCmd builds the agentschema command tree. Run without a subcommand it
// writes every schema to the resolved output directory.
func NewRootCmd() *cobra.Command {
	var outDir string

	rootCmd := cli.NewStandardCommand(
		"agentschema",
		"Export JSON Schemas for the agent launcher's data types",
	)
	rootCmd.Long = `Export JSON Schemas for the agent launcher's data types.

Writes one pretty-printed JSON Schema file per declared type into the output
directory, creating it if needed and overwriting existing files.

The output directory is, in order of precedence: --out, output_dir from
agentschema.yml (relative to that file), the schemas directory next to the
nearest go.mod, or ./schemas.

Examples:
  # Write schemas next to go.mod
  agentschema

  # Write them somewhere else
  agentschema --out build/schemas`
	rootCmd.Args = cobra.NoArgs
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for schema files")
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		exporter, dir, err := newExporter(cmd, outDir)
		if err != nil {
			return err
		}

		report, err := exporter.Export(dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote schemas to %s\n", report.Dir)
		return nil
	}

	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("agentschema", version.GetInfo()))

	return rootCmd
}

// newExporter loads the optional config file and returns an exporter together
// with the absolute output directory.
func newExporter(cmd *cobra.Command, outDir string) (*schema.Exporter, string, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
	}
	dir, err := config.ResolveOutputDir(outDir, cfg, cwd)
	if err != nil {
		return nil, "", errors.OutputDir(outDir, err)
	}

	opts := []schema.Option{schema.WithLogger(cli.GetLogger(cmd, "agentschema.export"))}
	if cfg != nil {
		opts = append(opts, schema.WithIndent(cfg.Indent))
	}
	return schema.NewExporter(schema.Default(), opts...), dir, nil
}
