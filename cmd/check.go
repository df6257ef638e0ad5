package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the schema files on disk match the declared types",
		Long: `Regenerate every schema in memory and compare it with the file in the
output directory. Exits non-zero and prints a unified diff when any file is
stale or missing. Nothing is written.

Examples:
  # Fail CI when schemas were not regenerated
  agentschema check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, dir, err := newExporter(cmd, outDir)
			if err != nil {
				return err
			}

			drift, err := exporter.Check(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if drift.Clean() {
				fmt.Fprintf(out, "Schemas in %s are up to date\n", dir)
				return nil
			}
			for _, name := range drift.Missing {
				fmt.Fprintf(out, "missing: %s\n", name)
			}
			if drift.Diff != "" {
				fmt.Fprint(out, drift.Diff)
			}
			return drift.Err()
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory holding the schema files")

	return cmd
}
