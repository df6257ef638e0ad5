package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/agentschema/cli"
	"github.com/grovetools/agentschema/schema"
)

// SchemaEntry describes one exported schema in `list --json` output.
type SchemaEntry struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	File  string `json:"file"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the schemas agentschema exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := schema.Default().Jobs()
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				entries := make([]SchemaEntry, 0, len(jobs))
				for _, job := range jobs {
					entries = append(entries, SchemaEntry{Name: job.Name, Title: job.Title, File: job.FileName()})
				}
				jsonData, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal schema list: %w", err)
				}
				fmt.Fprintln(out, string(jsonData))
				return nil
			}

			width := 0
			for _, job := range jobs {
				if len(job.Name) > width {
					width = len(job.Name)
				}
			}
			for _, job := range jobs {
				fmt.Fprintf(out, "%-*s  %s\n", width, job.Name, job.Title)
			}
			return nil
		},
	}
}
