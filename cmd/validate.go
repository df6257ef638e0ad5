package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/agentschema/cli"
	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/schema"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema> <file>",
		Short: "Validate a JSON document against one of the schemas",
		Long: `Validate a JSON document against the named schema. Use "-" as the file
to read the document from stdin. Run 'agentschema list' for the schema names.

Examples:
  agentschema validate input_log run.json
  echo '{"Ok":null}' | agentschema validate launch_result -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]

			exporter := schema.NewExporter(schema.Default(),
				schema.WithLogger(cli.GetLogger(cmd, "agentschema.validate")))
			validator, err := exporter.Validator(name)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if err := validator.ValidateDocument(doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s\n", file, name)
			return nil
		},
	}

	return cmd
}

func readDocument(stdin io.Reader, file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read document").
			WithDetail("path", file)
	}
	return data, nil
}
