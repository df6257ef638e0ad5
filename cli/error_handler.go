package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/agentschema/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to out
func NewErrorHandler(out io.Writer, verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     out,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	mark := errorStyle.Render("✗")
	groveErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s Configuration file not found: %v\n", mark, groveErr.Details["path"])

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "%s %s\n", mark, groveErr.Message)
		if groveErr.Cause != nil {
			fmt.Fprintf(h.Out, "  %v\n", groveErr.Cause)
		}

	case errors.ErrCodeOutputDir:
		fmt.Fprintf(h.Out, "%s Cannot create output directory %v\n", mark, groveErr.Details["dir"])
		if groveErr.Cause != nil {
			fmt.Fprintf(h.Out, "  %v\n", groveErr.Cause)
		}

	case errors.ErrCodeWriteFailed:
		fmt.Fprintf(h.Out, "%s Failed to write %v\n", mark, groveErr.Details["path"])
		if groveErr.Cause != nil {
			fmt.Fprintf(h.Out, "  %v\n", groveErr.Cause)
		}

	case errors.ErrCodeSchemaNotFound:
		fmt.Fprintf(h.Out, "%s Schema '%v' not found\n", mark, groveErr.Details["schema"])
		fmt.Fprintf(h.Out, "Known schemas: %v\n", groveErr.Details["known"])

	case errors.ErrCodeSchemaDrift:
		fmt.Fprintf(h.Out, "%s %s\n", mark, groveErr.Message)
		fmt.Fprintf(h.Out, "Run 'agentschema' to regenerate them.\n")

	case errors.ErrCodeValidationFailed:
		fmt.Fprintf(h.Out, "%s %s\n", mark, groveErr.Message)

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", mark, err)
	}

	// If verbose mode, show full error details
	if h.Verbose && groveErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", groveErr.ToJSON())
	}
	return err
}
