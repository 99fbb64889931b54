package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/allen/internal/scenario"
)

// ErrCodeFileNotFound is reported when a scenario file argument does not exist.
const ErrCodeFileNotFound = "E_FILE_NOT_FOUND"

// FileValidation is the validation outcome of one scenario file.
type FileValidation struct {
	File     string `json:"file"`
	Scenario string `json:"scenario,omitempty"`
	Cases    int    `json:"cases"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario files without running them.

Checks YAML and CUE scenario files against the scenario schema, and parses
every range so malformed notation is reported before a test run.

Exit codes:
  0 - All files valid
  1 - One or more files invalid
  2 - Command error (file not found, etc.)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, files []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			return outputValidateError(formatter, ErrCodeFileNotFound, fmt.Sprintf("scenario file not found: %s", file), nil)
		}
	}

	result := ValidationResult{
		Valid: true,
		Files: make([]FileValidation, 0, len(files)),
	}
	for _, file := range files {
		formatter.VerboseLog("Validating %s", file)

		fv := FileValidation{File: file, Valid: true}
		s, err := scenario.Load(file)
		if err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			result.Valid = false
		} else {
			fv.Scenario = s.Name
			fv.Cases = len(s.Cases)
		}
		result.Files = append(result.Files, fv)
	}

	if !result.Valid {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, fv := range result.Files {
		fmt.Fprintf(formatter.Writer, "✓ %s (%s, %d cases)\n", fv.File, fv.Scenario, fv.Cases)
	}
	fmt.Fprintln(formatter.Writer, "✓ All scenarios valid")
	return nil
}

// outputValidateError outputs a single validation error.
func outputValidateError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	// Missing inputs are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs per-file results when some are invalid.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	invalid := 0
	var first string
	for _, fv := range result.Files {
		if !fv.Valid {
			if invalid == 0 {
				first = fv.Error
			}
			invalid++
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Respond(CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    ErrCodeInvalidScenario,
				Message: first,
			},
		}); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", invalid))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, fv := range result.Files {
		if fv.Valid {
			fmt.Fprintf(formatter.Writer, "✓ %s\n", fv.File)
			continue
		}
		fmt.Fprintf(formatter.Writer, "✗ %s\n", fv.File)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", ErrCodeInvalidScenario, fv.Error)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", invalid))
}
