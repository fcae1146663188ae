package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds settings-file validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Count  int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

func (r ValidationResult) String() string {
	if r.Valid {
		return fmt.Sprintf("Valid: %d settings", r.Count)
	}
	return fmt.Sprintf("Invalid: %d error(s)", len(r.Errors))
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <settings-file>",
		Short: "Validate a settings file without generating",
		Long: `Validate a settings list (CUE or JSON) against the input schema
without running any derivation. All schema violations are reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	settings, loadErrors := LoadSettings(path, LoadModeCollectAll)
	if len(loadErrors) > 0 {
		// A missing file is a command error; schema violations are
		// validation failures.
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) && loadErr.Code == ErrCodeNotFound {
			return WrapExitError(ExitCommandError, "cannot read settings file", loadErr)
		}
		result := ValidationResult{Valid: false}
		for _, err := range loadErrors {
			result.Errors = append(result.Errors, err.Error())
		}
		if err := formatter.Success(result); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}

	return formatter.Success(ValidationResult{Valid: true, Count: len(settings)})
}
