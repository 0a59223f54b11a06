package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/conformer/internal/manifest"
	"github.com/roach88/conformer/internal/rendersuite"
)

// ValidationResult holds the outcome of validating one manifest.
type ValidationResult struct {
	File  string    `json:"file"`
	Valid bool      `json:"valid"`
	Title string    `json:"title,omitempty"`
	Cases int       `json:"cases,omitempty"`
	Error *CLIError `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>...",
		Short: "Validate suite manifests without running them",
		Long: `Validate YAML and CUE suite manifests.

Each manifest is checked against its schema, its version against the
supported range, and every case is built to catch unknown render commands.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, files []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	results := make([]ValidationResult, 0, len(files))
	invalid := 0
	for _, file := range files {
		formatter.VerboseLog("Validating %s", file)
		res := validateManifest(file)
		if !res.Valid {
			invalid++
		}
		results = append(results, res)
	}

	if opts.Format == "json" {
		if invalid > 0 {
			if err := formatter.Error("E_INVALID_MANIFEST",
				fmt.Sprintf("%d of %d manifest(s) invalid", invalid, len(files)), results); err != nil {
				return err
			}
		} else if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, res := range results {
			if res.Valid {
				fmt.Fprintf(w, "✓ %s (%s, %d cases)\n", res.File, res.Title, res.Cases)
				continue
			}
			fmt.Fprintf(w, "✗ %s\n", res.File)
			fmt.Fprintf(w, "  %s: %s\n", res.Error.Code, res.Error.Message)
		}
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d manifest(s)", invalid))
	}
	return nil
}

func validateManifest(file string) ValidationResult {
	res := ValidationResult{File: file}

	m, err := manifest.Load(file)
	if err != nil {
		var loadErr *manifest.LoadError
		if errors.As(err, &loadErr) {
			msg := loadErr.Message
			if loadErr.Pos.IsValid() {
				msg = fmt.Sprintf("line %d: %s", loadErr.Pos.Line(), msg)
			}
			res.Error = &CLIError{Code: loadErr.Code, Message: msg}
		} else {
			res.Error = &CLIError{Code: "E_LOAD", Message: err.Error()}
		}
		return res
	}

	suite, err := rendersuite.FromManifest(m)
	if err != nil {
		res.Error = &CLIError{Code: "E_CASE", Message: err.Error()}
		return res
	}

	res.Valid = true
	res.Title = suite.Title()
	res.Cases = suite.Len()
	return res
}
