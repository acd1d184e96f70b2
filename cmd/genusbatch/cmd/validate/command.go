// Package validate implements offline hygiene checks for a genus list.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantkeeper/genusbatch/internal/appcontext"
	"github.com/plantkeeper/genusbatch/pkg/errors"
	"github.com/plantkeeper/genusbatch/pkg/genera"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <listfile>",
		Short: "Validate a genus list without running the checker",
		Args:  cobra.ExactArgs(1),
		Long: `Validate inspects a genus list for hygiene problems without invoking the
external checker: duplicate names, blank lines, surrounding whitespace,
lowercase names, and hybrid signs in what should be a genus-level list.

Warnings are informational; the command fails only when error-level findings
exist.`,
		Example: `  genusbatch validate genera.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			listFile := args[0]

			names, err := genera.Load(listFile)
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("list_file", listFile).Int("genera", len(names)).Msg("validating list")

			findings := genera.Validate(names)
			out := cmd.OutOrStdout()
			for _, finding := range findings {
				fmt.Fprintln(out, finding.String())
			}

			if genera.HasErrors(findings) {
				return errors.NewValidationError("listfile", listFile, fmt.Sprintf("%d finding(s), see output", len(findings)))
			}

			fmt.Fprintf(out, "%d genera validated, %d warning(s)\n", len(names), len(findings))
			return nil
		},
	}
}
