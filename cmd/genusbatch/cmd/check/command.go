// Package check implements the single-genus spot check command.
package check

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantkeeper/genusbatch/internal/appcontext"
	"github.com/plantkeeper/genusbatch/pkg/checker"
)

// NewCommand creates the check command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		checkerCmd string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check <genus>",
		Short: "Check a single genus",
		Args:  cobra.ExactArgs(1),
		Long: `Check runs the external checker once for a single genus and prints the
classified outcome. The exit status is zero for every classification; only a
checker that cannot be invoked at all makes the command fail.`,
		Example: `  genusbatch check Geranium
  genusbatch check Cymbidium --timeout 5m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			genus := args[0]

			c := checker.New(checkerCmd)
			c.Timeout = timeout

			app.Logger().Debug().Str("command", c.CommandLine(genus)).Msg("running checker")

			result, err := c.Check(cmd.Context(), genus)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Outcome.Label()+" "+genus)
			if result.HasDetail() {
				fmt.Fprintln(out, result.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkerCmd, "checker", app.CheckerCommand(), "external checker command")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "checker timeout (0 = unbounded)")

	return cmd
}
