// Package run implements the batch runner command: iterate a genus list and
// invoke the external checker once per name.
package run

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/plantkeeper/genusbatch/internal/appcontext"
)

// Flags holds the run command's flags.
type Flags struct {
	Checker string
	LogFile string
	Summary string
	Skip    int
	Limit   int
	Timeout time.Duration
}

// NewCommand creates the run command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "run <listfile>",
		Aliases: []string{"iterate"},
		Short:   "Check every genus in a list file",
		Args:    cobra.ExactArgs(1),
		Long: `Run iterates a newline-delimited genus list and invokes the external
checker once per name, strictly sequentially. Every genus is classified by the
checker's exit status and echoed to the console; the same classification is
appended to the run log, which is truncated when the run starts.

Revision-required entries embed the checker's full output in the log. A
checker exit outside the documented set is recorded as an unknown error and
the batch continues; nothing short of operator cancellation stops a run.`,
		Example: `  genusbatch run genera.txt
  genusbatch run genera.txt --log revisions.log --summary run.yaml
  genusbatch run genera.txt --skip 200 --limit 100   # resume a long list
  genusbatch run genera.txt --timeout 5m             # bound each checker call`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.Checker, "checker", app.CheckerCommand(), "external checker command")
	cmd.Flags().StringVar(&flags.LogFile, "log", app.DefaultLogFile(), "run log file (truncated at run start)")
	cmd.Flags().StringVar(&flags.Summary, "summary", "", "write a YAML run summary to this path")
	cmd.Flags().IntVar(&flags.Skip, "skip", 0, "skip the first N genera in the list")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "process at most N genera (0 = all)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "per-genus checker timeout (0 = unbounded)")

	return cmd
}
