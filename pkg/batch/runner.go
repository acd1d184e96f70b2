// Package batch implements the batch runner: it walks a genus list strictly
// sequentially, runs the external checker once per name, classifies each exit
// status, and records every classification in the run log and on the console.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/plantkeeper/genusbatch/pkg/checker"
	"github.com/plantkeeper/genusbatch/pkg/errors"
	"github.com/plantkeeper/genusbatch/pkg/runlog"
)

// Runner drives one batch run. Exactly one checker process is alive at any
// time; each item is fully awaited before the next is considered.
type Runner struct {
	checker *checker.Checker
	console io.Writer
	logger  *zerolog.Logger
}

// NewRunner creates a runner. The console writer receives the per-genus
// classification echo; operational logging goes to the zerolog logger.
func NewRunner(c *checker.Checker, console io.Writer, logger *zerolog.Logger) *Runner {
	return &Runner{
		checker: c,
		console: console,
		logger:  logger,
	}
}

// Run processes every genus in order, writing one classified entry per name
// to the run log and echoing the same label to the console.
//
// Per-item policy: a classified exit (0, 65, 66, or any other status from a
// process that ran) never aborts the batch. An invocation that failed to
// start or timed out is recorded as an unknown error and the batch continues.
// Context cancellation stops the run after the in-flight item; everything
// processed so far stays in the log and the summary. Each genus is attempted
// exactly once, no retries.
func (r *Runner) Run(ctx context.Context, listFile string, names []string, log *runlog.Writer) (*Summary, error) {
	summary := NewSummary(listFile, r.checker.Command)
	defer summary.Finish()

	r.logger.Info().
		Str("list_file", listFile).
		Str("checker", r.checker.Command).
		Int("genera", len(names)).
		Msg("starting batch run")

	for _, genus := range names {
		if ctx.Err() != nil {
			summary.Canceled = true
			break
		}

		result, err := r.checker.Check(ctx, genus)
		if err != nil {
			if errors.IsCanceled(err) && ctx.Err() != nil {
				summary.Canceled = true
				break
			}

			// Timeout or startup failure: record as an unknown error and
			// keep going. The failure text is operational detail, not part
			// of the artifact.
			r.logger.Warn().Err(err).Str("genus", genus).Msg("checker invocation failed")
			result = checker.Result{
				Genus:    genus,
				Outcome:  checker.OutcomeUnknownError,
				ExitCode: -1,
				Output:   err.Error(),
			}
		}

		if err := r.record(result, log); err != nil {
			return summary, err
		}
		summary.Add(result)

		r.logger.Debug().
			Str("genus", genus).
			Int("exit_code", result.ExitCode).
			Stringer("outcome", result.Outcome).
			Msg("genus checked")
	}

	if summary.Canceled {
		r.logger.Warn().Int("processed", summary.Processed).Msg("batch run canceled")
		return summary, errors.ErrCanceled
	}

	return summary, nil
}

// record writes the classification to both the run log and the console. A
// failure to persist the log is fatal to the run; the artifact is the point.
func (r *Runner) record(result checker.Result, log *runlog.Writer) error {
	if err := log.Record(result); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.console, result.Outcome.Label()+" "+result.Genus)
	return errors.WrapIO("write", "console", err)
}
