package run

import (
	"context"
	"fmt"
	"io"

	"github.com/plantkeeper/genusbatch/internal/appcontext"
	"github.com/plantkeeper/genusbatch/pkg/batch"
	"github.com/plantkeeper/genusbatch/pkg/checker"
	"github.com/plantkeeper/genusbatch/pkg/errors"
	"github.com/plantkeeper/genusbatch/pkg/genera"
	"github.com/plantkeeper/genusbatch/pkg/runlog"
)

// Execute orchestrates one batch run over the given list file.
func Execute(ctx context.Context, app appcontext.Interface, flags *Flags, listFile string, console io.Writer) error {
	logger := app.Logger()

	if flags.Skip < 0 {
		return errors.NewValidationError("skip", flags.Skip, "must not be negative")
	}

	names, err := genera.Load(listFile)
	if err != nil {
		return err
	}
	names = genera.Slice(names, flags.Skip, flags.Limit)

	if len(names) == 0 {
		logger.Warn().Str("list_file", listFile).Msg("no genera to process")
	}

	c := checker.New(flags.Checker)
	c.Timeout = flags.Timeout

	// The run log is created only after the input is readable, so a usage
	// error never leaves a truncated artifact behind.
	log, err := runlog.Create(flags.LogFile, listFile)
	if err != nil {
		return err
	}
	defer log.Close()

	runner := batch.NewRunner(c, console, logger)
	summary, runErr := runner.Run(ctx, listFile, names, log)

	// The recap and the summary artifact are written even for a canceled
	// run; the log holds everything processed so far either way.
	fmt.Fprintln(console, summary.Recap())

	if flags.Summary != "" {
		if err := summary.WriteFile(flags.Summary); err != nil {
			logger.Error().Err(err).Str("path", flags.Summary).Msg("failed to write run summary")
			if runErr == nil {
				runErr = err
			}
		}
	}

	return runErr
}
