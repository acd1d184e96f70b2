package checker

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/plantkeeper/genusbatch/pkg/constants"
	"github.com/plantkeeper/genusbatch/pkg/errors"
)

// Checker invokes the external genus checker once per call. It is safe to
// reuse across invocations; each call spawns a fresh process.
type Checker struct {
	// Command is the checker executable, resolved via PATH if not absolute.
	Command string

	// Flags are passed before the genus positional argument.
	Flags []string

	// Timeout bounds a single invocation when positive. Zero means
	// unbounded, which matches the checker's historical contract.
	Timeout time.Duration
}

// New returns a checker for the given command using the fixed flag set.
// An empty command falls back to the default checker.
func New(command string) *Checker {
	if command == "" {
		command = constants.DefaultCheckerCommand
	}
	return &Checker{
		Command: command,
		Flags:   constants.CheckerFlags,
	}
}

// Check runs the checker for one genus and classifies the exit status.
//
// A nonzero exit is an outcome, not an error: the returned Result carries
// the classification and the combined output. Check returns an error only
// when the invocation itself failed: the process could not be started, the
// per-item timeout elapsed (errors.ErrTimeout), or the context was canceled
// (errors.ErrCanceled). Callers decide whether such failures abort the batch.
func (c *Checker) Check(ctx context.Context, genus string) (Result, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(c.Flags)+1)
	args = append(args, c.Flags...)
	args = append(args, genus)

	cmd := exec.CommandContext(ctx, c.Command, args...)
	out, err := cmd.CombinedOutput()

	result := Result{
		Genus:  genus,
		Output: string(out),
	}

	if err == nil {
		result.ExitCode = 0
		result.Outcome = Classify(0)
		return result, nil
	}

	// Context expiry wins over whatever exit status the kill produced.
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return result, fmt.Errorf("checking %s: %w", genus, errors.ErrTimeout)
	case context.Canceled:
		return result, fmt.Errorf("checking %s: %w", genus, errors.ErrCanceled)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Outcome = Classify(result.ExitCode)
		return result, nil
	}

	// Startup failure: command missing, not executable, and so on.
	return result, errors.NewProcessError("check", c.CommandLine(genus), string(out), err)
}

// CommandLine renders the full invocation for a genus, for logs and errors.
func (c *Checker) CommandLine(genus string) string {
	parts := append([]string{c.Command}, c.Flags...)
	parts = append(parts, genus)
	return strings.Join(parts, " ")
}
