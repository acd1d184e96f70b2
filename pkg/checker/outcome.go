// Package checker wraps the external genus checker process. The checker
// performs the actual reconciliation against the remote taxonomic
// authorities; this package only runs it, captures its combined output, and
// classifies its exit status.
package checker

import "github.com/plantkeeper/genusbatch/pkg/constants"

// Outcome is the classification of a single checker invocation.
type Outcome int

const (
	// OutcomeUnchanged means the genus needs no changes (exit 0).
	OutcomeUnchanged Outcome = iota

	// OutcomeRevisionRequired means the checker proposed changes (exit 65).
	// The checker's combined output carries the proposed revisions.
	OutcomeRevisionRequired

	// OutcomeDeprecated means the genus name is likely obsolete (exit 66).
	OutcomeDeprecated

	// OutcomeUnknownError covers every other nonzero exit, plus invocations
	// that failed to start or were cut off by a per-item timeout.
	OutcomeUnknownError
)

// Classify maps a checker exit status to an outcome. The mapping is
// exhaustive: any status outside the checker's documented set falls through
// to OutcomeUnknownError rather than being dropped.
func Classify(exitCode int) Outcome {
	switch exitCode {
	case constants.ExitUnchanged:
		return OutcomeUnchanged
	case constants.ExitRevisionRequired:
		return OutcomeRevisionRequired
	case constants.ExitDeprecated:
		return OutcomeDeprecated
	default:
		return OutcomeUnknownError
	}
}

// Label returns the fixed-width tag used for both console echo and the run
// log. One labeling convention is used everywhere.
func (o Outcome) Label() string {
	switch o {
	case OutcomeUnchanged:
		return "UNCHANGED:"
	case OutcomeRevisionRequired:
		return "REVISED:"
	case OutcomeDeprecated:
		return "DEPRECATED:"
	default:
		return "ERROR:"
	}
}

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeRevisionRequired:
		return "revision required"
	case OutcomeDeprecated:
		return "possibly deprecated"
	default:
		return "unknown error"
	}
}

// Result is the transient record produced by one checker invocation. It is
// consumed immediately to produce a log entry and a summary increment; there
// is no retention beyond that.
type Result struct {
	// Genus is the name that was checked, as given in the input list.
	Genus string

	// Outcome is the classification of the exit status.
	Outcome Outcome

	// ExitCode is the raw exit status (-1 when the process never exited).
	ExitCode int

	// Output is the checker's combined stdout and stderr.
	Output string
}

// HasDetail reports whether the result carries a detail block for the run
// log. Only revision-required entries embed the checker output.
func (r Result) HasDetail() bool {
	return r.Outcome == OutcomeRevisionRequired && r.Output != ""
}
