// Package constants provides shared constants used throughout the genusbatch
// codebase: file permissions, default paths, and the checker invocation
// defaults that every component agrees on.
package constants

// Checker invocation defaults. The external checker performs the actual
// reconciliation against the remote taxonomic authorities; genusbatch only
// runs it and interprets its exit status.
const (
	// DefaultCheckerCommand is the external checker invoked once per genus.
	DefaultCheckerCommand = "genusCheck.py"

	// DefaultLogFile is the run log artifact written by the batch runner.
	DefaultLogFile = "genus_changes.log"
)

// CheckerFlags are the fixed flags passed to the checker on every invocation:
// verbose output, orchid mode, and the parentage consistency check.
var CheckerFlags = []string{"-v", "-o", "--parentage"}

// Checker exit codes. These are the checker's contract, not ours; anything
// outside this set is classified as an unknown error.
const (
	// ExitUnchanged means the genus needs no changes.
	ExitUnchanged = 0

	// ExitRevisionRequired means the checker proposed changes; detail is on
	// the checker's combined output.
	ExitRevisionRequired = 65

	// ExitDeprecated means the genus name is likely obsolete per the
	// authority source.
	ExitDeprecated = 66
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x).
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)
