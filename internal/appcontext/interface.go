// Package appcontext provides the shared application context interface used
// by all commands. Commands accept this interface rather than the concrete
// App type, which keeps them testable with the Mock implementation.
package appcontext

import (
	"github.com/rs/zerolog"
)

// Interface defines the application context that commands need.
// The App struct from cmd/genusbatch/app implements it.
type Interface interface {
	// Logger returns the configured logger instance.
	// Commands should use this for all operational logging.
	Logger() *zerolog.Logger

	// CheckerCommand returns the configured external checker command.
	CheckerCommand() string

	// DefaultLogFile returns the configured default run log path.
	DefaultLogFile() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
