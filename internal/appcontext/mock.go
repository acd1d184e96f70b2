package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/plantkeeper/genusbatch/pkg/constants"
	"github.com/plantkeeper/genusbatch/pkg/logging"
)

// Mock provides a mock implementation of Interface for command tests.
// Each method can be customized by setting the corresponding function field;
// a nil field yields a sensible default.
type Mock struct {
	LoggerFunc         func() *zerolog.Logger
	CheckerCommandFunc func() string
	DefaultLogFileFunc func() string
	VersionFunc        func() string
	CommitFunc         func() string
	DateFunc           func() string
	BuiltByFunc        func() string
}

// Logger returns the mock logger or a nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// CheckerCommand returns the mock checker command or the default.
func (m *Mock) CheckerCommand() string {
	if m.CheckerCommandFunc != nil {
		return m.CheckerCommandFunc()
	}
	return constants.DefaultCheckerCommand
}

// DefaultLogFile returns the mock log path or the default.
func (m *Mock) DefaultLogFile() string {
	if m.DefaultLogFileFunc != nil {
		return m.DefaultLogFileFunc()
	}
	return constants.DefaultLogFile
}

// Version returns the mock version or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the mock commit or "none".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "none"
}

// Date returns the mock build date or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the mock builder or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
