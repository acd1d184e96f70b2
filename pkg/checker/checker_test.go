package checker_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/genusbatch/pkg/checker"
	"github.com/plantkeeper/genusbatch/pkg/errors"
)

// stubChecker writes an executable script that prints the given output and
// exits with the given status, standing in for the real external checker.
func stubChecker(t *testing.T, exitCode int, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub checker scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "stubcheck.sh")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%b' %q\nexit %d\n", output, exitCode)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCheckClassifiesExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     checker.Outcome
	}{
		{"unchanged", 0, checker.OutcomeUnchanged},
		{"revision required", 65, checker.OutcomeRevisionRequired},
		{"deprecated", 66, checker.OutcomeDeprecated},
		{"unmapped code", 17, checker.OutcomeUnknownError},
		{"generic failure", 1, checker.OutcomeUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := checker.New(stubChecker(t, tt.exitCode, ""))

			result, err := c.Check(context.Background(), "Geranium")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Outcome)
			assert.Equal(t, tt.exitCode, result.ExitCode)
			assert.Equal(t, "Geranium", result.Genus)
		})
	}
}

func TestCheckCapturesOutput(t *testing.T) {
	c := checker.New(stubChecker(t, 65, "Geranium needs revision\nline two\n"))

	result, err := c.Check(context.Background(), "Geranium")
	require.NoError(t, err)
	assert.Equal(t, checker.OutcomeRevisionRequired, result.Outcome)
	assert.Equal(t, "Geranium needs revision\nline two\n", result.Output)
	assert.True(t, result.HasDetail())
}

func TestCheckOnlyRevisedHasDetail(t *testing.T) {
	c := checker.New(stubChecker(t, 66, "noise on stderr"))

	result, err := c.Check(context.Background(), "Acacia")
	require.NoError(t, err)
	assert.Equal(t, checker.OutcomeDeprecated, result.Outcome)
	assert.False(t, result.HasDetail())
}

func TestCheckMissingCommand(t *testing.T) {
	c := checker.New(filepath.Join(t.TempDir(), "no-such-checker"))

	_, err := c.Check(context.Background(), "Geranium")
	require.Error(t, err)

	var perr *errors.ProcessError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, -1, perr.ExitCode)
	assert.Contains(t, perr.Command, "no-such-checker")
}

func TestCheckTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub checker scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "slowcheck.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nsleep 10\n"), 0o755))

	c := checker.New(path)
	c.Timeout = 50 * time.Millisecond

	_, err := c.Check(context.Background(), "Geranium")
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err))
}

func TestCheckCanceled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub checker scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "slowcheck.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nsleep 10\n"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := checker.New(path).Check(ctx, "Geranium")
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestNewDefaultsCommand(t *testing.T) {
	c := checker.New("")
	assert.Equal(t, "genusCheck.py", c.Command)
	assert.Equal(t, []string{"-v", "-o", "--parentage"}, c.Flags)
}

func TestCommandLine(t *testing.T) {
	c := checker.New("genusCheck.py")
	assert.Equal(t, "genusCheck.py -v -o --parentage Geranium", c.CommandLine("Geranium"))
}
