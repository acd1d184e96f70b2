// Package runlog writes the run log artifact: a UTF-8 text file with a fixed
// banner line followed by one classified entry per processed genus.
//
// The file is truncated when a run starts and appended to for the run's
// duration, so the artifact never interleaves entries from two runs. Entries
// are flushed as they are written; an interrupted run keeps everything
// completed so far.
package runlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/plantkeeper/genusbatch/pkg/checker"
	"github.com/plantkeeper/genusbatch/pkg/constants"
	"github.com/plantkeeper/genusbatch/pkg/errors"
)

// Writer owns the run log file for the duration of a batch run.
type Writer struct {
	path string
	file *os.File
}

// Create truncates (or creates) the log file and writes the banner line.
func Create(path, listFile string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("create", path, err)
	}

	w := &Writer{path: path, file: file}
	if err := w.writeLine(Banner(listFile)); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// Banner returns the fixed first line of a run log.
func Banner(listFile string) string {
	return fmt.Sprintf("genusbatch results for %s", listFile)
}

// Record appends one classified entry. Revision-required entries carry the
// checker's combined output verbatim, terminated by a blank separator line;
// every other category is a single label line.
func (w *Writer) Record(result checker.Result) error {
	if err := w.writeLine(result.Outcome.Label() + " " + result.Genus); err != nil {
		return err
	}

	if result.HasDetail() {
		detail := strings.TrimRight(result.Output, "\n")
		if err := w.writeLine(detail); err != nil {
			return err
		}
		if err := w.writeLine(""); err != nil {
			return err
		}
	}

	return nil
}

// Path returns the log file path.
func (w *Writer) Path() string {
	return w.path
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return errors.WrapIO("close", w.path, w.file.Close())
}

// writeLine writes one line. The file is unbuffered, so each line reaches the
// OS before the next genus is attempted.
func (w *Writer) writeLine(line string) error {
	_, err := w.file.WriteString(line + "\n")
	return errors.WrapIO("write", w.path, err)
}
