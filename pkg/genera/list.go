// Package genera handles the genus list input: a UTF-8 text file with one
// genus name per line and no header. The list is read-only source material;
// names are taken as written, whitespace included.
package genera

import (
	"bufio"
	"io"
	"os"

	"github.com/plantkeeper/genusbatch/pkg/errors"
)

// Load reads a genus list from a file. Empty lines are skipped; every other
// line is one genus name, preserved verbatim.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapIO("open", path, errors.ErrNotFound)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	names, err := Read(f)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return names, nil
}

// Read reads a genus list from a reader. Split out from Load so the line
// semantics can be tested without a file.
func Read(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// Slice applies skip/limit re-slicing to a loaded list, supporting resumption
// of an interrupted run. A zero or negative limit means no limit; skipping
// past the end yields an empty list.
func Slice(names []string, skip, limit int) []string {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(names) {
		return nil
	}

	names = names[skip:]
	if limit > 0 && limit < len(names) {
		names = names[:limit]
	}
	return names
}
