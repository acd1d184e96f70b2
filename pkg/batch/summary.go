package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/plantkeeper/genusbatch/pkg/checker"
	"github.com/plantkeeper/genusbatch/pkg/constants"
	"github.com/plantkeeper/genusbatch/pkg/errors"
)

// Counts holds the per-category totals for a run.
type Counts struct {
	Unchanged  int `yaml:"unchanged"`
	Revised    int `yaml:"revised"`
	Deprecated int `yaml:"deprecated"`
	Errors     int `yaml:"errors"`
}

// Summary is the durable recap of one batch run. It is printed as a one-line
// console recap after every run and optionally written as a YAML document.
type Summary struct {
	ListFile   string    `yaml:"list_file"`
	Checker    string    `yaml:"checker"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	Processed  int       `yaml:"processed"`
	Counts     Counts    `yaml:"counts"`
	Revised    []string  `yaml:"revised,omitempty"`
	Deprecated []string  `yaml:"deprecated,omitempty"`
	Canceled   bool      `yaml:"canceled,omitempty"`
}

// NewSummary starts a summary for a run over the given list file.
func NewSummary(listFile, checkerCommand string) *Summary {
	return &Summary{
		ListFile:  listFile,
		Checker:   checkerCommand,
		StartedAt: time.Now(),
	}
}

// Add folds one classified result into the summary.
func (s *Summary) Add(result checker.Result) {
	s.Processed++
	switch result.Outcome {
	case checker.OutcomeUnchanged:
		s.Counts.Unchanged++
	case checker.OutcomeRevisionRequired:
		s.Counts.Revised++
		s.Revised = append(s.Revised, result.Genus)
	case checker.OutcomeDeprecated:
		s.Counts.Deprecated++
		s.Deprecated = append(s.Deprecated, result.Genus)
	default:
		s.Counts.Errors++
	}
}

// Finish stamps the end of the run.
func (s *Summary) Finish() {
	s.FinishedAt = time.Now()
}

// Recap renders the one-line console totals.
func (s *Summary) Recap() string {
	recap := fmt.Sprintf("processed %d genera: %d unchanged, %d revised, %d deprecated, %d errors",
		s.Processed, s.Counts.Unchanged, s.Counts.Revised, s.Counts.Deprecated, s.Counts.Errors)
	if s.Canceled {
		recap += " (canceled)"
	}
	return recap
}

// WriteFile marshals the summary to YAML at the given path.
func (s *Summary) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	return errors.WrapIO("write", path, os.WriteFile(path, data, constants.FilePermissions))
}
