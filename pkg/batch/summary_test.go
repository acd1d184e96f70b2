package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/genusbatch/pkg/batch"
	"github.com/plantkeeper/genusbatch/pkg/checker"
)

func TestSummaryAdd(t *testing.T) {
	s := batch.NewSummary("genera.txt", "genusCheck.py")

	s.Add(checker.Result{Genus: "Fine", Outcome: checker.OutcomeUnchanged})
	s.Add(checker.Result{Genus: "Geranium", Outcome: checker.OutcomeRevisionRequired})
	s.Add(checker.Result{Genus: "Acacia", Outcome: checker.OutcomeDeprecated})
	s.Add(checker.Result{Genus: "Broken", Outcome: checker.OutcomeUnknownError})
	s.Finish()

	assert.Equal(t, 4, s.Processed)
	assert.Equal(t, batch.Counts{Unchanged: 1, Revised: 1, Deprecated: 1, Errors: 1}, s.Counts)
	assert.Equal(t, []string{"Geranium"}, s.Revised)
	assert.Equal(t, []string{"Acacia"}, s.Deprecated)
	assert.False(t, s.FinishedAt.IsZero())
}

func TestSummaryRecap(t *testing.T) {
	s := batch.NewSummary("genera.txt", "genusCheck.py")
	s.Add(checker.Result{Genus: "Fine", Outcome: checker.OutcomeUnchanged})
	s.Add(checker.Result{Genus: "Geranium", Outcome: checker.OutcomeRevisionRequired})

	assert.Equal(t, "processed 2 genera: 1 unchanged, 1 revised, 0 deprecated, 0 errors", s.Recap())

	s.Canceled = true
	assert.Contains(t, s.Recap(), "(canceled)")
}

func TestSummaryWriteFile(t *testing.T) {
	s := batch.NewSummary("genera.txt", "genusCheck.py")
	s.Add(checker.Result{Genus: "Geranium", Outcome: checker.OutcomeRevisionRequired})
	s.Finish()

	path := filepath.Join(t.TempDir(), "summary.yaml")
	require.NoError(t, s.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got batch.Summary
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "genera.txt", got.ListFile)
	assert.Equal(t, "genusCheck.py", got.Checker)
	assert.Equal(t, 1, got.Processed)
	assert.Equal(t, []string{"Geranium"}, got.Revised)
}
