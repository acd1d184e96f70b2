package genera_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/genusbatch/pkg/errors"
	"github.com/plantkeeper/genusbatch/pkg/genera"
)

func TestReadSkipsEmptyLines(t *testing.T) {
	input := "Geranium\n\nAcacia\n\n\nCymbidium\n"

	names, err := genera.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Geranium", "Acacia", "Cymbidium"}, names)
}

func TestReadPreservesWhitespace(t *testing.T) {
	input := "  Geranium\nAcacia \n"

	names, err := genera.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"  Geranium", "Acacia "}, names)
}

func TestReadNoTrailingNewline(t *testing.T) {
	names, err := genera.Read(strings.NewReader("Geranium\nAcacia"))
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestReadEmptyInput(t *testing.T) {
	names, err := genera.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genera.txt")
	require.NoError(t, os.WriteFile(path, []byte("Geranium\n\nAcacia\n"), 0o644))

	names, err := genera.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Geranium", "Acacia"}, names)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := genera.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSlice(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}

	tests := []struct {
		name        string
		skip, limit int
		want        []string
	}{
		{"no slicing", 0, 0, []string{"A", "B", "C", "D", "E"}},
		{"skip only", 2, 0, []string{"C", "D", "E"}},
		{"limit only", 0, 2, []string{"A", "B"}},
		{"skip and limit", 1, 3, []string{"B", "C", "D"}},
		{"limit past end", 3, 10, []string{"D", "E"}},
		{"skip past end", 7, 0, nil},
		{"negative skip", -4, 2, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genera.Slice(names, tt.skip, tt.limit))
		})
	}
}
