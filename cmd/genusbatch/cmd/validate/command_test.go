package validate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/genusbatch/cmd/genusbatch/cmd/validate"
	"github.com/plantkeeper/genusbatch/internal/appcontext"
)

func runValidate(t *testing.T, lines string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "genera.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	cmd := validate.NewCommand(&appcontext.Mock{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCleanList(t *testing.T) {
	out, err := runValidate(t, "Geranium\nAcacia\n")
	require.NoError(t, err)
	assert.Contains(t, out, "2 genera validated, 0 warning(s)")
}

func TestValidateWarningsOnly(t *testing.T) {
	out, err := runValidate(t, "geranium\nAcacia\n")
	require.NoError(t, err)
	assert.Contains(t, out, "WARNING:")
	assert.Contains(t, out, "title case")
}

func TestValidateDuplicatesFail(t *testing.T) {
	out, err := runValidate(t, "Geranium\nGeranium\n")
	require.Error(t, err)
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "duplicate")
}

func TestValidateMissingFile(t *testing.T) {
	cmd := validate.NewCommand(&appcontext.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})

	require.Error(t, cmd.Execute())
}
