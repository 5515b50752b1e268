package commands_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/dimgen"
)

func TestHeaderCmd(t *testing.T) {
	stdout, stderr, err := execute(t, "header", filepath.Join(testDataDir, "quantities.csv"))
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `#define kSIQuantityLength                               STR("length")`, lines[0])
	assert.Equal(t, `#define kSIQuantityWidth                                STR("width")`, lines[1])
	assert.Equal(t, `#define kSIQuantityMass                                 STR("mass")`, lines[2])

	_, _, err = execute(t, "header")
	require.ErrorIs(t, err, dimerrors.ErrUsage)
}

func TestGroupsCmd(t *testing.T) {
	stdout, _, err := execute(t, "groups", filepath.Join(testDataDir, "quantities.csv"))
	require.NoError(t, err)

	var got []dimgen.GroupReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, []dimgen.QuantityReport{
		{Name: "Length", Identifier: "kSIQuantityLength"},
		{Name: "Width", Identifier: "kSIQuantityWidth"},
	}, got[0].Quantities)

	stdout, _, err = execute(t, "groups", "-o", "json", filepath.Join(testDataDir, "quantities.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "["))

	_, _, err = execute(t, "groups", "--format", "toml", filepath.Join(testDataDir, "quantities.csv"))
	require.ErrorIs(t, err, dimerrors.ErrInvalidArguments)
}
