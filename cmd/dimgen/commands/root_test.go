package commands_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/dimgen/cmd/dimgen/commands"
	"github.com/MacroPower/dimgen/pkg/dimerrors"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

const wantQuantities = `void DimensionalityLibraryBuild() {
    dimLibrary = OCDictionaryCreateMutable(0);
    dimQuantitiesLibrary = OCDictionaryCreateMutable(0);
    SIDimensionalityRef dim;

#pragma mark kSIQuantityLength
    // kSIQuantityWidth
    dim = AddDimensionalityToLibrary(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0);
    OCDictionaryAddValue(dimQuantitiesLibrary, kSIQuantityLength, dim);
    OCDictionaryAddValue(dimQuantitiesLibrary, kSIQuantityWidth, dim);

#pragma mark kSIQuantityMass
    dim = AddDimensionalityToLibrary(0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0);
    OCDictionaryAddValue(dimQuantitiesLibrary, kSIQuantityMass, dim);

}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := commands.NewRootCmd("dimgen", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	stdout, stderr, err := execute(t, filepath.Join(testDataDir, "quantities.csv"))
	require.NoError(t, err)
	assert.Equal(t, wantQuantities, stdout)
	assert.Empty(t, stderr)
}

func TestRootCmdPrefix(t *testing.T) {
	stdout, _, err := execute(t, "--prefix", "kQ", filepath.Join(testDataDir, "quantities.csv"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "#pragma mark kQLength\n    // kQWidth\n")
}

func TestRootCmdUsage(t *testing.T) {
	tcs := map[string][]string{
		"no arguments":        {},
		"two arguments":       {"a.csv", "b.csv"},
		"missing is not read": {filepath.Join(testDataDir, "missing.csv"), "extra"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(t, args...)
			require.ErrorIs(t, err, dimerrors.ErrUsage)
			require.NotErrorIs(t, err, dimerrors.ErrReadTable)
			assert.Contains(t, err.Error(), "dimgen TABLE.csv")
			assert.Empty(t, stdout)
		})
	}
}

func TestRootCmdStrictNames(t *testing.T) {
	path := filepath.Join(testDataDir, "collisions.csv")

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "kSIQuantityMass")
	assert.Contains(t, stderr, "kSIQuantityMass")

	stdout, _, err = execute(t, "--strict_names", path)
	require.ErrorIs(t, err, dimerrors.ErrNameCollision)
	assert.Empty(t, stdout)
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
		caseStyle string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
			caseStyle: "capitalize",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
			caseStyle: "capitalize",
		},
		"debug level camel": {
			logLevel:  "debug",
			logFormat: "logfmt",
			caseStyle: "camel",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			caseStyle: "capitalize",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			caseStyle: "capitalize",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid case": {
			logLevel:  "warn",
			logFormat: "text",
			caseStyle: "snake",
			wantErr:   dimerrors.ErrInvalidArguments,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(t,
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"--case", tc.caseStyle,
				"version",
			)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestRootCmdArgPointers(t *testing.T) {
	args := commands.NewRootArgs()

	// Test default values
	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
	assert.Empty(t, args.GetPrefix())
	assert.Empty(t, args.GetCaseStyle())
	assert.False(t, args.GetStrictNames())

	g, err := args.NewGenerator()
	require.NoError(t, err)
	assert.Equal(t, "kSIQuantityLength", g.Identifier("length"))
}
