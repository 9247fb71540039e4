package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouzil/cmake-lint/pkg/lint"
)

// execRoot runs the root command with args in an isolated working
// directory and returns stdout, stderr and the resulting error.
func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config=None"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_CleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.cmake", "set(a b)\n")

	out, errOut, err := execRoot(t, path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Total Errors: 0\n", errOut)
}

func TestRoot_ViolationsFound(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dirty.cmake", "set(a b) \n")

	out, errOut, err := execRoot(t, path)
	require.ErrorIs(t, err, errViolationsFound)
	assert.Contains(t, out, path+":1: Line ends in whitespace [whitespace/eol]")
	assert.Contains(t, errOut, "Total Errors: 1")
}

func TestRoot_MultipleFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.cmake", "set(x y) \n")
	b := writeFile(t, dir, "b.cmake", "set(x\ty)\n")

	out, _, err := execRoot(t, "--jobs=4", a, b)
	require.ErrorIs(t, err, errViolationsFound)
	posA := bytes.Index([]byte(out), []byte(a))
	posB := bytes.Index([]byte(out), []byte(b))
	require.GreaterOrEqual(t, posA, 0)
	require.GreaterOrEqual(t, posB, 0)
	assert.Less(t, posA, posB, "results must follow command-line order")
}

func TestRoot_QuietSuppressesCleanSummary(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.cmake", "set(a b)\n")

	t.Run("clean run", func(t *testing.T) {
		_, errOut, err := execRoot(t, "--quiet", path)
		require.NoError(t, err)
		assert.Empty(t, errOut)
	})

	t.Run("errors still summarized", func(t *testing.T) {
		dirty := writeFile(t, dir, "dirty.cmake", "set(a b) \n")
		_, errOut, err := execRoot(t, "--quiet", dirty)
		require.ErrorIs(t, err, errViolationsFound)
		assert.Contains(t, errOut, "Total Errors: 1")
	})
}

func TestRoot_FilterFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dirty.cmake", "set(a b) \n")

	_, errOut, err := execRoot(t, "--filter=-whitespace", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Total Errors: 0")
}

func TestRoot_EmptyFilterListsCategories(t *testing.T) {
	out, errOut, err := execRoot(t, "--filter=")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "whitespace/tabs")
	assert.Contains(t, errOut, "convention/filename")
}

func TestRoot_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad filter grammar", args: []string{"--config=None", "--filter=whitespace", "CMakeLists.txt"}},
		{name: "unknown filter category", args: []string{"--config=None", "--filter=-bogus", "CMakeLists.txt"}},
		{name: "missing config file", args: []string{"--config=/does/not/exist", "CMakeLists.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			cmd := NewRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)
			err := cmd.ExecuteContext(context.Background())
			var usageErr *UsageError
			require.ErrorAs(t, err, &usageErr)
		})
	}
}

func TestRoot_NoFilesNoDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execRoot(t)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, err.Error(), "no files were specified")
}

func TestRoot_DefaultsToCMakeLists(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "CMakeLists.txt", "set(a b) \n")

	out, _, err := execRoot(t)
	require.ErrorIs(t, err, errViolationsFound)
	assert.Contains(t, out, "CMakeLists.txt:1: Line ends in whitespace")
}

func TestRoot_IgnoresNonCMakeFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "README.md", "# hello \n")

	out, errOut, err := execRoot(t, path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Ignoring file: "+path)
	assert.Contains(t, errOut, "Total Errors: 0")
}

func TestRoot_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dirty.cmake", "set(a b) \n")

	out, _, err := execRoot(t, "-o", "json", path)
	require.ErrorIs(t, err, errViolationsFound)

	var report struct {
		Files []struct {
			Path       string `json:"path"`
			Violations []struct {
				Line     int    `json:"line"`
				Category string `json:"category"`
			} `json:"violations"`
		} `json:"files"`
		TotalErrors int `json:"total_errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.TotalErrors)
	require.Len(t, report.Files, 1)
	assert.Equal(t, path, report.Files[0].Path)
}

func TestRoot_SpacesFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "indent.cmake", "if(A)\n   set(a b)\nendif()\n")

	t.Run("default unit flags three spaces", func(t *testing.T) {
		_, _, err := execRoot(t, path)
		require.ErrorIs(t, err, errViolationsFound)
	})

	t.Run("matching unit accepts three spaces", func(t *testing.T) {
		_, _, err := execRoot(t, "--spaces=3", path)
		require.NoError(t, err)
	})
}

func TestRoot_VerdictOwnsExitStatus(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.cmake", "set(a b)\n")
	dirty := writeFile(t, dir, "dirty.cmake", "set(a b) \n")

	// Mirrors the Execute wiring: usage-level failures are recorded on
	// the verdict, which then decides the final status.
	run := func(t *testing.T, args ...string) *rootOptions {
		t.Helper()
		opts := newRootOptions()
		cmd := newRootCmd(opts)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--config=None"}, args...))
		if err := cmd.ExecuteContext(context.Background()); err != nil && !errors.Is(err, errViolationsFound) {
			opts.verdict.RecordUsageError()
		}
		return opts
	}

	t.Run("clean", func(t *testing.T) {
		opts := run(t, clean)
		assert.Equal(t, lint.ExitClean, opts.verdict.ExitCode())
	})

	t.Run("violations", func(t *testing.T) {
		opts := run(t, dirty)
		assert.Equal(t, lint.ExitViolations, opts.verdict.ExitCode())
		assert.Equal(t, 1, opts.verdict.Total())
	})

	t.Run("usage error dominates", func(t *testing.T) {
		opts := run(t, "--filter=-bogus", dirty)
		assert.Equal(t, lint.ExitUsage, opts.verdict.ExitCode())
	})
}

func TestUsageError_Unwrap(t *testing.T) {
	inner := errors.New("no files were specified")
	err := &UsageError{Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "no files were specified", err.Error())
}
