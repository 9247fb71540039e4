package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execWatch runs the watch subcommand with args under ctx and returns
// stdout, stderr and the resulting error.
func execWatch(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"watch", "--config=None"}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestWatch_BadFilterIsUsageError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.cmake", "set(a b)\n")

	_, _, err := execWatch(t, context.Background(), "--filter=-bogus", path)
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestWatch_EmptyFilterListsCategories(t *testing.T) {
	_, errOut, err := execWatch(t, context.Background(), "--filter=")
	require.NoError(t, err)
	assert.Contains(t, errOut, "whitespace/tabs")
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "clean.cmake")

	_, _, err := execWatch(t, context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestWatch_InitialLintThenCancel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.cmake", "set(a b)\n")

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(100*time.Millisecond, cancel)
	defer timer.Stop()
	defer cancel()

	_, errOut, err := execWatch(t, ctx, path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Total Errors: 0")
	assert.Contains(t, errOut, "Watching for changes")
}
