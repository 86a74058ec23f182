package latte_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/latte"
)

// TestExecEngine_MissingBinary: a binary that cannot be executed
// surfaces as ErrExternalTool, and the code file it would have read is
// still written and left in place.
func TestExecEngine_MissingBinary(t *testing.T) {
	fs := afero.NewMemMapFs()
	eng := latte.NewExecEngine(fs, "/nonexistent/lattix-test-binary", logr.Discard())

	dir := filepath.Join(t.TempDir(), "run-1")
	code := "3 3\n10 -1 -1\n-1 1 0\n-1 0 1\n"
	_, err := eng.Run(context.Background(), latte.RunRequest{Dir: dir, Code: code})
	require.ErrorIs(t, err, latte.ErrExternalTool)

	written, rerr := afero.ReadFile(fs, filepath.Join(dir, latte.CodeFileName))
	require.NoError(t, rerr, "code file must survive the failure")
	assert.Equal(t, code, string(written))
}

// TestExecEngine_ReadsOutputFiles: output files present in the working
// directory are returned by content even when the process itself fails,
// so a caller can inspect partial results.
func TestExecEngine_ReadsOutputFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	eng := latte.NewExecEngine(fs, "/nonexistent/lattix-test-binary", logr.Discard())

	dir := filepath.Join(t.TempDir(), "run-2")
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, latte.NumFileName), []byte("45\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, latte.RatFileName), []byte("x := 1/(1-t);\n"), 0o644))

	res, err := eng.Run(context.Background(), latte.RunRequest{Dir: dir, Code: "1 2\n1 -1\n"})
	require.ErrorIs(t, err, latte.ErrExternalTool)
	assert.Equal(t, "45\n", res.NumFile)
	assert.Equal(t, "x := 1/(1-t);\n", res.RatFile)
}
