package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Result Files
// The sink writes to a temporary file and only replaces the target on commit

func testResult(name string) *bitsearch.Result {
	r := bitsearch.NewResult("https://bitsearch.to")
	r.Name = name
	r.Link = "magnet:?xt=urn:btih:" + name
	return r
}

func TestFileSink_EmitWritesToTempFile(t *testing.T) {
	t.Parallel()

	// Given a sink targeting a file
	path := filepath.Join(t.TempDir(), "results.txt")
	sink := fs.NewFileSink(path)
	defer sink.Abort()

	// When I emit a result
	err := sink.Emit(context.Background(), testResult("ubuntu"))

	// Then no error occurs
	require.NoError(t, err)

	// And the temp file exists
	_, err = os.Stat(path + ".tmp")
	require.NoError(t, err, "temp file should exist")

	// And the target does not exist yet
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "target should not exist until commit")
}

func TestFileSink_CommitMovesTempToTarget(t *testing.T) {
	t.Parallel()

	// Given a sink with emitted results
	path := filepath.Join(t.TempDir(), "results.txt")
	sink := fs.NewFileSink(path)
	require.NoError(t, sink.Emit(context.Background(), testResult("a")))
	require.NoError(t, sink.Emit(context.Background(), testResult("b")))

	// When I commit
	require.NoError(t, sink.Commit())

	// Then the target holds one line per result
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"magnet:?xt=urn:btih:a|a|-1|-1|-1|https://bitsearch.to||-1\n"+
			"magnet:?xt=urn:btih:b|b|-1|-1|-1|https://bitsearch.to||-1\n",
		string(data))

	// And the temp file is gone
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSink_CommitReplacesExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing result file
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	// When a search with no results commits
	sink := fs.NewFileSink(path)
	require.NoError(t, sink.Commit())

	// Then the file is empty
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileSink_AbortKeepsExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing result file
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	// And a sink that has emitted results
	sink := fs.NewFileSink(path)
	require.NoError(t, sink.Emit(context.Background(), testResult("new")))

	// When I abort
	require.NoError(t, sink.Abort())

	// Then the old content is untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))

	// And the temp file is removed
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSink_AbortWithoutEmitIsNoop(t *testing.T) {
	t.Parallel()

	sink := fs.NewFileSink(filepath.Join(t.TempDir(), "results.txt"))

	require.NoError(t, sink.Abort())
}

func TestFileSink_EmitErrorSurfacesOnCommit(t *testing.T) {
	t.Parallel()

	// Given a sink whose directory does not exist
	path := filepath.Join(t.TempDir(), "missing", "results.txt")
	sink := fs.NewFileSink(path)

	// When I emit results
	// Then Emit does not fail, so other sinks keep receiving results
	require.NoError(t, sink.Emit(context.Background(), testResult("a")))
	require.NoError(t, sink.Emit(context.Background(), testResult("b")))

	// And Commit reports the write failure
	err := sink.Commit()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// And Abort still succeeds
	require.NoError(t, sink.Abort())
}

func TestFileSink_FlushErrorThenAbort(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	// Given a temp file whose writes always fail
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.Symlink("/dev/full", path+".tmp"))
	sink := fs.NewFileSink(path)
	require.NoError(t, sink.Emit(context.Background(), testResult("a")))

	// When the buffered line is flushed on commit
	require.Error(t, sink.Commit())

	// Then Abort cleans up without touching a closed file
	require.NoError(t, sink.Abort())
	_, err := os.Lstat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	// And the target was never created
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
