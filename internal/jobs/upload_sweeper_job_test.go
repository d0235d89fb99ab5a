package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUpload(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("photo"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestPruneStaleUploads(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)

	staleOrphan := writeUpload(t, dir, "orphan.jpg", old)
	staleReferenced := writeUpload(t, dir, "referenced.jpg", old)
	fresh := writeUpload(t, dir, "fresh.jpg", time.Now())

	referenced := map[string]struct{}{"referenced.jpg": {}}

	removed, err := pruneStaleUploads(dir, referenced, maxUploadAge)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, staleOrphan)
	assert.FileExists(t, staleReferenced)
	assert.FileExists(t, fresh)
}

func TestPruneStaleUploads_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	removed, err := pruneStaleUploads(dir, nil, maxUploadAge)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.DirExists(t, filepath.Join(dir, "nested"))
}

func TestPruneStaleUploads_MissingDir(t *testing.T) {
	_, err := pruneStaleUploads(filepath.Join(t.TempDir(), "absent"), nil, maxUploadAge)
	require.Error(t, err)
}
