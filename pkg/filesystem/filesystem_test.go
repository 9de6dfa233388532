package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndIsDir(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/home/.ssh", 0700))
	require.NoError(t, afero.WriteFile(fsys, "/home/.vimrc", []byte("set nu"), 0644))

	ok, err := filesystem.Exists(fsys, "/home/.vimrc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filesystem.Exists(fsys, "/home/.missing")
	require.NoError(t, err)
	assert.False(t, ok)

	isDir, err := filesystem.IsDir(fsys, "/home/.ssh")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = filesystem.IsDir(fsys, "/home/.vimrc")
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = filesystem.IsDir(fsys, "/nope")
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestExists_PathBelowFile(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, afero.WriteFile(fsys, blocker, []byte("x"), 0644))

	ok, err := filesystem.Exists(fsys, filepath.Join(blocker, "child"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCopyFile(t *testing.T) {
	t.Run("new target takes source permissions", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, afero.WriteFile(fsys, "/src/bin.sh", []byte("#!/bin/sh"), 0755))

		require.NoError(t, filesystem.CopyFile(fsys, "/src/bin.sh", "/dst/bin.sh"))

		data, err := afero.ReadFile(fsys, "/dst/bin.sh")
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh", string(data))

		info, err := fsys.Stat("/dst/bin.sh")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("existing target is overwritten", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, afero.WriteFile(fsys, "/src/a", []byte("new"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "/dst/a", []byte("old content"), 0600))

		require.NoError(t, filesystem.CopyFile(fsys, "/src/a", "/dst/a"))

		data, err := afero.ReadFile(fsys, "/dst/a")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("directory source is rejected", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, fsys.MkdirAll("/src/dir", 0755))
		assert.Error(t, filesystem.CopyFile(fsys, "/src/dir", "/dst/dir"))
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		err := filesystem.CopyFile(fsys, "/src/none", "/dst/none")
		assert.True(t, os.IsNotExist(err))
	})
}
