package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFS_ReadsHostFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	var fsys Filesystem = DefaultFS{}
	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	f, err := fsys.Open(path)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 5)
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestDefaultFS_MissingFile(t *testing.T) {
	_, err := DefaultFS{}.Stat(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewMemFS_IsolatedFromHost(t *testing.T) {
	mem := NewMemFS()
	require.NoError(t, afero.WriteFile(mem, "/conf/app.properties", []byte("a=1"), 0o644))

	var fsys Filesystem = mem
	info, err := fsys.Stat("/conf/app.properties")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	_, err = DefaultFS{}.Stat("/conf/app.properties")
	assert.Error(t, err)
}
