package vt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/vtcons/vtcons/vt"
)

func TestOpenTTY(t *testing.T) {
	dirName := t.TempDir()
	// node of the VT with external number 3
	require.NoError(t, os.WriteFile(filepath.Join(dirName, `ttyv3`), nil, 0o600))
	dir, err := os.Open(dirName)
	require.NoError(t, err)
	defer dir.Close()

	fd, err := vt.OpenTTY(int(dir.Fd()), 3)
	require.NoError(t, err)
	assert.NoError(t, unix.Close(fd))
}

func TestOpenTTYMissingNode(t *testing.T) {
	dir, err := os.Open(t.TempDir())
	require.NoError(t, err)
	defer dir.Close()

	_, err = vt.OpenTTY(int(dir.Fd()), 7)
	require.Error(t, err)
	var oerr *vt.DeviceOpenError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, `ttyv7`, oerr.Name)
	assert.ErrorIs(t, err, unix.ENOENT)
}
