//go:build !freebsd

package vtcons_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtcons/vtcons"
	"github.com/vtcons/vtcons/internal/consts"
)

// Off FreeBSD the device layer refuses to come up; the composition
// still has to fail cleanly without leaking the opened descriptor.
func TestAcquireTTYUnsupportedPlatform(t *testing.T) {
	dirName := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirName, `ttyv0`), nil, 0o600))

	_, err := vtcons.AcquireTTY(dirName, 0, nil)
	require.ErrorIs(t, err, consts.ErrPlatformNotSupported)

	_, err = vtcons.AcquireFree(dirName, nil)
	require.ErrorIs(t, err, consts.ErrPlatformNotSupported)
}
