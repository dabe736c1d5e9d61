//go:build linux

package vt_test

// The real device delegates its raw/sane line discipline changes to
// github.com/containerd/console. The VT device itself only exists on
// a console-owning host, but the termios round trip the session
// relies on can be exercised against a pty pair anywhere.

import (
	"testing"

	"github.com/containerd/console"
	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRawResetTermiosRoundTrip(t *testing.T) {
	ptm, pts, err := pty.Open()
	require.NoError(t, err)
	defer ptm.Close()
	defer pts.Close()

	before, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	require.NoError(t, err)
	require.NotZero(t, before.Lflag&unix.ICANON)
	require.NotZero(t, before.Lflag&unix.ECHO)

	c, err := console.ConsoleFromFile(pts)
	require.NoError(t, err)

	require.NoError(t, c.SetRaw())
	raw, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	require.NoError(t, err)
	assert.Zero(t, raw.Lflag&unix.ICANON)
	assert.Zero(t, raw.Lflag&unix.ECHO)
	assert.Zero(t, raw.Lflag&unix.ISIG)

	require.NoError(t, c.Reset())
	after, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	require.NoError(t, err)
	assert.Equal(t, before.Lflag, after.Lflag)
	assert.Equal(t, before.Iflag, after.Iflag)
	assert.Equal(t, before.Oflag, after.Oflag)
}
