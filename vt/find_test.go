package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// queryConsole answers the free-VT query and nothing else.
type queryConsole struct {
	Console
	freeVT int
	err    error
}

func (c queryConsole) OpenQuery() (int, error) { return c.freeVT, c.err }

// The kernel reports the free VT in its 1-based numbering; callers
// get the 0-based device number.
func TestFindFreeTranslation(t *testing.T) {
	for kernelNum, want := range map[int]int{1: 0, 5: 4, 12: 11} {
		num, err := findFree(queryConsole{freeVT: kernelNum})
		require.NoError(t, err)
		assert.Equal(t, want, num)
	}
}

func TestFindFreeQueryError(t *testing.T) {
	kerr := &KernelCallError{Op: `VT_OPENQRY`, Errno: unix.ENXIO}
	_, err := findFree(queryConsole{err: kerr})
	require.Error(t, err)
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.ErrorIs(t, err, kerr)
}
