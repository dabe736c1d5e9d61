// Package vtcons bundles the vt building blocks into the two entry
// points a graphical session usually wants: grab a specific VT, or
// grab the first free one.
package vtcons

import (
	"log/slog"
	"os"

	"github.com/vtcons/vtcons/internal/errors"
	"github.com/vtcons/vtcons/vt"
)

// DefaultDevDir is where ttyv device nodes normally live.
const DefaultDevDir = `/dev`

// AcquireTTY opens the VT with the given zero-based number under
// devDir and acquires it. The caller must Close the session on every
// exit path.
func AcquireTTY(devDir string, ttyNum int, logger *slog.Logger) (*vt.Session, error) {
	dir, err := os.Open(devDir)
	if err != nil {
		return nil, errors.New(err)
	}
	defer dir.Close()
	return acquire(int(dir.Fd()), ttyNum, logger)
}

// AcquireFree acquires the first VT not allocated to any process.
func AcquireFree(devDir string, logger *slog.Logger) (*vt.Session, error) {
	dir, err := os.Open(devDir)
	if err != nil {
		return nil, errors.New(err)
	}
	defer dir.Close()
	ttyNum, err := vt.FindFreeTTY(int(dir.Fd()))
	if err != nil {
		return nil, err
	}
	return acquire(int(dir.Fd()), ttyNum, logger)
}

func acquire(dirFD int, ttyNum int, logger *slog.Logger) (*vt.Session, error) {
	fd, err := vt.OpenTTY(dirFD, ttyNum)
	if err != nil {
		return nil, err
	}
	dev, err := vt.OpenDevice(fd)
	if err != nil {
		return nil, err
	}
	return vt.Acquire(dev, logger), nil
}
