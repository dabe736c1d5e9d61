package vt

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/vtcons/vtcons/internal/errors"
)

func ttyName(num int) string { return fmt.Sprintf(`ttyv%d`, num) }

// OpenTTY opens the device node of the VT with the given zero-based
// number, resolved relative to the directory descriptor dirFD. The
// descriptor is opened read-write without becoming the controlling
// terminal of the process and is closed across exec.
func OpenTTY(dirFD int, ttyNum int) (int, error) {
	name := ttyName(ttyNum)
	for {
		fd, err := unix.Openat(dirFD, name, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return -1, errors.New(&DeviceOpenError{Name: name, Err: err})
		}
		return fd, nil
	}
}
