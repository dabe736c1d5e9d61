//go:build freebsd

package vt

import (
	"os"
	"unsafe"

	"github.com/containerd/console"
	"golang.org/x/sys/unix"

	"github.com/vtcons/vtcons/internal/errors"
)

// consio/kbio request codes, computed once like the _IO/_IOR/_IOW
// macros in sys/ioccom.h.
const (
	iocVoid     = 0x20000000
	iocOut      = 0x40000000
	iocIn       = 0x80000000
	iocParmMask = 0x1fff

	sizeofInt    = 4
	sizeofVtMode = 8 // struct vt_mode: 2 chars, 3 shorts

	vtOpenQry    uintptr = iocOut | (sizeofInt&iocParmMask)<<16 | 'v'<<8 | 1
	vtSetMode    uintptr = iocIn | (sizeofVtMode&iocParmMask)<<16 | 'v'<<8 | 2
	vtGetMode    uintptr = iocOut | (sizeofVtMode&iocParmMask)<<16 | 'v'<<8 | 3
	vtRelDisp    uintptr = iocVoid | 'v'<<8 | 4
	vtActivate   uintptr = iocVoid | 'v'<<8 | 5
	vtWaitActive uintptr = iocVoid | 'v'<<8 | 6
	vtGetIndex   uintptr = iocOut | (sizeofInt&iocParmMask)<<16 | 'v'<<8 | 8

	kdGKbMode uintptr = iocOut | (sizeofInt&iocParmMask)<<16 | 'K'<<8 | 6
	kdSKbMode uintptr = iocVoid | 'K'<<8 | 7
	kdGetMode uintptr = iocOut | (sizeofInt&iocParmMask)<<16 | 'K'<<8 | 9
	kdSetMode uintptr = iocVoid | 'K'<<8 | 10
)

// ioctl issues one request against fd. EINTR is retried here and
// nowhere else.
func ioctl(fd uintptr, op string, req uintptr, arg uintptr) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, arg)
		if errno == 0 {
			return nil
		}
		if errno == unix.EINTR {
			continue
		}
		return errors.New(&KernelCallError{Op: op, Errno: errno})
	}
}

func ioctlGetInt(fd uintptr, op string, req uintptr) (int, error) {
	var v int32
	err := ioctl(fd, op, req, uintptr(unsafe.Pointer(&v)))
	return int(v), err
}

// Device is the Console backed by an open VT device descriptor. It
// assumes exclusive ownership of the descriptor; Close releases it
// exactly once.
type Device struct {
	f *os.File
	c console.Console
}

var _ Console = (*Device)(nil)

// OpenDevice wraps a VT descriptor obtained from OpenTTY. The
// descriptor is consumed: it belongs to the returned Device, and on
// error it is closed.
func OpenDevice(fd int) (*Device, error) {
	f := os.NewFile(uintptr(fd), `ttyv`)
	c, err := console.ConsoleFromFile(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.New(err)
	}
	return &Device{f: f, c: c}, nil
}

// FindFreeTTY returns the zero-based number of the lowest VT not
// allocated to any process, determined through a scratch open of
// ttyv0. The kernel reports the number in its own 1-based scheme.
func FindFreeTTY(dirFD int) (int, error) {
	fd, err := OpenTTY(dirFD, 0)
	if err != nil {
		return -1, err
	}
	dev, err := OpenDevice(fd)
	if err != nil {
		return -1, errors.New(&DeviceOpenError{Name: ttyName(0), Err: err})
	}
	defer dev.Close()
	return findFree(dev)
}

func (d *Device) OpenQuery() (int, error) {
	return ioctlGetInt(d.f.Fd(), `VT_OPENQRY`, vtOpenQry)
}

func (d *Device) Index() (int, error) {
	return ioctlGetInt(d.f.Fd(), `VT_GETINDEX`, vtGetIndex)
}

func (d *Device) SwitchMode() (SwitchMode, error) {
	var m SwitchMode
	err := ioctl(d.f.Fd(), `VT_GETMODE`, vtGetMode, uintptr(unsafe.Pointer(&m)))
	return m, err
}

func (d *Device) SetSwitchMode(m SwitchMode) error {
	return ioctl(d.f.Fd(), `VT_SETMODE`, vtSetMode, uintptr(unsafe.Pointer(&m)))
}

func (d *Device) AckSwitch(code int) error {
	return ioctl(d.f.Fd(), `VT_RELDISP`, vtRelDisp, uintptr(code))
}

func (d *Device) Activate(vt int) error {
	return ioctl(d.f.Fd(), `VT_ACTIVATE`, vtActivate, uintptr(vt))
}

func (d *Device) WaitActive(vt int) error {
	return ioctl(d.f.Fd(), `VT_WAITACTIVE`, vtWaitActive, uintptr(vt))
}

func (d *Device) KeyboardMode() (int, error) {
	return ioctlGetInt(d.f.Fd(), `KDGKBMODE`, kdGKbMode)
}

func (d *Device) SetKeyboardMode(mode int) error {
	return ioctl(d.f.Fd(), `KDSKBMODE`, kdSKbMode, uintptr(mode))
}

func (d *Device) DisplayMode() (int, error) {
	return ioctlGetInt(d.f.Fd(), `KDGETMODE`, kdGetMode)
}

func (d *Device) SetDisplayMode(mode int) error {
	return ioctl(d.f.Fd(), `KDSETMODE`, kdSetMode, uintptr(mode))
}

func (d *Device) MakeRaw() error {
	if err := d.c.SetRaw(); err != nil {
		return errors.New(err)
	}
	// SetRaw commits without flushing; drop whatever is still queued
	// so no line-mode input leaks into the raw discipline.
	return d.flush()
}

func (d *Device) MakeSane() error {
	if err := d.c.Reset(); err != nil {
		return errors.New(err)
	}
	// Reset commits without flushing; drop queued raw-mode scancodes
	// so they cannot replay into the restored cooked discipline.
	return d.flush()
}

func (d *Device) flush() error {
	const freadFwrite = 0x1 | 0x2
	var what int32 = freadFwrite
	return ioctl(d.f.Fd(), `TIOCFLUSH`, unix.TIOCFLUSH, uintptr(unsafe.Pointer(&what)))
}

func (d *Device) Close() error { return d.f.Close() }
