//go:build !freebsd

package vt

import (
	"os"

	"github.com/vtcons/vtcons/internal/consts"
	"github.com/vtcons/vtcons/internal/errors"
)

// Device is only functional on FreeBSD, whose console exposes the
// consio/kbio interface and the ttyv naming scheme.
type Device struct{}

var _ Console = (*Device)(nil)

func OpenDevice(fd int) (*Device, error) {
	_ = os.NewFile(uintptr(fd), `ttyv`).Close()
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func FindFreeTTY(dirFD int) (int, error) {
	return -1, errors.New(consts.ErrPlatformNotSupported)
}

func (d *Device) OpenQuery() (int, error) { return -1, errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) Index() (int, error) { return -1, errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) SwitchMode() (SwitchMode, error) {
	return SwitchMode{}, errors.New(consts.ErrPlatformNotSupported)
}

func (d *Device) SetSwitchMode(SwitchMode) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) AckSwitch(code int) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) Activate(vt int) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) WaitActive(vt int) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) KeyboardMode() (int, error) { return -1, errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) SetKeyboardMode(mode int) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) DisplayMode() (int, error) { return -1, errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) SetDisplayMode(mode int) error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) MakeRaw() error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) MakeSane() error { return errors.New(consts.ErrPlatformNotSupported) }

func (d *Device) Close() error { return nil }
