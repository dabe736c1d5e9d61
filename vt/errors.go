package vt

import (
	"fmt"
	"syscall"
)

// DeviceOpenError reports a VT device node that could not be opened,
// because it does not exist or access was denied.
type DeviceOpenError struct {
	Name string
	Err  error
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf(`open vt device %q: %v`, e.Name, e.Err)
}
func (e *DeviceOpenError) Unwrap() error { return e.Err }

// QueryError reports a failed free-VT kernel query.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf(`free vt query: %v`, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// KernelCallError reports a failed privileged call against the VT
// device. Op names the kernel request, VT_SETMODE style.
type KernelCallError struct {
	Op    string
	Errno syscall.Errno
}

func (e *KernelCallError) Error() string { return e.Op + `: ` + e.Errno.Error() }
func (e *KernelCallError) Unwrap() error { return e.Errno }
