// Package vt manages exclusive ownership of a virtual console on
// behalf of a graphical session: it finds and opens ttyv device
// nodes, puts the console into raw keyboard and graphics display
// mode, takes part in the kernel's cooperative switch handshake and
// restores the original text-mode state on teardown.
//
// The kernel numbers VTs from 1 while their device nodes (ttyv0,
// ttyv1, ...) are numbered from 0; everything crossing that boundary
// translates with external = kernel - 1.
package vt

// Switch control and keyboard/display mode values of the consio and
// kbio interfaces.
const (
	// SwitchMode.Mode
	ModeAuto    = 0 // kernel switches VTs on its own
	ModeProcess = 1 // owner must acknowledge every switch

	// AckSwitch discriminators
	RelDone = 1 // release acknowledged, kernel may take the VT away
	AckAcq  = 2 // acquire acknowledged, owner resumed the VT

	// keyboard modes
	KbRaw   = 0 // unprocessed scancode delivery
	KbXlate = 1 // keymap-translated delivery with echo

	// display modes
	KdText     = 0
	KdGraphics = 1
)

// SwitchMode mirrors the kernel's struct vt_mode: two chars followed
// by three shorts, passed by pointer to the set/get switch mode
// calls. Frsig is never acted on by the kernel but has to hold a
// valid signal number whenever Mode is ModeProcess.
type SwitchMode struct {
	Mode   int8
	Waitv  int8
	Relsig int16
	Acqsig int16
	Frsig  int16
}

// Console is the privileged call surface of one open VT device. Each
// method is a single kernel call; failures carry a *KernelCallError.
// The real implementation is Device; tests substitute a recording
// fake. Calls must all be issued from the goroutine owning the
// console, they are not safe for concurrent use.
type Console interface {
	// OpenQuery returns the kernel number of the lowest VT not
	// allocated to any process.
	OpenQuery() (int, error)
	// Index returns the kernel number of the VT behind the device.
	Index() (int, error)

	SwitchMode() (SwitchMode, error)
	SetSwitchMode(SwitchMode) error
	// AckSwitch acknowledges a pending switch with RelDone or AckAcq.
	AckSwitch(code int) error
	// Activate asks the kernel to bring the given VT to the
	// foreground.
	Activate(vt int) error
	// WaitActive blocks until the given VT is the foreground VT.
	WaitActive(vt int) error

	KeyboardMode() (int, error)
	SetKeyboardMode(mode int) error
	DisplayMode() (int, error)
	SetDisplayMode(mode int) error

	// MakeRaw switches the line discipline to fully raw and discards
	// buffered input and output. MakeSane restores a cooked
	// discipline.
	MakeRaw() error
	MakeSane() error

	Close() error
}
