package vt

import (
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/vtcons/vtcons/internal/errors"
	"github.com/vtcons/vtcons/internal/log"
)

// Session owns one VT for the lifetime of a graphical session. It is
// created by Acquire and must be torn down with Close, which reverses
// every console state change in the opposite order. Exactly one
// Session may exist per owned VT; the value must not be copied, all
// kernel calls go through its single Console.
//
// A Session issues no calls on its own after Acquire: the enclosing
// process routes the kernel's switch notifications (SIGUSR1 for both
// directions in this configuration) to AckRelease or AckAcquire.
type Session struct {
	cons       Console
	vtNum      int // kernel numbering, fixed at acquire time
	origKbMode int // keyboard mode found before the session took over
	logger     *slog.Logger
	closed     bool
}

// must aborts on a failed privileged call. A failure halfway through
// an acquire or teardown sequence leaves the console in an unknown
// mix of raw/graphics/text state with no safe remediation, so these
// paths never return errors to the caller.
func must(err error) {
	if err != nil {
		panic(errors.New(err))
	}
}

// Acquire takes ownership of the VT behind cons: it records the
// pre-existing keyboard mode, switches keyboard input to raw
// scancodes, sets a raw line discipline and graphics display mode,
// installs process-controlled switching with SIGUSR1 as both release
// and acquire signal, and activates the VT, blocking until the kernel
// has completed the switch. logger may be nil.
//
// Any failing step panics with the wrapped kernel error; completed
// steps are not rolled back since the session never came into being.
func Acquire(cons Console, logger *slog.Logger) *Session {
	if cons == nil {
		panic(errors.NilParam(cons))
	}

	vtNum, err := cons.Index()
	must(err)
	log.Info(logger, `vt index`, `vt`, vtNum)

	// Raw mode mutes the console. In translated mode everything typed
	// into the graphical session would also reach the inactive text
	// console and be echoed there, passwords included.
	origKbMode, err := cons.KeyboardMode()
	must(err)
	log.Debug(logger, `setting kbd raw mode`, `original`, origKbMode)
	must(cons.SetKeyboardMode(KbRaw))

	log.Debug(logger, `setting termios raw mode`)
	must(cons.MakeRaw())

	log.Debug(logger, `setting graphics mode`)
	must(cons.SetDisplayMode(KdGraphics))

	// Frsig is required to be a valid signal even though the kernel
	// never sends it in this mode.
	log.Debug(logger, `setting vt process switch mode`)
	must(cons.SetSwitchMode(SwitchMode{
		Mode:   ModeProcess,
		Relsig: int16(unix.SIGUSR1),
		Acqsig: int16(unix.SIGUSR1),
		Frsig:  int16(unix.SIGIO),
	}))

	log.Debug(logger, `activating vt`, `vt`, vtNum)
	must(cons.Activate(vtNum))
	must(cons.WaitActive(vtNum))

	return &Session{cons: cons, vtNum: vtNum, origKbMode: origKbMode, logger: logger}
}

// Index returns the kernel number of the owned VT.
func (s *Session) Index() int { return s.vtNum }

// AckRelease acknowledges a pending switch away from the owned VT.
// It must be called once per release notification; the kernel holds
// the switch until it arrives. No session state is touched, making
// the call safe from a restricted signal-handling path.
func (s *Session) AckRelease() {
	log.Debug(s.logger, `acknowledging vt release`)
	must(s.cons.AckSwitch(RelDone))
}

// AckAcquire acknowledges the switch back to the owned VT, once per
// acquire notification. No session state is touched.
func (s *Session) AckAcquire() {
	log.Debug(s.logger, `acknowledging vt acquire`)
	must(s.cons.AckSwitch(AckAcq))
}

// Close restores the console in the reverse order of Acquire:
// keyboard mode, text display mode, sane line discipline, automatic
// switch handling, then closes the device. It runs at most once,
// further calls are no-ops. A failing restore step panics, a console
// stuck half way between text and graphics state is a user-visible
// hazard nothing can recover from.
func (s *Session) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	log.Debug(s.logger, `restoring kbd mode`, `mode`, s.origKbMode)
	must(s.cons.SetKeyboardMode(s.origKbMode))
	log.Debug(s.logger, `restoring text mode`)
	must(s.cons.SetDisplayMode(KdText))
	log.Debug(s.logger, `restoring sane termios`)
	must(s.cons.MakeSane())
	log.Debug(s.logger, `restoring auto switch mode`)
	must(s.cons.SetSwitchMode(SwitchMode{Mode: ModeAuto}))
	_ = s.cons.Close()
}
