package main

import (
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/vtcons/vtcons"
	"github.com/vtcons/vtcons/internal/errors"
	"github.com/vtcons/vtcons/vt"
)

func init() {
	rootCmd.AddCommand(grabCmd)
}

var grabCmd = &cobra.Command{
	Use:   `grab [n]`,
	Short: `take ownership of vt n (or the first free vt) until interrupted`,
	Long: `take ownership of vt n (or the first free vt) until interrupted.
the held vt participates in cooperative switching: switch requests
are acknowledged, SIGINT or SIGTERM restores the console and exits.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return grabFunc(args) })
	},
}

func grabFunc(args []string) error {
	var (
		sess *vt.Session
		err  error
	)
	if len(args) == 1 {
		num, errConv := strconv.Atoi(args[0])
		if errConv != nil {
			return errors.New(errConv)
		}
		sess, err = vtcons.AcquireTTY(devDir, num, logger())
	} else {
		sess, err = vtcons.AcquireFree(devDir, logger())
	}
	if err != nil {
		return err
	}
	defer sess.Close()

	// The kernel delivers SIGUSR1 both when it wants the VT back and
	// when it hands it back; which acknowledge to issue follows from
	// whether we currently hold the foreground. The toggle trusts that
	// every SIGUSR1 belongs to the switch handshake: one sent by hand
	// (kill -USR1) flips it out of step and the next acknowledge is
	// the wrong one for the kernel's state.
	sw := make(chan os.Signal, 1)
	signal.Notify(sw, unix.SIGUSR1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(sw)
	defer signal.Stop(quit)

	foreground := true
	for {
		select {
		case <-sw:
			if foreground {
				sess.AckRelease()
			} else {
				sess.AckAcquire()
			}
			foreground = !foreground
		case <-quit:
			return nil
		}
	}
}
