package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vtcons/vtcons/internal/errors"
	"github.com/vtcons/vtcons/vt"
)

func init() {
	rootCmd.AddCommand(activateCmd)
}

var activateCmd = &cobra.Command{
	Use:   `activate <n>`,
	Short: `switch display focus to vt n without taking ownership`,
	Long:  `switch display focus to vt n without taking ownership`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return activateFunc(args) })
	},
}

func activateFunc(args []string) error {
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New(err)
	}
	dir, err := os.Open(devDir)
	if err != nil {
		return errors.New(err)
	}
	defer dir.Close()
	fd, err := vt.OpenTTY(int(dir.Fd()), num)
	if err != nil {
		return err
	}
	dev, err := vt.OpenDevice(fd)
	if err != nil {
		return err
	}
	defer dev.Close()
	idx, err := dev.Index()
	if err != nil {
		return err
	}
	if err := dev.Activate(idx); err != nil {
		return err
	}
	return dev.WaitActive(idx)
}
