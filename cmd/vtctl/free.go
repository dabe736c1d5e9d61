package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtcons/vtcons/internal/errors"
	"github.com/vtcons/vtcons/vt"
)

func init() {
	rootCmd.AddCommand(freeCmd)
}

var freeCmd = &cobra.Command{
	Use:   `free`,
	Short: `print the device name of the first free vt`,
	Long:  `print the device name of the first free vt`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(freeFunc)
	},
}

func freeFunc() error {
	dir, err := os.Open(devDir)
	if err != nil {
		return errors.New(err)
	}
	defer dir.Close()
	num, err := vt.FindFreeTTY(int(dir.Fd()))
	if err != nil {
		return err
	}
	fmt.Printf("ttyv%d\n", num)
	return nil
}
