package vt

import (
	"github.com/vtcons/vtcons/internal/errors"
)

// findFree asks the console for the lowest VT not allocated to any
// process and translates the kernel's 1-based number into the
// external 0-based device numbering.
func findFree(c Console) (int, error) {
	num, err := c.OpenQuery()
	if err != nil {
		return -1, errors.New(&QueryError{Err: err})
	}
	return num - 1, nil
}
