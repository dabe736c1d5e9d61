package vt

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// SwitchMode is handed to the kernel by pointer and has to match
// struct vt_mode byte for byte.
func TestSwitchModeLayout(t *testing.T) {
	var m SwitchMode
	assert.EqualValues(t, 8, unsafe.Sizeof(m))
	assert.EqualValues(t, 0, unsafe.Offsetof(m.Mode))
	assert.EqualValues(t, 1, unsafe.Offsetof(m.Waitv))
	assert.EqualValues(t, 2, unsafe.Offsetof(m.Relsig))
	assert.EqualValues(t, 4, unsafe.Offsetof(m.Acqsig))
	assert.EqualValues(t, 6, unsafe.Offsetof(m.Frsig))
}
