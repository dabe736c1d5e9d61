//go:build freebsd

package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Golden request codes from sys/consio.h and sys/kbio.h.
func TestRequestCodes(t *testing.T) {
	assert.EqualValues(t, 0x40047601, vtOpenQry)
	assert.EqualValues(t, 0x80087602, vtSetMode)
	assert.EqualValues(t, 0x40087603, vtGetMode)
	assert.EqualValues(t, 0x20007604, vtRelDisp)
	assert.EqualValues(t, 0x20007605, vtActivate)
	assert.EqualValues(t, 0x20007606, vtWaitActive)
	assert.EqualValues(t, 0x40047608, vtGetIndex)

	assert.EqualValues(t, 0x40044b06, kdGKbMode)
	assert.EqualValues(t, 0x20004b07, kdSKbMode)
	assert.EqualValues(t, 0x40044b09, kdGetMode)
	assert.EqualValues(t, 0x20004b0a, kdSetMode)
}
