package consts

import (
	"errors"
)

var (
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)
