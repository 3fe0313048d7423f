package errs

import (
	"errors"
)

var (
	ErrNotStarted = errors.New("integration is not started")
)
