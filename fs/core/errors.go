package core

import (
	"errors"
	"io/fs"
)

// Re-exported io/fs sentinels. Providers return errors matching these via
// errors.Is.
var (
	ErrNotExist   = fs.ErrNotExist
	ErrExist      = fs.ErrExist
	ErrPermission = fs.ErrPermission
)

// ErrUnsupported is returned when a provider cannot perform an optional
// operation, such as changing times on a backend without metadata support.
var ErrUnsupported = errors.New("operation not supported")
