package types

import "errors"

// Store operation errors. Operations wrap these with path context using
// fmt.Errorf("%w: ...") so callers can match the failure kind with errors.Is
// while still getting a diagnosable message.
var (
	ErrDirectoryRead      = errors.New("directory read failed")
	ErrDirectoryWrite     = errors.New("directory write failed")
	ErrProjectRead        = errors.New("project read failed")
	ErrProjectWrite       = errors.New("project write failed")
	ErrNonExistingProject = errors.New("project does not exist")
)

// ErrCorruptSidecar reports a sidecar file that exists but does not parse.
// The store logs a warning and skips such entries during a scan instead of
// failing the whole load.
var ErrCorruptSidecar = errors.New("corrupt sidecar file")
