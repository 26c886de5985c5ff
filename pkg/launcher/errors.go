package launcher

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBinaryDoesNotExist means a candidate binary was identified but is
// missing on disk, and the well-known-location fallback found nothing
// either. Distinct from browser.ErrBinaryNotFound, where no candidate was
// ever identified.
var ErrBinaryDoesNotExist = errors.New("browser binary does not exist")

// ForkError means the detach trampoline could not be started at all.
type ForkError struct {
	Err error
}

func (e *ForkError) Error() string {
	return fmt.Sprintf("forking detached process: %s", e.Err)
}

func (e *ForkError) Unwrap() error { return e.Err }

// BadExitCodeError means the detach trampoline ran but reported failure:
// 1 for a failed browser spawn, 2 for a failed session detach.
type BadExitCodeError struct {
	Code int
}

func (e *BadExitCodeError) Error() string {
	return fmt.Sprintf("detached launch failed with exit code %d", e.Code)
}

// ProcessLaunchError wraps an OS error from a direct spawn.
type ProcessLaunchError struct {
	Err error
}

func (e *ProcessLaunchError) Error() string {
	return fmt.Sprintf("launching browser process: %s", e.Err)
}

func (e *ProcessLaunchError) Unwrap() error { return e.Err }

// COMError means the application activation service could not be
// instantiated.
type COMError struct {
	Message string
}

func (e *COMError) Error() string {
	return fmt.Sprintf("creating activation manager: %s", e.Message)
}

// MSIXLaunchError means the activation service rejected the activation
// call for a packaged install.
type MSIXLaunchError struct {
	Message string
}

func (e *MSIXLaunchError) Error() string {
	return fmt.Sprintf("activating packaged browser: %s", e.Message)
}
