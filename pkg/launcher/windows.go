//go:build windows

package launcher

import (
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/forkprocess"
	"github.com/common-fate/clio"
)

// WindowsLauncher spawns the browser directly. Detachment happens through
// the process creation flags (job-object breakaway, no console) rather
// than a fork dance; success means the spawn call succeeded.
type WindowsLauncher struct{}

// New returns the launch strategy for this OS.
func New() (Launcher, error) {
	return &WindowsLauncher{}, nil
}

func (WindowsLauncher) Launch(binary string, args []string) error {
	clio.Debugf("spawning detached browser: %s %v", binary, args)

	proc, err := forkprocess.New(append([]string{binary}, args...)...)
	if err != nil {
		return &ProcessLaunchError{Err: err}
	}
	if err := proc.Start(); err != nil {
		return &ProcessLaunchError{Err: err}
	}
	return nil
}

// RunTrampoline is only meaningful on POSIX systems; the direct spawn
// above already escapes the job object.
func RunTrampoline(args []string) int {
	return DetachSpawnFailed
}
