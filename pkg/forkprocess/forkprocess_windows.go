//go:build windows

package forkprocess

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type Process struct {
	Args    []string
	Workdir string
}

// New creates a new Process. Args[0] is the binary path.
// Call Start() on the returned process to actually start it.
func New(args ...string) (*Process, error) {
	if len(args) == 0 {
		return nil, errors.New("no arguments provided")
	}
	p := Process{Args: args}
	return &p, nil
}

// Start launches a detached process.
//
// The browser runs the connector inside a job object that kills every
// child when the channel closes; CREATE_BREAKAWAY_FROM_JOB lets the new
// process escape it, and DETACHED_PROCESS drops the console. There is
// nothing to wait for: a successful spawn is a successful launch.
func (p *Process) Start() error {
	cmd := exec.Command(p.Args[0], p.Args[1:]...)
	cmd.Dir = p.Workdir
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_BREAKAWAY_FROM_JOB,
	}
	err := cmd.Start()
	if err != nil {
		return errors.Wrap(err, "starting command")
	}
	// detach from this new process because it continues to run
	return cmd.Process.Release()
}
