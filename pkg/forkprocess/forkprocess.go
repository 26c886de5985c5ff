//go:build !windows

// Package forkprocess starts a process which runs in the background,
// detached from the connector's session. The connector lives exactly as
// long as the extension keeps the message channel open, so a browser
// started with plain exec.Command would die with it; the spawned process
// gets its own session and null standard streams instead.
package forkprocess

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
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

// Start launches the process as a session leader with every standard
// stream pointed at the null device. The connector's stdout carries the
// native messaging channel, so the child must never inherit it.
func (p *Process) Start() error {
	var sysproc = &syscall.SysProcAttr{
		Setsid: true,
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "opening null device")
	}
	defer devnull.Close()

	attr := os.ProcAttr{
		Dir: p.Workdir,
		Env: os.Environ(),
		Files: []*os.File{
			devnull,
			devnull,
			devnull,
		},
		Sys: sysproc,
	}
	process, err := os.StartProcess(p.Args[0], p.Args, &attr)
	if err != nil {
		return errors.Wrap(err, "starting process")
	}

	err = process.Release()
	if err != nil {
		return errors.Wrap(err, "releasing process")
	}
	return nil
}
