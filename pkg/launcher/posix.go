//go:build !windows

package launcher

import (
	"os"
	"os/exec"

	"github.com/Adenics/firefox-profile-switcher-connector/pkg/forkprocess"
	"github.com/common-fate/clio"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// DetachLauncher launches the browser through a two-phase detach: the
// connector re-executes its own binary as a short-lived trampoline child,
// and the trampoline moves itself into a new session before spawning the
// browser, reporting the outcome through its exit code. The connector
// waits on the trampoline only, never on the browser, so the browser is
// reparented to init instead of hanging off this short-lived helper.
type DetachLauncher struct {
	// Exe is the connector's own binary, re-executed as the trampoline.
	Exe string

	// runTrampoline starts the trampoline and reports its exit code.
	// Swapped out in tests.
	runTrampoline func(exe string, args []string) (int, error)
}

// New returns the launch strategy for this OS.
func New() (Launcher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, "resolving connector binary path")
	}
	return &DetachLauncher{Exe: exe, runTrampoline: runTrampolineProcess}, nil
}

func (l *DetachLauncher) Launch(binary string, args []string) error {
	trampolineArgs := append([]string{TrampolineCommand, binary}, args...)
	clio.Debugf("starting detach trampoline: %s %v", l.Exe, trampolineArgs)

	code, err := l.runTrampoline(l.Exe, trampolineArgs)
	if err != nil {
		return &ForkError{Err: err}
	}
	if code != DetachOK {
		return &BadExitCodeError{Code: code}
	}
	return nil
}

func runTrampolineProcess(exe string, args []string) (int, error) {
	cmd := exec.Command(exe, args...)
	// nil std streams default to the null device; the trampoline must not
	// touch the message channel on stdout
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

// RunTrampoline is the child side of the protocol: detach into a new
// session, spawn the browser, report through the exit code. args is the
// browser binary followed by its arguments.
func RunTrampoline(args []string) int {
	if len(args) == 0 {
		return DetachSpawnFailed
	}
	if _, err := unix.Setsid(); err != nil {
		return DetachSessionFailed
	}
	proc, err := forkprocess.New(args...)
	if err != nil {
		return DetachSpawnFailed
	}
	if err := proc.Start(); err != nil {
		return DetachSpawnFailed
	}
	return DetachOK
}
