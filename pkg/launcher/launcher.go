// Package launcher spawns a browser instance against a profile as a
// fully independent OS process. One strategy exists per OS family: a
// two-phase detach on POSIX systems, a direct spawn with job-object
// escape on Windows, and a store activation path for packaged installs.
package launcher

// Launcher starts the given binary with the given arguments so that the
// resulting process outlives the connector.
type Launcher interface {
	Launch(binary string, args []string) error
}

// TrampolineCommand is the hidden argv marker that re-enters the
// connector binary as the detach trampoline on POSIX systems.
const TrampolineCommand = "__fps-detach"

// Trampoline exit codes, the contract between the two detach phases.
const (
	DetachOK            = 0
	DetachSpawnFailed   = 1
	DetachSessionFailed = 2
)

// BrowserArgs builds the argument list for a browser invocation: the
// profile selection flag with the profile's display name, then the
// new-tab flag and URL when a URL was requested.
func BrowserArgs(profileName string, url string) []string {
	args := []string{"-P", profileName}
	if url != "" {
		args = append(args, "--new-tab", url)
	}
	return args
}
