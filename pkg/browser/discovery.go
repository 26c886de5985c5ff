package browser

import (
	"os"
	"runtime"
	"strings"

	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

// The browser's crash reporter exports the path used to restart the
// browser. Since the browser spawns this connector with the same
// environment, the variable identifies the binary that launched us.
const crashReporterEnvVar = "MOZ_CRASHREPORTER_RESTART_ARG_0"

// Discovery is the result of inspecting the process environment for the
// browser this connector belongs to. It is computed once at startup and
// passed to whichever component needs it; the value never changes for the
// lifetime of the process.
type Discovery struct {
	// ParentPath is the inferred browser binary, valid when ParentErr is nil.
	ParentPath string
	ParentErr  error

	// MSIXPackage is the store package identity (e.g.
	// "Mozilla.Firefox_n80bbvh6b1yt2"), valid when MSIXErr is nil.
	// Only ever populated on Windows.
	MSIXPackage string
	MSIXErr     error
}

// Discover inspects the environment exactly once. Call it at startup and
// share the result.
func Discover() *Discovery {
	d := &Discovery{}
	d.ParentPath, d.ParentErr = inspectParentProcess()
	if d.ParentErr != nil {
		clio.Debugf("parent browser not identified: %s", d.ParentErr)
	} else {
		clio.Debugf("parent browser binary: %s", d.ParentPath)
	}

	if runtime.GOOS != "windows" {
		d.MSIXErr = errors.New("packaged installs only exist on windows")
		return d
	}
	if d.ParentErr != nil {
		d.MSIXErr = errors.Wrap(d.ParentErr, "identifying parent browser")
		return d
	}
	d.MSIXPackage, d.MSIXErr = ParseMSIXPackage(d.ParentPath)
	if d.MSIXErr != nil {
		// Not a packaged install; ordinary binary launch applies.
		clio.Debugf("no MSIX package detected: %s", d.MSIXErr)
	} else {
		clio.Debugf("detected MSIX package: %s", d.MSIXPackage)
	}
	return d
}

// inspectParentProcess resolves the path of the browser that spawned this
// connector. When the crash-reporter variable points at a missing file we
// fall back to the well-known locations; a set-but-stale variable is still
// returned as a last resort so the launcher's existence check can trigger
// its own relocation.
func inspectParentProcess() (string, error) {
	envPath, ok := os.LookupEnv(crashReporterEnvVar)
	if ok && envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	if path, found := FindWellKnownBinary(); found {
		return path, nil
	}

	if ok && envPath != "" {
		return envPath, nil
	}
	return "", errors.Errorf("%s is not set", crashReporterEnvVar)
}

// ParseMSIXPackage decodes a store package identity from a browser binary
// path. Store apps live under
//
//	<drive>\Program Files\WindowsApps\<name>_<version>_<arch>__<publisher>\...
//
// and the identity is "<name>_<publisher>". Any other path shape is an
// error; callers treat that as "not a packaged install".
func ParseMSIXPackage(path string) (string, error) {
	parts := splitPathComponents(path)
	if len(parts) < 3 || parts[0] != "Program Files" || parts[1] != "WindowsApps" {
		return "", errors.Errorf("browser path %q is not under Program Files\\WindowsApps", path)
	}

	pkg := parts[2]
	first := strings.Index(pkg, "_")
	last := strings.LastIndex(pkg, "_")
	if first == -1 {
		return "", errors.Errorf("package folder %q is not in MSIX format", pkg)
	}
	return pkg[:first] + "_" + pkg[last+1:], nil
}

// splitPathComponents splits a Windows-style path into components, with
// the drive prefix removed. Forward slashes are accepted so the parse can
// be exercised on any OS.
func splitPathComponents(path string) []string {
	normalized := strings.ReplaceAll(path, `\`, "/")
	var parts []string
	for _, part := range strings.Split(normalized, "/") {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) > 0 && strings.HasSuffix(parts[0], ":") {
		parts = parts[1:]
	}
	return parts
}
