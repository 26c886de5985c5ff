package browser

import (
	"github.com/pkg/errors"
)

// ErrBinaryNotFound means no candidate binary could be identified at all.
// Distinct from a candidate that was identified but is missing on disk;
// the launcher reports that separately after its existence check.
var ErrBinaryNotFound = errors.New("no browser binary found")

// Locate picks the browser binary to launch.
//
// Precedence: the configured override always wins when set, even if the
// path does not exist (the launcher validates existence and falls back to
// the well-known table on its own). Next comes the parent-process
// discovery result, then the well-known install locations.
func Locate(override string, discovery *Discovery) (string, error) {
	if override != "" {
		return override, nil
	}
	if discovery != nil && discovery.ParentErr == nil {
		return discovery.ParentPath, nil
	}
	if path, ok := FindWellKnownBinary(); ok {
		return path, nil
	}
	return "", ErrBinaryNotFound
}
