//go:build !windows

package launcher

import "github.com/pkg/errors"

// ActivatePackaged is never reachable outside Windows: package discovery
// only succeeds there, and this path is gated on its success.
func ActivatePackaged(packageID string, args []string) error {
	return errors.New("packaged activation is only available on windows")
}
