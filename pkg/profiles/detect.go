package profiles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

// ErrProfileNotFound means no profile's storage directory contains the
// extension. The caller surfaces this to the user; it is the extension's
// job to re-prompt for a profile.
var ErrProfileNotFound = errors.New("unable to detect current profile")

// The Firefox family stores extension data under keys with this prefix.
// Every supported variant currently shares the literal prefix, but the
// scan checks all of them so a variant can diverge without a format change.
var extensionStoragePrefixes = []string{
	"moz-extension+++", // Firefox
	"moz-extension+++", // LibreWolf
	"moz-extension+++", // Waterfox
	"moz-extension+++", // Zen Browser
}

// DetectCurrentProfile determines which profile the extension is running
// in by probing each profile's per-origin storage root for an entry
// belonging to the extension. Profiles whose storage directory cannot be
// read are skipped, not errors: a freshly created profile has no storage
// dir at all. The first matching profile in registry order wins.
func DetectCurrentProfile(extensionID string, state *IniState, profileRoot string) (string, error) {
	for i := range state.Profiles {
		profile := &state.Profiles[i]
		storagePath := filepath.Join(profile.FullPath(profileRoot), "storage", "default")

		dirEntries, err := os.ReadDir(storagePath)
		if err != nil {
			continue
		}

		for _, entry := range dirEntries {
			if matchesExtension(entry.Name(), extensionID) {
				clio.Debugf("determined current profile: %s", profile.ID)
				return profile.ID, nil
			}
		}
	}
	return "", ErrProfileNotFound
}

func matchesExtension(storageKey, extensionID string) bool {
	for _, prefix := range extensionStoragePrefixes {
		if strings.HasPrefix(storageKey, prefix+extensionID) {
			return true
		}
	}
	return false
}
