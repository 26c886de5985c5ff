package connector

import (
	"os"

	"github.com/Adenics/firefox-profile-switcher-connector/pkg/browser"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/launcher"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/native"
	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

// LaunchProfile starts a browser instance against the requested profile,
// optionally opening a URL in a new tab.
func (h *Handler) LaunchProfile(msg native.MessageLaunchProfile) native.Response {
	registry, err := h.Registry.Load()
	if err != nil {
		return native.Error(errors.Wrap(err, "reading profile registry").Error())
	}

	profile := registry.FindByID(msg.ProfileID)
	if profile == nil {
		return native.Error("unknown profile: " + msg.ProfileID)
	}

	if err := h.launchBrowser(profile.Name, msg.URL); err != nil {
		return native.Error(err.Error())
	}
	return native.Success(nil)
}

func (h *Handler) launchBrowser(profileName, url string) error {
	args := launcher.BrowserArgs(profileName, url)

	// Store-packaged installs cannot be exec'd by path; activation has
	// priority whenever the package inspection succeeded, and it bypasses
	// binary location entirely.
	if packageID := h.State.MSIXPackage(); packageID != "" {
		clio.Debugf("launching packaged browser %s", packageID)
		return h.Activate(packageID, args)
	}

	binary, err := browser.Locate(h.State.Config.BinaryOverride(), h.State.Discovery)
	if err != nil {
		return err
	}

	if _, err := os.Stat(binary); err != nil {
		// The selected binary is gone (stale override, uninstalled
		// browser). One fallback pass over the well-known locations only.
		alt, ok := h.FindAltBinary()
		if !ok {
			return launcher.ErrBinaryDoesNotExist
		}
		if _, err := os.Stat(alt); err != nil {
			return launcher.ErrBinaryDoesNotExist
		}
		clio.Debugf("binary %s does not exist, using alternative %s", binary, alt)
		binary = alt
	}

	clio.Debugf("launching browser %s with args %v", binary, args)
	return h.Launcher.Launch(binary, args)
}
