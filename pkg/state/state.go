// Package state holds the connector's per-process mutable state. One
// instance exists per host process; the browser starts a fresh connector
// for every extension session, so nothing here is ever persisted.
package state

import (
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/browser"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/config"
	"github.com/Masterminds/semver/v3"
	"github.com/common-fate/clio"
)

type State struct {
	Config    *config.Config
	Discovery *browser.Discovery

	// CurrentProfileID is set during initialization, either supplied by
	// the extension or discovered by scanning profile storage.
	CurrentProfileID string

	// ExtensionID is the internal id of the calling extension.
	ExtensionID string

	// ExtensionVersion is the extension's parsed version; nil when the
	// extension did not report one or reported something unparsable.
	ExtensionVersion *semver.Version

	// FirstRun is consumed by the first successful initialization, which
	// marks the resolved profile as the browser default.
	FirstRun bool
}

func New(cfg *config.Config, discovery *browser.Discovery) *State {
	return &State{
		Config:    cfg,
		Discovery: discovery,
		FirstRun:  true,
	}
}

// SetExtension records the calling extension's identity. The version is
// parsed best-effort: an unparsable version string is dropped, not an
// error, so a dev build of the extension can still complete the
// handshake.
func (s *State) SetExtension(extensionID, version string) {
	s.ExtensionID = extensionID
	s.ExtensionVersion = nil
	if version == "" {
		return
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		clio.Debugf("ignoring unparsable extension version %q: %s", version, err)
		return
	}
	s.ExtensionVersion = v
}

// MSIXPackage returns the discovered store package identity, or "" when
// the browser is not a packaged install.
func (s *State) MSIXPackage() string {
	if s.Discovery == nil || s.Discovery.MSIXErr != nil {
		return ""
	}
	return s.Discovery.MSIXPackage
}
