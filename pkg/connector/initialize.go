package connector

import (
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/native"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/profiles"
	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

// Shown to the user by the extension when no profile's storage contains
// the extension. The wording is part of the extension contract.
const msgUnableToDetectProfile = "Unable to detect current profile."

// Initialize completes the extension handshake. When the extension
// already knows its profile id the id is trusted as-is; otherwise every
// known profile's extension storage is scanned for the calling extension.
// Either way a ProfileList event is emitted afterwards.
func (h *Handler) Initialize(msg native.MessageInitialize) native.Response {
	registry, err := h.Registry.Load()
	if err != nil {
		return native.Error(errors.Wrap(err, "reading profile registry").Error())
	}

	if msg.ProfileID != "" {
		clio.Debugf("profile id was provided by extension: %s", msg.ProfileID)
		h.finishInit(registry, msg.ProfileID, msg.ExtensionID, msg.ExtensionVersion)
		return native.Success(native.NewInitialized(true))
	}

	clio.Debugf("profile id not provided, determining via extension id %s", msg.ExtensionID)

	profileRoot := h.State.Config.ProfileDir(h.State.MSIXPackage())
	profileID, err := profiles.DetectCurrentProfile(msg.ExtensionID, registry, profileRoot)
	if err != nil {
		return native.Error(msgUnableToDetectProfile)
	}

	h.finishInit(registry, profileID, msg.ExtensionID, msg.ExtensionVersion)
	return native.Success(native.NewInitialized(false))
}

// finishInit merges the resolved profile into process state, performs
// first-run bookkeeping and notifies the extension of the profile list.
func (h *Handler) finishInit(registry *profiles.IniState, profileID, extensionID, extensionVersion string) {
	h.State.CurrentProfileID = profileID
	h.State.SetExtension(extensionID, extensionVersion)

	if h.State.FirstRun {
		h.State.FirstRun = false
		clio.Debug("first run, marking current profile as default")

		if registry.SetDefault(profileID) {
			if err := h.Registry.Save(registry); err != nil {
				clio.Errorf("failed to persist first-run default profile: %s", err)
			}
		} else {
			clio.Errorf("failed to find first-run profile to set as default: %s", profileID)
		}
	}

	entries := make([]native.ProfileListEntry, 0, len(registry.Profiles))
	for _, p := range registry.Profiles {
		entries = append(entries, native.ProfileListEntry{
			ID:      p.ID,
			Name:    p.Name,
			Default: p.Default,
		})
	}
	if err := h.Messenger.WriteEvent(native.NewEventProfileList(profileID, entries)); err != nil {
		clio.Errorf("failed to send profile list event: %s", err)
	}
}
