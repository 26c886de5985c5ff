// Package connector implements the request handlers behind the native
// messaging channel: the extension handshake and browser launching.
package connector

import (
	"encoding/json"

	"github.com/Adenics/firefox-profile-switcher-connector/pkg/browser"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/launcher"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/native"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/nativemsg"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/profiles"
	"github.com/Adenics/firefox-profile-switcher-connector/pkg/state"
	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

// Messenger is the outbound half of the message channel: responses to
// requests and unsolicited events toward the extension.
type Messenger interface {
	WriteResponse(resp native.Response) error
	WriteEvent(event interface{}) error
}

// Registry provides and persists the profile collection. The handlers
// only ever mutate the default flag in memory and hand the collection
// back for persistence.
type Registry interface {
	Load() (*profiles.IniState, error)
	Save(state *profiles.IniState) error
}

// Handler dispatches extension requests against the process state.
type Handler struct {
	State     *state.State
	Registry  Registry
	Messenger Messenger
	Launcher  launcher.Launcher

	// FindAltBinary locates a fallback binary from the well-known install
	// locations when the selected binary turns out to be missing on disk.
	FindAltBinary func() (string, bool)

	// Activate launches a store-packaged browser by package identity.
	Activate func(packageID string, args []string) error
}

func NewHandler(s *state.State, registry Registry, messenger Messenger, l launcher.Launcher) *Handler {
	return &Handler{
		State:         s,
		Registry:      registry,
		Messenger:     messenger,
		Launcher:      l,
		FindAltBinary: browser.FindWellKnownBinary,
		Activate:      launcher.ActivatePackaged,
	}
}

// HandleMessage decodes one raw message and dispatches it. Malformed and
// unknown messages produce an error response, never a crash: the
// extension may be newer than this connector.
func (h *Handler) HandleMessage(payload []byte) native.Response {
	env, err := native.DecodeEnvelope(payload)
	if err != nil {
		return native.Error(err.Error())
	}

	switch env.Command {
	case native.CommandInitialize:
		var msg native.MessageInitialize
		if err := json.Unmarshal(payload, &msg); err != nil {
			return native.Error(errors.Wrap(err, "decoding initialize message").Error())
		}
		return h.Initialize(msg)
	case native.CommandLaunchProfile:
		var msg native.MessageLaunchProfile
		if err := json.Unmarshal(payload, &msg); err != nil {
			return native.Error(errors.Wrap(err, "decoding launch message").Error())
		}
		return h.LaunchProfile(msg)
	default:
		clio.Debugf("unknown command: %s", env.Command)
		return native.Error("unknown command: " + env.Command)
	}
}

// ChannelMessenger writes JSON-encoded responses and events to a native
// messaging channel.
type ChannelMessenger struct {
	Channel *nativemsg.Channel
}

func (m ChannelMessenger) WriteResponse(resp native.Response) error {
	return m.writeJSON(resp)
}

func (m ChannelMessenger) WriteEvent(event interface{}) error {
	return m.writeJSON(event)
}

func (m ChannelMessenger) writeJSON(v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding message")
	}
	return m.Channel.WriteMessage(payload)
}
