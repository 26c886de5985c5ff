// Package native defines the typed messages exchanged with the extension
// over the native messaging channel. The wire format is JSON; framing is
// handled by pkg/nativemsg.
package native

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Commands sent by the extension.
const (
	CommandInitialize    = "Initialize"
	CommandLaunchProfile = "LaunchProfile"
)

// Envelope carries the command discriminator. Decode this first, then
// decode the full payload into the matching message type.
type Envelope struct {
	Command string `json:"command"`
}

// MessageInitialize is the extension handshake. ProfileID is set when the
// extension already knows which profile it is running in; when empty the
// connector determines it by scanning profile storage.
type MessageInitialize struct {
	Command          string `json:"command"`
	ExtensionID      string `json:"extensionId"`
	ExtensionVersion string `json:"extensionVersion,omitempty"`
	ProfileID        string `json:"profileId,omitempty"`
}

// MessageLaunchProfile asks the connector to start a browser instance
// against a profile, optionally opening a URL in a new tab.
type MessageLaunchProfile struct {
	Command   string `json:"command"`
	ProfileID string `json:"profileId"`
	URL       string `json:"url,omitempty"`
}

// Response is the success/error envelope returned for every request.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func Success(data interface{}) Response {
	return Response{Status: StatusSuccess, Data: data}
}

func Error(message string) Response {
	return Response{Status: StatusError, Error: message}
}

// Initialized reports handshake completion. Cached is true when the
// profile id was supplied by the extension rather than discovered.
type Initialized struct {
	Type   string `json:"type"`
	Cached bool   `json:"cached"`
}

func NewInitialized(cached bool) Initialized {
	return Initialized{Type: "Initialized", Cached: cached}
}

// ProfileListEntry is the extension-facing view of a profile.
type ProfileListEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// EventProfileList is pushed to the extension after every successful
// initialization, carrying the resolved profile and the full profile list.
type EventProfileList struct {
	Event            string             `json:"event"`
	CurrentProfileID string             `json:"currentProfileId"`
	Profiles         []ProfileListEntry `json:"profiles"`
}

func NewEventProfileList(currentProfileID string, profiles []ProfileListEntry) EventProfileList {
	return EventProfileList{
		Event:            "ProfileList",
		CurrentProfileID: currentProfileID,
		Profiles:         profiles,
	}
}

// DecodeEnvelope extracts the command discriminator from a raw message.
func DecodeEnvelope(payload []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, errors.Wrap(err, "decoding message envelope")
	}
	if env.Command == "" {
		return Envelope{}, errors.New("message has no command")
	}
	return env, nil
}
