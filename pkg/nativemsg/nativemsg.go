// Package nativemsg implements the browser native messaging wire format:
// each message is a JSON document preceded by a 32-bit native-byte-order
// length header. Firefox and Chromium share the format.
// https://developer.mozilla.org/en-US/docs/Mozilla/Add-ons/WebExtensions/Native_messaging
package nativemsg

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxInboundSize caps a single inbound frame. The browser limits outbound
// messages to 1MB, so anything larger than this is a corrupt header.
const maxInboundSize = 64 << 20

type Channel struct {
	Input  io.Reader
	Output io.Writer
}

// ReadMessage reads one length-prefixed frame and returns its payload.
// io.EOF is returned unchanged when the browser closes the channel, so
// callers can treat it as a clean shutdown.
func (c *Channel) ReadMessage() ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(c.Input, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "reading message header")
	}

	size := binary.NativeEndian.Uint32(header[:])
	if size > maxInboundSize {
		return nil, errors.Errorf("message size %d exceeds limit", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(c.Input, payload); err != nil {
		return nil, errors.Wrap(err, "reading message payload")
	}
	return payload, nil
}

// WriteMessage writes one frame. The payload must already be serialized
// JSON; this layer only adds the length header.
func (c *Channel) WriteMessage(payload []byte) error {
	var header [4]byte
	binary.NativeEndian.PutUint32(header[:], uint32(len(payload)))

	if _, err := c.Output.Write(header[:]); err != nil {
		return errors.Wrap(err, "writing message header")
	}
	if _, err := c.Output.Write(payload); err != nil {
		return errors.Wrap(err, "writing message payload")
	}
	return nil
}
