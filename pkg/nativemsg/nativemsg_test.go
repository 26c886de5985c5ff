package nativemsg

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChannel_RoundTrip connects the channel's output to its input and
// checks that a written message is read back intact.
func TestChannel_RoundTrip(t *testing.T) {
	r, w := io.Pipe()

	ch := &Channel{Input: r, Output: w}

	message := []byte(`{"cmd":"Initialize","extensionId":"profile-switcher@example.com"}`)

	go func() {
		if err := ch.WriteMessage(message); err != nil {
			t.Errorf("failed to write message: %v", err)
		}
	}()

	got, err := ch.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, message, got)
}

func TestChannel_ReadEOF(t *testing.T) {
	ch := &Channel{Input: bytes.NewReader(nil)}

	_, err := ch.ReadMessage()
	assert.Equal(t, io.EOF, err)
}

func TestChannel_ReadTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	var header [4]byte
	binary.NativeEndian.PutUint32(header[:], 100)
	buf.Write(header[:])
	buf.WriteString("short")

	ch := &Channel{Input: &buf}

	_, err := ch.ReadMessage()
	assert.Error(t, err)
}

func TestChannel_ReadOversizeHeader(t *testing.T) {
	var buf bytes.Buffer
	var header [4]byte
	binary.NativeEndian.PutUint32(header[:], 1<<31)
	buf.Write(header[:])

	ch := &Channel{Input: &buf}

	_, err := ch.ReadMessage()
	assert.ErrorContains(t, err, "exceeds limit")
}
