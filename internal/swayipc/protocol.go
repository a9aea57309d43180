package swayipc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// magic prefixes every i3/sway IPC frame.
const magic = "i3-ipc"

const headerSize = len(magic) + 8

// maxPayload bounds a single reply; workspace lists are a few KiB.
const maxPayload = 32 << 20

// MessageType identifies an IPC request or reply.
type MessageType uint32

const (
	MessageRunCommand    MessageType = 0
	MessageGetWorkspaces MessageType = 1
	MessageGetVersion    MessageType = 7
)

func (t MessageType) String() string {
	switch t {
	case MessageRunCommand:
		return "RUN_COMMAND"
	case MessageGetWorkspaces:
		return "GET_WORKSPACES"
	case MessageGetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("MESSAGE_%d", uint32(t))
	}
}

var errBadMagic = errors.New("bad ipc magic")

// WriteMessage writes one frame in host byte order, as the window manager expects.
func WriteMessage(w io.Writer, typ MessageType, payload []byte) error {
	if len(payload) > maxPayload {
		return fmt.Errorf("ipc payload too large: %d bytes", len(payload))
	}
	buf := make([]byte, headerSize+len(payload))
	copy(buf, magic)
	binary.NativeEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(magic)+4:], uint32(typ))
	copy(buf[headerSize:], payload)
	_, err := w.Write(buf)
	return err
}

// ReadMessage reads one frame and returns its type and payload.
func ReadMessage(r io.Reader) (MessageType, []byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	if !bytes.Equal(header[:len(magic)], []byte(magic)) {
		return 0, nil, errBadMagic
	}
	size := binary.NativeEndian.Uint32(header[len(magic):])
	typ := MessageType(binary.NativeEndian.Uint32(header[len(magic)+4:]))
	if size > maxPayload {
		return 0, nil, fmt.Errorf("ipc reply too large: %d bytes", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return typ, payload, nil
}
