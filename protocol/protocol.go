// Package protocol implements the length-prefixed wire framing used by the
// cTrader Open API endpoints.
//
// It solves TCP's sticky packet problem with a 4-byte big-endian length prefix
// followed by exactly that many bytes of envelope. The receiver reads the
// prefix first to learn the body length, then reads exactly that many bytes.
//
// Frame format:
//
//	0         4
//	┌─────────┬────────────────────┐
//	│ length  │   envelope ...     │
//	│ uint32  │   length bytes     │
//	└─────────┴────────────────────┘
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxFrameBytes is the default inbound frame size limit. Frames announcing a
// larger length are a fatal decode error for the connection.
const MaxFrameBytes = 15_000_000

// LengthSize is the size of the length prefix in bytes.
const LengthSize = 4

// ErrConnectionClosed reports an orderly EOF from the peer, observed at a
// frame boundary.
var ErrConnectionClosed = errors.New("protocol: connection closed")

// FrameTooLargeError reports an inbound length prefix exceeding the limit.
type FrameTooLargeError struct {
	Length uint32
	Max    uint32
}

func (e *FrameTooLargeError) Error() string {
	return fmt.Sprintf("protocol: frame of %d bytes exceeds limit of %d", e.Length, e.Max)
}

// Encode writes a complete frame (length prefix + payload) to w.
//
// The prefix and payload go out in a single Write so the frame stays atomic on
// the wire. The caller must serialize writes if multiple goroutines share the
// same writer, otherwise frames interleave and corrupt the stream.
func Encode(w io.Writer, payload []byte) error {
	buf := make([]byte, LengthSize+len(payload))
	binary.BigEndian.PutUint32(buf[0:LengthSize], uint32(len(payload)))
	copy(buf[LengthSize:], payload)
	_, err := w.Write(buf)
	return err
}

// Decode reads one complete frame from r and returns the payload bytes.
//
// Uses io.ReadFull to guarantee exactly N bytes are read, tolerating short
// reads from the TLS record layer. EOF before the first prefix byte is an
// orderly close (ErrConnectionClosed); EOF mid-frame is an unexpected one.
func Decode(r io.Reader, maxFrame uint32) ([]byte, error) {
	lengthBuf := make([]byte, LengthSize)
	if _, err := io.ReadFull(r, lengthBuf); err != nil {
		if err == io.EOF {
			return nil, ErrConnectionClosed
		}
		return nil, err
	}

	length := binary.BigEndian.Uint32(lengthBuf)
	if maxFrame > 0 && length > maxFrame {
		return nil, &FrameTooLargeError{Length: length, Max: maxFrame}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}
