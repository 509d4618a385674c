package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("hello world")

	var buf bytes.Buffer
	if err := Encode(&buf, payload); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if buf.Len() != LengthSize+len(payload) {
		t.Fatalf("frame length: got %d, want %d", buf.Len(), LengthSize+len(payload))
	}

	decoded, err := Decode(&buf, MaxFrameBytes)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("payload mismatch: got %q, want %q", decoded, payload)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(&buf, MaxFrameBytes)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty payload, got %d bytes", len(decoded))
	}
}

// chunkReader returns at most one byte per Read to simulate short reads from
// the TLS record layer.
type chunkReader struct {
	data []byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestDecodeShortReads(t *testing.T) {
	payload := []byte("fragmented across many reads")
	var buf bytes.Buffer
	if err := Encode(&buf, payload); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(&chunkReader{data: buf.Bytes()}, MaxFrameBytes)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("payload mismatch: got %q, want %q", decoded, payload)
	}
}

func TestDecodeFrameTooLarge(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, make([]byte, 100)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err := Decode(&buf, 64)
	var tooLarge *FrameTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected FrameTooLargeError, got %v", err)
	}
	if tooLarge.Length != 100 || tooLarge.Max != 64 {
		t.Errorf("error fields: got length=%d max=%d", tooLarge.Length, tooLarge.Max)
	}
}

func TestDecodeEOFAtBoundary(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil), MaxFrameBytes)
	if !errors.Is(err, ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

func TestDecodeEOFMidFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []byte("truncated")); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-3]

	_, err := Decode(bytes.NewReader(truncated), MaxFrameBytes)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
	if errors.Is(err, ErrConnectionClosed) {
		t.Error("mid-frame EOF must not look like an orderly close")
	}
}

func TestDecodeSequentialFrames(t *testing.T) {
	var buf bytes.Buffer
	first := []byte("first")
	second := []byte("second")
	if err := Encode(&buf, first); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&buf, second); err != nil {
		t.Fatal(err)
	}

	got1, err := Decode(&buf, MaxFrameBytes)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := Decode(&buf, MaxFrameBytes)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got1, first) || !bytes.Equal(got2, second) {
		t.Errorf("frames out of order: %q, %q", got1, got2)
	}
}
