package codec

import (
	"errors"
	"reflect"
	"testing"

	"ctrader-openapi/messages"
)

func TestEncodeExtractRoundTrip(t *testing.T) {
	req := &messages.ProtoOAAccountAuthReq{
		CtidTraderAccountID: 12345,
		AccessToken:         "token-abc",
	}

	data := Encode(req, "corr-1")
	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if env.PayloadTypeTag != messages.PayloadTypeOAAccountAuthReq {
		t.Errorf("payload type: got %d", env.PayloadTypeTag)
	}
	if env.ClientMsgID != "corr-1" {
		t.Errorf("clientMsgId: got %q", env.ClientMsgID)
	}

	inner, err := Extract(env)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	got, ok := inner.(*messages.ProtoOAAccountAuthReq)
	if !ok {
		t.Fatalf("wrong inner type: %T", inner)
	}
	if !reflect.DeepEqual(got, req) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, req)
	}
}

func TestEncodeWithoutClientMsgID(t *testing.T) {
	data := Encode(&messages.ProtoHeartbeatEvent{}, "")
	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if env.ClientMsgID != "" {
		t.Errorf("expected empty clientMsgId, got %q", env.ClientMsgID)
	}
	if env.PayloadTypeTag != messages.PayloadTypeHeartbeatEvent {
		t.Errorf("payload type: got %d", env.PayloadTypeTag)
	}
}

func TestExtractUnknownPayloadType(t *testing.T) {
	env := &messages.ProtoMessage{PayloadTypeTag: 424242}
	_, err := Extract(env)

	var unknown *UnknownPayloadTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPayloadTypeError, got %v", err)
	}
	if unknown.PayloadType != 424242 {
		t.Errorf("payload type in error: got %d", unknown.PayloadType)
	}
}

func TestExtractMalformedPayload(t *testing.T) {
	env := &messages.ProtoMessage{
		PayloadTypeTag: messages.PayloadTypeOAAccountAuthReq,
		Payload:        []byte{0x12}, // bytes field tag with missing length
	}
	_, err := Extract(env)

	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
}

func TestDecodeMalformedEnvelope(t *testing.T) {
	if _, err := Decode([]byte{0x0a}); err == nil {
		t.Error("expected error on truncated envelope")
	}
}
