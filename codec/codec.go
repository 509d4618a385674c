// Package codec wraps and unwraps the outer ProtoMessage envelope.
//
// Every frame on the wire carries exactly one envelope: the payload-type tag,
// the serialized inner message, and an optional correlation id. Encoding
// serializes the inner message and wraps it; Extract reverses the wrap by
// looking the inner schema up in the message registry.
package codec

import (
	"fmt"

	"ctrader-openapi/messages"
)

// UnknownPayloadTypeError reports an envelope whose payload-type tag is not in
// the message registry. The connection stays up; only the message is dropped.
type UnknownPayloadTypeError struct {
	PayloadType uint32
}

func (e *UnknownPayloadTypeError) Error() string {
	return fmt.Sprintf("codec: unknown payload type %d", e.PayloadType)
}

// MalformedPayloadError reports envelope or inner bytes that fail to parse.
type MalformedPayloadError struct {
	PayloadType uint32
	Err         error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("codec: malformed payload for %s: %v", messages.Name(e.PayloadType), e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// Encode serializes inner, wraps it in an envelope tagged with the inner
// message's payload type and the given correlation id, and returns the
// envelope bytes ready for framing. clientMsgID may be empty for fire-and-
// forget messages such as heartbeats.
func Encode(inner messages.Message, clientMsgID string) []byte {
	env := messages.ProtoMessage{
		PayloadTypeTag: inner.PayloadType(),
		Payload:        inner.AppendTo(nil),
		ClientMsgID:    clientMsgID,
	}
	return env.AppendTo(nil)
}

// Decode parses envelope bytes into a ProtoMessage. The inner payload stays
// opaque until Extract.
func Decode(data []byte) (*messages.ProtoMessage, error) {
	var env messages.ProtoMessage
	if err := env.ReadFrom(data); err != nil {
		return nil, &MalformedPayloadError{PayloadType: messages.PayloadTypeProtoMessage, Err: err}
	}
	return &env, nil
}

// Extract parses the envelope's inner payload into its registered message
// type.
func Extract(env *messages.ProtoMessage) (messages.Message, error) {
	inner, ok := messages.New(env.PayloadTypeTag)
	if !ok {
		return nil, &UnknownPayloadTypeError{PayloadType: env.PayloadTypeTag}
	}
	if err := inner.ReadFrom(env.Payload); err != nil {
		return nil, &MalformedPayloadError{PayloadType: env.PayloadTypeTag, Err: err}
	}
	return inner, nil
}
