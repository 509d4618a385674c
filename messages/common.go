package messages

import "google.golang.org/protobuf/encoding/protowire"

// ProtoMessage is the outer envelope carried in every frame: the payload-type
// tag identifying the inner schema, the serialized inner bytes, and the
// optional correlation id echoed back by the server on paired responses.
type ProtoMessage struct {
	PayloadTypeTag uint32
	Payload        []byte
	ClientMsgID    string
}

func (m *ProtoMessage) PayloadType() uint32 { return PayloadTypeProtoMessage }

func (m *ProtoMessage) AppendTo(b []byte) []byte {
	// payloadType is the envelope's only required field; it goes out even
	// when zero.
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.PayloadTypeTag))
	b = appendBytes(b, 2, m.Payload)
	b = appendString(b, 3, m.ClientMsgID)
	return b
}

func (m *ProtoMessage) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.PayloadTypeTag = d.uint32()
		case 2:
			m.Payload = d.bytes()
		case 3:
			m.ClientMsgID = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoHeartbeatEvent is the no-op keepalive message. It has no fields beyond
// its payload-type tag.
type ProtoHeartbeatEvent struct{}

func (m *ProtoHeartbeatEvent) PayloadType() uint32        { return PayloadTypeHeartbeatEvent }
func (m *ProtoHeartbeatEvent) AppendTo(b []byte) []byte   { return b }
func (m *ProtoHeartbeatEvent) ReadFrom(data []byte) error { return nil }

// ProtoErrorRes is the shared (non-OA) error response.
type ProtoErrorRes struct {
	ErrorCode               string
	Description             string
	MaintenanceEndTimestamp int64
}

func (m *ProtoErrorRes) PayloadType() uint32 { return PayloadTypeErrorRes }

func (m *ProtoErrorRes) AppendTo(b []byte) []byte {
	b = appendString(b, 2, m.ErrorCode)
	b = appendString(b, 3, m.Description)
	b = appendInt64(b, 4, m.MaintenanceEndTimestamp)
	return b
}

func (m *ProtoErrorRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.ErrorCode = d.string()
		case 3:
			m.Description = d.string()
		case 4:
			m.MaintenanceEndTimestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}
