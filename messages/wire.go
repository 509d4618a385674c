package messages

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Append helpers write one proto field each. Zero values are omitted, matching
// the schema's optional-field semantics; the envelope writes its required
// payloadType field directly.

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	return appendVarint(b, num, v)
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

type appender interface {
	AppendTo([]byte) []byte
}

func appendEmbedded(b []byte, num protowire.Number, m appender) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendTo(nil))
}

// decoder walks the top-level fields of a serialized message. Helper accessors
// validate the wire type so a mismatched field surfaces as a parse error
// instead of desynchronizing the walk.
type decoder struct {
	buf []byte
	err error
	num protowire.Number
	typ protowire.Type
}

func (d *decoder) next() bool {
	if d.err != nil || len(d.buf) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return false
	}
	d.buf = d.buf[n:]
	d.num, d.typ = num, typ
	return true
}

func (d *decoder) fail() {
	if d.err == nil {
		d.err = errMalformedField
	}
}

func (d *decoder) varint() uint64 {
	if d.typ != protowire.VarintType {
		d.fail()
		return 0
	}
	v, n := protowire.ConsumeVarint(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return 0
	}
	d.buf = d.buf[n:]
	return v
}

func (d *decoder) int64() int64   { return int64(d.varint()) }
func (d *decoder) int32() int32   { return int32(d.varint()) }
func (d *decoder) uint64() uint64 { return d.varint() }
func (d *decoder) uint32() uint32 { return uint32(d.varint()) }
func (d *decoder) bool() bool     { return d.varint() != 0 }

func (d *decoder) double() float64 {
	if d.typ != protowire.Fixed64Type {
		d.fail()
		return 0
	}
	v, n := protowire.ConsumeFixed64(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return 0
	}
	d.buf = d.buf[n:]
	return math.Float64frombits(v)
}

func (d *decoder) bytes() []byte {
	if d.typ != protowire.BytesType {
		d.fail()
		return nil
	}
	v, n := protowire.ConsumeBytes(d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return nil
	}
	d.buf = d.buf[n:]
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (d *decoder) string() string {
	return string(d.bytes())
}

// embedded parses a length-delimited submessage into m.
func (d *decoder) embedded(m interface{ ReadFrom([]byte) error }) {
	raw := d.bytes()
	if d.err != nil {
		return
	}
	if err := m.ReadFrom(raw); err != nil {
		d.err = err
	}
}

func (d *decoder) skip() {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.buf)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return
	}
	d.buf = d.buf[n:]
}
