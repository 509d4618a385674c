package messages

import (
	"reflect"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env := ProtoMessage{
		PayloadTypeTag: PayloadTypeOAApplicationAuthReq,
		Payload:        []byte{0x12, 0x03, 'a', 'b', 'c'},
		ClientMsgID:    "msg-1",
	}
	data := env.AppendTo(nil)

	var got ProtoMessage
	if err := got.ReadFrom(data); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !reflect.DeepEqual(got, env) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, env)
	}
}

func TestEnvelopeOmitsEmptyClientMsgID(t *testing.T) {
	env := ProtoMessage{PayloadTypeTag: PayloadTypeHeartbeatEvent}
	data := env.AppendTo(nil)

	// payloadType tag (1 byte) + varint value (1 byte) only.
	if len(data) != 2 {
		t.Errorf("expected 2 bytes for bare heartbeat envelope, got %d: %x", len(data), data)
	}
}

func TestRegistryLookup(t *testing.T) {
	m, ok := New(PayloadTypeOASymbolsListRes)
	if !ok {
		t.Fatal("symbols list response not registered")
	}
	if _, ok := m.(*ProtoOASymbolsListRes); !ok {
		t.Fatalf("wrong type from registry: %T", m)
	}

	if _, ok := New(424242); ok {
		t.Error("unregistered payload type must not resolve")
	}
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	a, _ := New(PayloadTypeOAAccountAuthReq)
	b, _ := New(PayloadTypeOAAccountAuthReq)
	if a == b {
		t.Error("registry must not share instances")
	}
}

func TestName(t *testing.T) {
	if got := Name(PayloadTypeHeartbeatEvent); got != "ProtoHeartbeatEvent" {
		t.Errorf("Name(51) = %q", got)
	}
	if got := Name(424242); got != "payloadType(424242)" {
		t.Errorf("Name(424242) = %q", got)
	}
}

func TestSymbolsListResRoundTrip(t *testing.T) {
	res := ProtoOASymbolsListRes{
		CtidTraderAccountID: 12345,
		Symbol: []ProtoOALightSymbol{
			{SymbolID: 1, SymbolName: "EURUSD", Enabled: true, BaseAssetID: 1, QuoteAssetID: 2},
			{SymbolID: 2, SymbolName: "GBPUSD", Enabled: true, BaseAssetID: 3, QuoteAssetID: 2},
		},
	}
	data := res.AppendTo(nil)

	var got ProtoOASymbolsListRes
	if err := got.ReadFrom(data); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !reflect.DeepEqual(got, res) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, res)
	}
}

func TestExecutionEventRoundTrip(t *testing.T) {
	ev := ProtoOAExecutionEvent{
		CtidTraderAccountID: 12345,
		ExecutionType:       ExecutionTypeOrderFilled,
		Position: &ProtoOAPosition{
			PositionID: 77,
			TradeData:  ProtoOATradeData{SymbolID: 1, Volume: 100000, TradeSide: TradeSideBuy},
			Price:      1.0945,
		},
		Deal: &ProtoOADeal{DealID: 9, OrderID: 8, PositionID: 77, Volume: 100000, ExecutionPrice: 1.0945, TradeSide: TradeSideBuy},
	}
	data := ev.AppendTo(nil)

	var got ProtoOAExecutionEvent
	if err := got.ReadFrom(data); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !reflect.DeepEqual(got, ev) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, ev)
	}
}

func TestTrendbarRoundTrip(t *testing.T) {
	bar := ProtoOATrendbar{
		Volume:                420,
		Period:                TrendbarPeriodM1,
		Low:                   109450,
		DeltaOpen:             10,
		DeltaClose:            25,
		DeltaHigh:             40,
		UTCTimestampInMinutes: 29000000,
	}
	data := bar.AppendTo(nil)

	var got ProtoOATrendbar
	if err := got.ReadFrom(data); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !reflect.DeepEqual(got, bar) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, bar)
	}
}

func TestReadFromSkipsUnknownFields(t *testing.T) {
	// A future schema revision may add fields; old clients must skip them.
	data := (&ProtoOAAccountAuthRes{CtidTraderAccountID: 5}).AppendTo(nil)
	data = appendString(data, 99, "from the future")

	var got ProtoOAAccountAuthRes
	if err := got.ReadFrom(data); err != nil {
		t.Fatalf("ReadFrom failed on unknown field: %v", err)
	}
	if got.CtidTraderAccountID != 5 {
		t.Errorf("known field lost: %+v", got)
	}
}

func TestReadFromMalformed(t *testing.T) {
	var env ProtoMessage
	// Truncated varint: a tag announcing more bytes than present.
	if err := env.ReadFrom([]byte{0x08}); err == nil {
		t.Error("expected parse error on truncated input")
	}
}
