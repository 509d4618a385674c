// Package messages carries the wire message set of the cTrader Open API.
//
// Each message is a plain struct with hand-written AppendTo/ReadFrom methods
// over the protobuf wire format, so the module does not depend on generated
// schema code. The outer ProtoMessage envelope wraps every inner message with
// its payload-type tag and an optional correlation id.
package messages

import (
	"errors"
	"fmt"
)

var errMalformedField = errors.New("messages: malformed field")

// Message is implemented by every inner wire message.
//
// AppendTo appends the serialized message to b and returns the extended slice.
// ReadFrom parses a full serialized message, skipping unknown fields.
type Message interface {
	PayloadType() uint32
	AppendTo(b []byte) []byte
	ReadFrom(data []byte) error
}

// Payload type tags from the schema. The 50-block is shared plumbing, the
// 2100-block is the Open API proper.
const (
	PayloadTypeProtoMessage   uint32 = 5
	PayloadTypeErrorRes       uint32 = 50
	PayloadTypeHeartbeatEvent uint32 = 51

	PayloadTypeOAApplicationAuthReq           uint32 = 2100
	PayloadTypeOAApplicationAuthRes           uint32 = 2101
	PayloadTypeOAAccountAuthReq               uint32 = 2102
	PayloadTypeOAAccountAuthRes               uint32 = 2103
	PayloadTypeOAVersionReq                   uint32 = 2104
	PayloadTypeOAVersionRes                   uint32 = 2105
	PayloadTypeOANewOrderReq                  uint32 = 2106
	PayloadTypeOACancelOrderReq               uint32 = 2108
	PayloadTypeOAAmendOrderReq                uint32 = 2109
	PayloadTypeOAAmendPositionSLTPReq         uint32 = 2110
	PayloadTypeOAClosePositionReq             uint32 = 2111
	PayloadTypeOAAssetListReq                 uint32 = 2112
	PayloadTypeOAAssetListRes                 uint32 = 2113
	PayloadTypeOASymbolsListReq               uint32 = 2114
	PayloadTypeOASymbolsListRes               uint32 = 2115
	PayloadTypeOASymbolByIDReq                uint32 = 2116
	PayloadTypeOASymbolByIDRes                uint32 = 2117
	PayloadTypeOATraderReq                    uint32 = 2121
	PayloadTypeOATraderRes                    uint32 = 2122
	PayloadTypeOAReconcileReq                 uint32 = 2124
	PayloadTypeOAReconcileRes                 uint32 = 2125
	PayloadTypeOAExecutionEvent               uint32 = 2126
	PayloadTypeOASubscribeSpotsReq            uint32 = 2127
	PayloadTypeOASubscribeSpotsRes            uint32 = 2128
	PayloadTypeOAUnsubscribeSpotsReq          uint32 = 2129
	PayloadTypeOAUnsubscribeSpotsRes          uint32 = 2130
	PayloadTypeOASpotEvent                    uint32 = 2131
	PayloadTypeOAOrderErrorEvent              uint32 = 2132
	PayloadTypeOADealListReq                  uint32 = 2133
	PayloadTypeOADealListRes                  uint32 = 2134
	PayloadTypeOASubscribeLiveTrendbarReq     uint32 = 2135
	PayloadTypeOAUnsubscribeLiveTrendbarReq   uint32 = 2136
	PayloadTypeOAGetTrendbarsReq              uint32 = 2137
	PayloadTypeOAGetTrendbarsRes              uint32 = 2138
	PayloadTypeOAErrorRes                     uint32 = 2142
	PayloadTypeOAGetTickDataReq               uint32 = 2145
	PayloadTypeOAGetTickDataRes               uint32 = 2146
	PayloadTypeOAGetAccountListByTokenReq     uint32 = 2149
	PayloadTypeOAGetAccountListByTokenRes     uint32 = 2150
	PayloadTypeOAAssetClassListReq            uint32 = 2153
	PayloadTypeOAAssetClassListRes            uint32 = 2154
	PayloadTypeOASymbolCategoryListReq        uint32 = 2160
	PayloadTypeOASymbolCategoryListRes        uint32 = 2161
	PayloadTypeOAAccountLogoutReq             uint32 = 2162
	PayloadTypeOAAccountLogoutRes             uint32 = 2163
	PayloadTypeOAAccountDisconnectEvent       uint32 = 2164
	PayloadTypeOASubscribeLiveTrendbarRes     uint32 = 2165
	PayloadTypeOAUnsubscribeLiveTrendbarRes   uint32 = 2166
	PayloadTypeOAOrderListReq                 uint32 = 2175
	PayloadTypeOAOrderListRes                 uint32 = 2176
	PayloadTypeOAOrderDetailsReq              uint32 = 2181
	PayloadTypeOAOrderDetailsRes              uint32 = 2182
	PayloadTypeOAGetPositionUnrealizedPnLReq  uint32 = 2187
	PayloadTypeOAGetPositionUnrealizedPnLRes  uint32 = 2188
)

type registryEntry struct {
	name string
	ctor func() Message
}

// registry indexes every message by payload-type tag. Built once at startup;
// read-only afterwards, so lookups need no lock.
var registry = map[uint32]registryEntry{}

func register(name string, ctor func() Message) {
	m := ctor()
	registry[m.PayloadType()] = registryEntry{name: name, ctor: ctor}
}

func init() {
	register("ProtoErrorRes", func() Message { return &ProtoErrorRes{} })
	register("ProtoHeartbeatEvent", func() Message { return &ProtoHeartbeatEvent{} })

	register("ProtoOAApplicationAuthReq", func() Message { return &ProtoOAApplicationAuthReq{} })
	register("ProtoOAApplicationAuthRes", func() Message { return &ProtoOAApplicationAuthRes{} })
	register("ProtoOAAccountAuthReq", func() Message { return &ProtoOAAccountAuthReq{} })
	register("ProtoOAAccountAuthRes", func() Message { return &ProtoOAAccountAuthRes{} })
	register("ProtoOAVersionReq", func() Message { return &ProtoOAVersionReq{} })
	register("ProtoOAVersionRes", func() Message { return &ProtoOAVersionRes{} })
	register("ProtoOANewOrderReq", func() Message { return &ProtoOANewOrderReq{} })
	register("ProtoOACancelOrderReq", func() Message { return &ProtoOACancelOrderReq{} })
	register("ProtoOAAmendOrderReq", func() Message { return &ProtoOAAmendOrderReq{} })
	register("ProtoOAAmendPositionSLTPReq", func() Message { return &ProtoOAAmendPositionSLTPReq{} })
	register("ProtoOAClosePositionReq", func() Message { return &ProtoOAClosePositionReq{} })
	register("ProtoOAAssetListReq", func() Message { return &ProtoOAAssetListReq{} })
	register("ProtoOAAssetListRes", func() Message { return &ProtoOAAssetListRes{} })
	register("ProtoOASymbolsListReq", func() Message { return &ProtoOASymbolsListReq{} })
	register("ProtoOASymbolsListRes", func() Message { return &ProtoOASymbolsListRes{} })
	register("ProtoOASymbolByIdReq", func() Message { return &ProtoOASymbolByIDReq{} })
	register("ProtoOASymbolByIdRes", func() Message { return &ProtoOASymbolByIDRes{} })
	register("ProtoOATraderReq", func() Message { return &ProtoOATraderReq{} })
	register("ProtoOATraderRes", func() Message { return &ProtoOATraderRes{} })
	register("ProtoOAReconcileReq", func() Message { return &ProtoOAReconcileReq{} })
	register("ProtoOAReconcileRes", func() Message { return &ProtoOAReconcileRes{} })
	register("ProtoOAExecutionEvent", func() Message { return &ProtoOAExecutionEvent{} })
	register("ProtoOASubscribeSpotsReq", func() Message { return &ProtoOASubscribeSpotsReq{} })
	register("ProtoOASubscribeSpotsRes", func() Message { return &ProtoOASubscribeSpotsRes{} })
	register("ProtoOAUnsubscribeSpotsReq", func() Message { return &ProtoOAUnsubscribeSpotsReq{} })
	register("ProtoOAUnsubscribeSpotsRes", func() Message { return &ProtoOAUnsubscribeSpotsRes{} })
	register("ProtoOASpotEvent", func() Message { return &ProtoOASpotEvent{} })
	register("ProtoOAOrderErrorEvent", func() Message { return &ProtoOAOrderErrorEvent{} })
	register("ProtoOADealListReq", func() Message { return &ProtoOADealListReq{} })
	register("ProtoOADealListRes", func() Message { return &ProtoOADealListRes{} })
	register("ProtoOASubscribeLiveTrendbarReq", func() Message { return &ProtoOASubscribeLiveTrendbarReq{} })
	register("ProtoOASubscribeLiveTrendbarRes", func() Message { return &ProtoOASubscribeLiveTrendbarRes{} })
	register("ProtoOAUnsubscribeLiveTrendbarReq", func() Message { return &ProtoOAUnsubscribeLiveTrendbarReq{} })
	register("ProtoOAUnsubscribeLiveTrendbarRes", func() Message { return &ProtoOAUnsubscribeLiveTrendbarRes{} })
	register("ProtoOAGetTrendbarsReq", func() Message { return &ProtoOAGetTrendbarsReq{} })
	register("ProtoOAGetTrendbarsRes", func() Message { return &ProtoOAGetTrendbarsRes{} })
	register("ProtoOAErrorRes", func() Message { return &ProtoOAErrorRes{} })
	register("ProtoOAGetTickDataReq", func() Message { return &ProtoOAGetTickDataReq{} })
	register("ProtoOAGetTickDataRes", func() Message { return &ProtoOAGetTickDataRes{} })
	register("ProtoOAGetAccountListByAccessTokenReq", func() Message { return &ProtoOAGetAccountListByAccessTokenReq{} })
	register("ProtoOAGetAccountListByAccessTokenRes", func() Message { return &ProtoOAGetAccountListByAccessTokenRes{} })
	register("ProtoOAAssetClassListReq", func() Message { return &ProtoOAAssetClassListReq{} })
	register("ProtoOAAssetClassListRes", func() Message { return &ProtoOAAssetClassListRes{} })
	register("ProtoOASymbolCategoryListReq", func() Message { return &ProtoOASymbolCategoryListReq{} })
	register("ProtoOASymbolCategoryListRes", func() Message { return &ProtoOASymbolCategoryListRes{} })
	register("ProtoOAAccountLogoutReq", func() Message { return &ProtoOAAccountLogoutReq{} })
	register("ProtoOAAccountLogoutRes", func() Message { return &ProtoOAAccountLogoutRes{} })
	register("ProtoOAAccountDisconnectEvent", func() Message { return &ProtoOAAccountDisconnectEvent{} })
	register("ProtoOAOrderListReq", func() Message { return &ProtoOAOrderListReq{} })
	register("ProtoOAOrderListRes", func() Message { return &ProtoOAOrderListRes{} })
	register("ProtoOAOrderDetailsReq", func() Message { return &ProtoOAOrderDetailsReq{} })
	register("ProtoOAOrderDetailsRes", func() Message { return &ProtoOAOrderDetailsRes{} })
	register("ProtoOAGetPositionUnrealizedPnLReq", func() Message { return &ProtoOAGetPositionUnrealizedPnLReq{} })
	register("ProtoOAGetPositionUnrealizedPnLRes", func() Message { return &ProtoOAGetPositionUnrealizedPnLRes{} })
}

// New returns a fresh instance of the message registered for payloadType.
func New(payloadType uint32) (Message, bool) {
	e, ok := registry[payloadType]
	if !ok {
		return nil, false
	}
	return e.ctor(), true
}

// Name returns the schema name for a payload type, or a numeric placeholder
// for types outside the registry.
func Name(payloadType uint32) string {
	if e, ok := registry[payloadType]; ok {
		return e.name
	}
	return fmt.Sprintf("payloadType(%d)", payloadType)
}
