package messages

// Open API request, response, and event messages. Field numbers follow the
// schema; field 1 is the payload-type tag and is left to the envelope.

// ProtoOAApplicationAuthReq proves the application with its OAuth client pair.
type ProtoOAApplicationAuthReq struct {
	ClientID     string
	ClientSecret string
}

func (m *ProtoOAApplicationAuthReq) PayloadType() uint32 { return PayloadTypeOAApplicationAuthReq }

func (m *ProtoOAApplicationAuthReq) AppendTo(b []byte) []byte {
	b = appendString(b, 2, m.ClientID)
	b = appendString(b, 3, m.ClientSecret)
	return b
}

func (m *ProtoOAApplicationAuthReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.ClientID = d.string()
		case 3:
			m.ClientSecret = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAApplicationAuthRes struct{}

func (m *ProtoOAApplicationAuthRes) PayloadType() uint32        { return PayloadTypeOAApplicationAuthRes }
func (m *ProtoOAApplicationAuthRes) AppendTo(b []byte) []byte   { return b }
func (m *ProtoOAApplicationAuthRes) ReadFrom(data []byte) error { return nil }

// ProtoOAAccountAuthReq binds one trading account to the session.
type ProtoOAAccountAuthReq struct {
	CtidTraderAccountID int64
	AccessToken         string
}

func (m *ProtoOAAccountAuthReq) PayloadType() uint32 { return PayloadTypeOAAccountAuthReq }

func (m *ProtoOAAccountAuthReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendString(b, 3, m.AccessToken)
	return b
}

func (m *ProtoOAAccountAuthReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.AccessToken = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAccountAuthRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAccountAuthRes) PayloadType() uint32 { return PayloadTypeOAAccountAuthRes }

func (m *ProtoOAAccountAuthRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAccountAuthRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAVersionReq struct{}

func (m *ProtoOAVersionReq) PayloadType() uint32        { return PayloadTypeOAVersionReq }
func (m *ProtoOAVersionReq) AppendTo(b []byte) []byte   { return b }
func (m *ProtoOAVersionReq) ReadFrom(data []byte) error { return nil }

type ProtoOAVersionRes struct {
	Version string
}

func (m *ProtoOAVersionRes) PayloadType() uint32 { return PayloadTypeOAVersionRes }

func (m *ProtoOAVersionRes) AppendTo(b []byte) []byte {
	return appendString(b, 2, m.Version)
}

func (m *ProtoOAVersionRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.Version = d.string()
		} else {
			d.skip()
		}
	}
	return d.err
}

// ProtoOAErrorRes is the Open API error response. It may arrive correlated
// (rejecting one request) or uncorrelated (rejecting the session).
type ProtoOAErrorRes struct {
	CtidTraderAccountID     int64
	ErrorCode               string
	Description             string
	MaintenanceEndTimestamp int64
}

func (m *ProtoOAErrorRes) PayloadType() uint32 { return PayloadTypeOAErrorRes }

func (m *ProtoOAErrorRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendString(b, 3, m.ErrorCode)
	b = appendString(b, 4, m.Description)
	b = appendInt64(b, 5, m.MaintenanceEndTimestamp)
	return b
}

func (m *ProtoOAErrorRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.ErrorCode = d.string()
		case 4:
			m.Description = d.string()
		case 5:
			m.MaintenanceEndTimestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOANewOrderReq places an order.
type ProtoOANewOrderReq struct {
	CtidTraderAccountID int64
	SymbolID            int64
	OrderType           OrderType
	TradeSide           TradeSide
	Volume              int64
	LimitPrice          float64
	StopPrice           float64
	ExpirationTimestamp int64
	StopLoss            float64
	TakeProfit          float64
	Comment             string
	Label               string
	StopTriggerMethod   int32
}

func (m *ProtoOANewOrderReq) PayloadType() uint32 { return PayloadTypeOANewOrderReq }

func (m *ProtoOANewOrderReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	b = appendInt32(b, 4, int32(m.OrderType))
	b = appendInt32(b, 5, int32(m.TradeSide))
	b = appendInt64(b, 6, m.Volume)
	b = appendDouble(b, 7, m.LimitPrice)
	b = appendDouble(b, 8, m.StopPrice)
	b = appendInt64(b, 10, m.ExpirationTimestamp)
	b = appendDouble(b, 11, m.StopLoss)
	b = appendDouble(b, 12, m.TakeProfit)
	b = appendString(b, 13, m.Comment)
	b = appendString(b, 16, m.Label)
	b = appendInt32(b, 23, m.StopTriggerMethod)
	return b
}

func (m *ProtoOANewOrderReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = d.int64()
		case 4:
			m.OrderType = OrderType(d.int32())
		case 5:
			m.TradeSide = TradeSide(d.int32())
		case 6:
			m.Volume = d.int64()
		case 7:
			m.LimitPrice = d.double()
		case 8:
			m.StopPrice = d.double()
		case 10:
			m.ExpirationTimestamp = d.int64()
		case 11:
			m.StopLoss = d.double()
		case 12:
			m.TakeProfit = d.double()
		case 13:
			m.Comment = d.string()
		case 16:
			m.Label = d.string()
		case 23:
			m.StopTriggerMethod = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOACancelOrderReq struct {
	CtidTraderAccountID int64
	OrderID             int64
}

func (m *ProtoOACancelOrderReq) PayloadType() uint32 { return PayloadTypeOACancelOrderReq }

func (m *ProtoOACancelOrderReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	return b
}

func (m *ProtoOACancelOrderReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.OrderID = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAmendOrderReq struct {
	CtidTraderAccountID int64
	OrderID             int64
	Volume              int64
	LimitPrice          float64
	StopPrice           float64
	ExpirationTimestamp int64
	StopLoss            float64
	TakeProfit          float64
	StopTriggerMethod   int32
}

func (m *ProtoOAAmendOrderReq) PayloadType() uint32 { return PayloadTypeOAAmendOrderReq }

func (m *ProtoOAAmendOrderReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	b = appendInt64(b, 4, m.Volume)
	b = appendDouble(b, 5, m.LimitPrice)
	b = appendDouble(b, 6, m.StopPrice)
	b = appendInt64(b, 7, m.ExpirationTimestamp)
	b = appendDouble(b, 8, m.StopLoss)
	b = appendDouble(b, 9, m.TakeProfit)
	b = appendInt32(b, 15, m.StopTriggerMethod)
	return b
}

func (m *ProtoOAAmendOrderReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.OrderID = d.int64()
		case 4:
			m.Volume = d.int64()
		case 5:
			m.LimitPrice = d.double()
		case 6:
			m.StopPrice = d.double()
		case 7:
			m.ExpirationTimestamp = d.int64()
		case 8:
			m.StopLoss = d.double()
		case 9:
			m.TakeProfit = d.double()
		case 15:
			m.StopTriggerMethod = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAAmendPositionSLTPReq changes the protection levels of a position.
type ProtoOAAmendPositionSLTPReq struct {
	CtidTraderAccountID int64
	PositionID          int64
	StopLoss            float64
	TakeProfit          float64
}

func (m *ProtoOAAmendPositionSLTPReq) PayloadType() uint32 { return PayloadTypeOAAmendPositionSLTPReq }

func (m *ProtoOAAmendPositionSLTPReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.PositionID)
	b = appendDouble(b, 4, m.StopLoss)
	b = appendDouble(b, 5, m.TakeProfit)
	return b
}

func (m *ProtoOAAmendPositionSLTPReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.PositionID = d.int64()
		case 4:
			m.StopLoss = d.double()
		case 5:
			m.TakeProfit = d.double()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAClosePositionReq struct {
	CtidTraderAccountID int64
	PositionID          int64
	Volume              int64
}

func (m *ProtoOAClosePositionReq) PayloadType() uint32 { return PayloadTypeOAClosePositionReq }

func (m *ProtoOAClosePositionReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.PositionID)
	b = appendInt64(b, 4, m.Volume)
	return b
}

func (m *ProtoOAClosePositionReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.PositionID = d.int64()
		case 4:
			m.Volume = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAssetListReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAssetListReq) PayloadType() uint32 { return PayloadTypeOAAssetListReq }

func (m *ProtoOAAssetListReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAssetListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAssetListRes struct {
	CtidTraderAccountID int64
	Asset               []ProtoOAAsset
}

func (m *ProtoOAAssetListRes) PayloadType() uint32 { return PayloadTypeOAAssetListRes }

func (m *ProtoOAAssetListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Asset {
		b = appendEmbedded(b, 3, &m.Asset[i])
	}
	return b
}

func (m *ProtoOAAssetListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var a ProtoOAAsset
			d.embedded(&a)
			m.Asset = append(m.Asset, a)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolsListReq struct {
	CtidTraderAccountID    int64
	IncludeArchivedSymbols bool
}

func (m *ProtoOASymbolsListReq) PayloadType() uint32 { return PayloadTypeOASymbolsListReq }

func (m *ProtoOASymbolsListReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendBool(b, 3, m.IncludeArchivedSymbols)
	return b
}

func (m *ProtoOASymbolsListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.IncludeArchivedSymbols = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolsListRes struct {
	CtidTraderAccountID int64
	Symbol              []ProtoOALightSymbol
}

func (m *ProtoOASymbolsListRes) PayloadType() uint32 { return PayloadTypeOASymbolsListRes }

func (m *ProtoOASymbolsListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Symbol {
		b = appendEmbedded(b, 3, &m.Symbol[i])
	}
	return b
}

func (m *ProtoOASymbolsListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var s ProtoOALightSymbol
			d.embedded(&s)
			m.Symbol = append(m.Symbol, s)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolByIDReq struct {
	CtidTraderAccountID int64
	SymbolID            []int64
}

func (m *ProtoOASymbolByIDReq) PayloadType() uint32 { return PayloadTypeOASymbolByIDReq }

func (m *ProtoOASymbolByIDReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolID {
		b = appendInt64(b, 3, id)
	}
	return b
}

func (m *ProtoOASymbolByIDReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = append(m.SymbolID, d.int64())
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolByIDRes struct {
	CtidTraderAccountID int64
	Symbol              []ProtoOASymbol
}

func (m *ProtoOASymbolByIDRes) PayloadType() uint32 { return PayloadTypeOASymbolByIDRes }

func (m *ProtoOASymbolByIDRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Symbol {
		b = appendEmbedded(b, 3, &m.Symbol[i])
	}
	return b
}

func (m *ProtoOASymbolByIDRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var s ProtoOASymbol
			d.embedded(&s)
			m.Symbol = append(m.Symbol, s)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOATraderReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOATraderReq) PayloadType() uint32 { return PayloadTypeOATraderReq }

func (m *ProtoOATraderReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOATraderReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOATraderRes struct {
	CtidTraderAccountID int64
	Trader              ProtoOATrader
}

func (m *ProtoOATraderRes) PayloadType() uint32 { return PayloadTypeOATraderRes }

func (m *ProtoOATraderRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendEmbedded(b, 3, &m.Trader)
	return b
}

func (m *ProtoOATraderRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			d.embedded(&m.Trader)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAReconcileReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAReconcileReq) PayloadType() uint32 { return PayloadTypeOAReconcileReq }

func (m *ProtoOAReconcileReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAReconcileReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAReconcileRes struct {
	CtidTraderAccountID int64
	Position            []ProtoOAPosition
	Order               []ProtoOAOrder
}

func (m *ProtoOAReconcileRes) PayloadType() uint32 { return PayloadTypeOAReconcileRes }

func (m *ProtoOAReconcileRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Position {
		b = appendEmbedded(b, 3, &m.Position[i])
	}
	for i := range m.Order {
		b = appendEmbedded(b, 4, &m.Order[i])
	}
	return b
}

func (m *ProtoOAReconcileRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var p ProtoOAPosition
			d.embedded(&p)
			m.Position = append(m.Position, p)
		case 4:
			var o ProtoOAOrder
			d.embedded(&o)
			m.Order = append(m.Order, o)
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAExecutionEvent reports order lifecycle transitions: fills,
// cancellations, rejections, swaps.
type ProtoOAExecutionEvent struct {
	CtidTraderAccountID int64
	ExecutionType       ExecutionType
	Position            *ProtoOAPosition
	Order               *ProtoOAOrder
	Deal                *ProtoOADeal
	ErrorCode           string
	IsServerEvent       bool
}

func (m *ProtoOAExecutionEvent) PayloadType() uint32 { return PayloadTypeOAExecutionEvent }

func (m *ProtoOAExecutionEvent) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt32(b, 3, int32(m.ExecutionType))
	if m.Position != nil {
		b = appendEmbedded(b, 4, m.Position)
	}
	if m.Order != nil {
		b = appendEmbedded(b, 5, m.Order)
	}
	if m.Deal != nil {
		b = appendEmbedded(b, 6, m.Deal)
	}
	b = appendString(b, 9, m.ErrorCode)
	b = appendBool(b, 10, m.IsServerEvent)
	return b
}

func (m *ProtoOAExecutionEvent) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.ExecutionType = ExecutionType(d.int32())
		case 4:
			m.Position = &ProtoOAPosition{}
			d.embedded(m.Position)
		case 5:
			m.Order = &ProtoOAOrder{}
			d.embedded(m.Order)
		case 6:
			m.Deal = &ProtoOADeal{}
			d.embedded(m.Deal)
		case 9:
			m.ErrorCode = d.string()
		case 10:
			m.IsServerEvent = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASubscribeSpotsReq struct {
	CtidTraderAccountID int64
	SymbolID            []int64
}

func (m *ProtoOASubscribeSpotsReq) PayloadType() uint32 { return PayloadTypeOASubscribeSpotsReq }

func (m *ProtoOASubscribeSpotsReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolID {
		b = appendInt64(b, 3, id)
	}
	return b
}

func (m *ProtoOASubscribeSpotsReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = append(m.SymbolID, d.int64())
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASubscribeSpotsRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOASubscribeSpotsRes) PayloadType() uint32 { return PayloadTypeOASubscribeSpotsRes }

func (m *ProtoOASubscribeSpotsRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOASubscribeSpotsRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAUnsubscribeSpotsReq struct {
	CtidTraderAccountID int64
	SymbolID            []int64
}

func (m *ProtoOAUnsubscribeSpotsReq) PayloadType() uint32 { return PayloadTypeOAUnsubscribeSpotsReq }

func (m *ProtoOAUnsubscribeSpotsReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolID {
		b = appendInt64(b, 3, id)
	}
	return b
}

func (m *ProtoOAUnsubscribeSpotsReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = append(m.SymbolID, d.int64())
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAUnsubscribeSpotsRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAUnsubscribeSpotsRes) PayloadType() uint32 { return PayloadTypeOAUnsubscribeSpotsRes }

func (m *ProtoOAUnsubscribeSpotsRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAUnsubscribeSpotsRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

// ProtoOASpotEvent is the server-pushed quote update. It is never correlated.
type ProtoOASpotEvent struct {
	CtidTraderAccountID int64
	SymbolID            int64
	Bid                 uint64
	Ask                 uint64
	Trendbar            []ProtoOATrendbar
	Timestamp           int64
}

func (m *ProtoOASpotEvent) PayloadType() uint32 { return PayloadTypeOASpotEvent }

func (m *ProtoOASpotEvent) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	b = appendUint64(b, 4, m.Bid)
	b = appendUint64(b, 5, m.Ask)
	for i := range m.Trendbar {
		b = appendEmbedded(b, 6, &m.Trendbar[i])
	}
	b = appendInt64(b, 8, m.Timestamp)
	return b
}

func (m *ProtoOASpotEvent) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = d.int64()
		case 4:
			m.Bid = d.uint64()
		case 5:
			m.Ask = d.uint64()
		case 6:
			var t ProtoOATrendbar
			d.embedded(&t)
			m.Trendbar = append(m.Trendbar, t)
		case 8:
			m.Timestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAOrderErrorEvent rejects an order asynchronously.
type ProtoOAOrderErrorEvent struct {
	ErrorCode   string
	OrderID     int64
	PositionID  int64
	Description string
}

func (m *ProtoOAOrderErrorEvent) PayloadType() uint32 { return PayloadTypeOAOrderErrorEvent }

func (m *ProtoOAOrderErrorEvent) AppendTo(b []byte) []byte {
	b = appendString(b, 2, m.ErrorCode)
	b = appendInt64(b, 3, m.OrderID)
	b = appendInt64(b, 4, m.PositionID)
	b = appendString(b, 5, m.Description)
	return b
}

func (m *ProtoOAOrderErrorEvent) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.ErrorCode = d.string()
		case 3:
			m.OrderID = d.int64()
		case 4:
			m.PositionID = d.int64()
		case 5:
			m.Description = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOADealListReq struct {
	CtidTraderAccountID int64
	FromTimestamp       int64
	ToTimestamp         int64
	MaxRows             int32
}

func (m *ProtoOADealListReq) PayloadType() uint32 { return PayloadTypeOADealListReq }

func (m *ProtoOADealListReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.FromTimestamp)
	b = appendInt64(b, 4, m.ToTimestamp)
	b = appendInt32(b, 5, m.MaxRows)
	return b
}

func (m *ProtoOADealListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.FromTimestamp = d.int64()
		case 4:
			m.ToTimestamp = d.int64()
		case 5:
			m.MaxRows = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOADealListRes struct {
	CtidTraderAccountID int64
	Deal                []ProtoOADeal
	HasMore             bool
}

func (m *ProtoOADealListRes) PayloadType() uint32 { return PayloadTypeOADealListRes }

func (m *ProtoOADealListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Deal {
		b = appendEmbedded(b, 3, &m.Deal[i])
	}
	b = appendBool(b, 4, m.HasMore)
	return b
}

func (m *ProtoOADealListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var deal ProtoOADeal
			d.embedded(&deal)
			m.Deal = append(m.Deal, deal)
		case 4:
			m.HasMore = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASubscribeLiveTrendbarReq struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	SymbolID            int64
}

func (m *ProtoOASubscribeLiveTrendbarReq) PayloadType() uint32 {
	return PayloadTypeOASubscribeLiveTrendbarReq
}

func (m *ProtoOASubscribeLiveTrendbarReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt32(b, 3, int32(m.Period))
	b = appendInt64(b, 4, m.SymbolID)
	return b
}

func (m *ProtoOASubscribeLiveTrendbarReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.Period = TrendbarPeriod(d.int32())
		case 4:
			m.SymbolID = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASubscribeLiveTrendbarRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOASubscribeLiveTrendbarRes) PayloadType() uint32 {
	return PayloadTypeOASubscribeLiveTrendbarRes
}

func (m *ProtoOASubscribeLiveTrendbarRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOASubscribeLiveTrendbarRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAUnsubscribeLiveTrendbarReq struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	SymbolID            int64
}

func (m *ProtoOAUnsubscribeLiveTrendbarReq) PayloadType() uint32 {
	return PayloadTypeOAUnsubscribeLiveTrendbarReq
}

func (m *ProtoOAUnsubscribeLiveTrendbarReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt32(b, 3, int32(m.Period))
	b = appendInt64(b, 4, m.SymbolID)
	return b
}

func (m *ProtoOAUnsubscribeLiveTrendbarReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.Period = TrendbarPeriod(d.int32())
		case 4:
			m.SymbolID = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAUnsubscribeLiveTrendbarRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAUnsubscribeLiveTrendbarRes) PayloadType() uint32 {
	return PayloadTypeOAUnsubscribeLiveTrendbarRes
}

func (m *ProtoOAUnsubscribeLiveTrendbarRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAUnsubscribeLiveTrendbarRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetTrendbarsReq struct {
	CtidTraderAccountID int64
	FromTimestamp       int64
	ToTimestamp         int64
	Period              TrendbarPeriod
	SymbolID            int64
	Count               uint32
}

func (m *ProtoOAGetTrendbarsReq) PayloadType() uint32 { return PayloadTypeOAGetTrendbarsReq }

func (m *ProtoOAGetTrendbarsReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.FromTimestamp)
	b = appendInt64(b, 4, m.ToTimestamp)
	b = appendInt32(b, 5, int32(m.Period))
	b = appendInt64(b, 6, m.SymbolID)
	b = appendUint32(b, 7, m.Count)
	return b
}

func (m *ProtoOAGetTrendbarsReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.FromTimestamp = d.int64()
		case 4:
			m.ToTimestamp = d.int64()
		case 5:
			m.Period = TrendbarPeriod(d.int32())
		case 6:
			m.SymbolID = d.int64()
		case 7:
			m.Count = d.uint32()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetTrendbarsRes struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	Timestamp           int64
	Trendbar            []ProtoOATrendbar
	SymbolID            int64
	HasMore             bool
}

func (m *ProtoOAGetTrendbarsRes) PayloadType() uint32 { return PayloadTypeOAGetTrendbarsRes }

func (m *ProtoOAGetTrendbarsRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt32(b, 3, int32(m.Period))
	b = appendInt64(b, 4, m.Timestamp)
	for i := range m.Trendbar {
		b = appendEmbedded(b, 5, &m.Trendbar[i])
	}
	b = appendInt64(b, 6, m.SymbolID)
	b = appendBool(b, 7, m.HasMore)
	return b
}

func (m *ProtoOAGetTrendbarsRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.Period = TrendbarPeriod(d.int32())
		case 4:
			m.Timestamp = d.int64()
		case 5:
			var t ProtoOATrendbar
			d.embedded(&t)
			m.Trendbar = append(m.Trendbar, t)
		case 6:
			m.SymbolID = d.int64()
		case 7:
			m.HasMore = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetTickDataReq struct {
	CtidTraderAccountID int64
	SymbolID            int64
	Type                QuoteType
	FromTimestamp       int64
	ToTimestamp         int64
}

func (m *ProtoOAGetTickDataReq) PayloadType() uint32 { return PayloadTypeOAGetTickDataReq }

func (m *ProtoOAGetTickDataReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	b = appendInt32(b, 4, int32(m.Type))
	b = appendInt64(b, 5, m.FromTimestamp)
	b = appendInt64(b, 6, m.ToTimestamp)
	return b
}

func (m *ProtoOAGetTickDataReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.SymbolID = d.int64()
		case 4:
			m.Type = QuoteType(d.int32())
		case 5:
			m.FromTimestamp = d.int64()
		case 6:
			m.ToTimestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetTickDataRes struct {
	CtidTraderAccountID int64
	TickData            []ProtoOATickData
	HasMore             bool
}

func (m *ProtoOAGetTickDataRes) PayloadType() uint32 { return PayloadTypeOAGetTickDataRes }

func (m *ProtoOAGetTickDataRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.TickData {
		b = appendEmbedded(b, 3, &m.TickData[i])
	}
	b = appendBool(b, 4, m.HasMore)
	return b
}

func (m *ProtoOAGetTickDataRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var t ProtoOATickData
			d.embedded(&t)
			m.TickData = append(m.TickData, t)
		case 4:
			m.HasMore = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetAccountListByAccessTokenReq struct {
	AccessToken string
}

func (m *ProtoOAGetAccountListByAccessTokenReq) PayloadType() uint32 {
	return PayloadTypeOAGetAccountListByTokenReq
}

func (m *ProtoOAGetAccountListByAccessTokenReq) AppendTo(b []byte) []byte {
	return appendString(b, 2, m.AccessToken)
}

func (m *ProtoOAGetAccountListByAccessTokenReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.AccessToken = d.string()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetAccountListByAccessTokenRes struct {
	AccessToken       string
	PermissionScope   int32
	CtidTraderAccount []ProtoOACtidTraderAccount
}

func (m *ProtoOAGetAccountListByAccessTokenRes) PayloadType() uint32 {
	return PayloadTypeOAGetAccountListByTokenRes
}

func (m *ProtoOAGetAccountListByAccessTokenRes) AppendTo(b []byte) []byte {
	b = appendString(b, 2, m.AccessToken)
	b = appendInt32(b, 3, m.PermissionScope)
	for i := range m.CtidTraderAccount {
		b = appendEmbedded(b, 4, &m.CtidTraderAccount[i])
	}
	return b
}

func (m *ProtoOAGetAccountListByAccessTokenRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.AccessToken = d.string()
		case 3:
			m.PermissionScope = d.int32()
		case 4:
			var a ProtoOACtidTraderAccount
			d.embedded(&a)
			m.CtidTraderAccount = append(m.CtidTraderAccount, a)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAssetClassListReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAssetClassListReq) PayloadType() uint32 { return PayloadTypeOAAssetClassListReq }

func (m *ProtoOAAssetClassListReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAssetClassListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAssetClassListRes struct {
	CtidTraderAccountID int64
	AssetClass          []ProtoOAAssetClass
}

func (m *ProtoOAAssetClassListRes) PayloadType() uint32 { return PayloadTypeOAAssetClassListRes }

func (m *ProtoOAAssetClassListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.AssetClass {
		b = appendEmbedded(b, 3, &m.AssetClass[i])
	}
	return b
}

func (m *ProtoOAAssetClassListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var a ProtoOAAssetClass
			d.embedded(&a)
			m.AssetClass = append(m.AssetClass, a)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolCategoryListReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOASymbolCategoryListReq) PayloadType() uint32 {
	return PayloadTypeOASymbolCategoryListReq
}

func (m *ProtoOASymbolCategoryListReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOASymbolCategoryListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOASymbolCategoryListRes struct {
	CtidTraderAccountID int64
	SymbolCategory      []ProtoOASymbolCategory
}

func (m *ProtoOASymbolCategoryListRes) PayloadType() uint32 {
	return PayloadTypeOASymbolCategoryListRes
}

func (m *ProtoOASymbolCategoryListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.SymbolCategory {
		b = appendEmbedded(b, 3, &m.SymbolCategory[i])
	}
	return b
}

func (m *ProtoOASymbolCategoryListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var c ProtoOASymbolCategory
			d.embedded(&c)
			m.SymbolCategory = append(m.SymbolCategory, c)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAccountLogoutReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAccountLogoutReq) PayloadType() uint32 { return PayloadTypeOAAccountLogoutReq }

func (m *ProtoOAAccountLogoutReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAccountLogoutReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAAccountLogoutRes struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAccountLogoutRes) PayloadType() uint32 { return PayloadTypeOAAccountLogoutRes }

func (m *ProtoOAAccountLogoutRes) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAccountLogoutRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

// ProtoOAAccountDisconnectEvent tells the client the server dropped the
// account binding; the session survives at app-auth level.
type ProtoOAAccountDisconnectEvent struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAAccountDisconnectEvent) PayloadType() uint32 {
	return PayloadTypeOAAccountDisconnectEvent
}

func (m *ProtoOAAccountDisconnectEvent) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAAccountDisconnectEvent) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAOrderListReq struct {
	CtidTraderAccountID int64
	FromTimestamp       int64
	ToTimestamp         int64
}

func (m *ProtoOAOrderListReq) PayloadType() uint32 { return PayloadTypeOAOrderListReq }

func (m *ProtoOAOrderListReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.FromTimestamp)
	b = appendInt64(b, 4, m.ToTimestamp)
	return b
}

func (m *ProtoOAOrderListReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.FromTimestamp = d.int64()
		case 4:
			m.ToTimestamp = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAOrderListRes struct {
	CtidTraderAccountID int64
	Order               []ProtoOAOrder
	HasMore             bool
}

func (m *ProtoOAOrderListRes) PayloadType() uint32 { return PayloadTypeOAOrderListRes }

func (m *ProtoOAOrderListRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Order {
		b = appendEmbedded(b, 3, &m.Order[i])
	}
	b = appendBool(b, 4, m.HasMore)
	return b
}

func (m *ProtoOAOrderListRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var o ProtoOAOrder
			d.embedded(&o)
			m.Order = append(m.Order, o)
		case 4:
			m.HasMore = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAOrderDetailsReq struct {
	CtidTraderAccountID int64
	OrderID             int64
}

func (m *ProtoOAOrderDetailsReq) PayloadType() uint32 { return PayloadTypeOAOrderDetailsReq }

func (m *ProtoOAOrderDetailsReq) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	return b
}

func (m *ProtoOAOrderDetailsReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			m.OrderID = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAOrderDetailsRes struct {
	CtidTraderAccountID int64
	Order               ProtoOAOrder
	Deal                []ProtoOADeal
}

func (m *ProtoOAOrderDetailsRes) PayloadType() uint32 { return PayloadTypeOAOrderDetailsRes }

func (m *ProtoOAOrderDetailsRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendEmbedded(b, 3, &m.Order)
	for i := range m.Deal {
		b = appendEmbedded(b, 4, &m.Deal[i])
	}
	return b
}

func (m *ProtoOAOrderDetailsRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			d.embedded(&m.Order)
		case 4:
			var deal ProtoOADeal
			d.embedded(&deal)
			m.Deal = append(m.Deal, deal)
		default:
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetPositionUnrealizedPnLReq struct {
	CtidTraderAccountID int64
}

func (m *ProtoOAGetPositionUnrealizedPnLReq) PayloadType() uint32 {
	return PayloadTypeOAGetPositionUnrealizedPnLReq
}

func (m *ProtoOAGetPositionUnrealizedPnLReq) AppendTo(b []byte) []byte {
	return appendInt64(b, 2, m.CtidTraderAccountID)
}

func (m *ProtoOAGetPositionUnrealizedPnLReq) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64()
		} else {
			d.skip()
		}
	}
	return d.err
}

type ProtoOAGetPositionUnrealizedPnLRes struct {
	CtidTraderAccountID  int64
	PositionUnrealizedPnL []ProtoOAPositionUnrealizedPnL
	MoneyDigits          uint32
}

func (m *ProtoOAGetPositionUnrealizedPnLRes) PayloadType() uint32 {
	return PayloadTypeOAGetPositionUnrealizedPnLRes
}

func (m *ProtoOAGetPositionUnrealizedPnLRes) AppendTo(b []byte) []byte {
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.PositionUnrealizedPnL {
		b = appendEmbedded(b, 3, &m.PositionUnrealizedPnL[i])
	}
	b = appendUint32(b, 4, m.MoneyDigits)
	return b
}

func (m *ProtoOAGetPositionUnrealizedPnLRes) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64()
		case 3:
			var p ProtoOAPositionUnrealizedPnL
			d.embedded(&p)
			m.PositionUnrealizedPnL = append(m.PositionUnrealizedPnL, p)
		case 4:
			m.MoneyDigits = d.uint32()
		default:
			d.skip()
		}
	}
	return d.err
}
