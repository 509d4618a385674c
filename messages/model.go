package messages

// Enum values from the model schema.

// OrderType selects the order kind on ProtoOANewOrderReq.
type OrderType int32

const (
	OrderTypeMarket             OrderType = 1
	OrderTypeLimit              OrderType = 2
	OrderTypeStop               OrderType = 3
	OrderTypeStopLossTakeProfit OrderType = 4
	OrderTypeMarketRange        OrderType = 5
	OrderTypeStopLimit          OrderType = 6
)

// TradeSide is the direction of an order or deal.
type TradeSide int32

const (
	TradeSideBuy  TradeSide = 1
	TradeSideSell TradeSide = 2
)

// TrendbarPeriod is the bar aggregation period.
type TrendbarPeriod int32

const (
	TrendbarPeriodM1 TrendbarPeriod = iota + 1
	TrendbarPeriodM2
	TrendbarPeriodM3
	TrendbarPeriodM4
	TrendbarPeriodM5
	TrendbarPeriodM10
	TrendbarPeriodM15
	TrendbarPeriodM30
	TrendbarPeriodH1
	TrendbarPeriodH4
	TrendbarPeriodH12
	TrendbarPeriodD1
	TrendbarPeriodW1
	TrendbarPeriodMN1
)

// QuoteType selects bid or ask tick streams.
type QuoteType int32

const (
	QuoteTypeBid QuoteType = 1
	QuoteTypeAsk QuoteType = 2
)

// ExecutionType tags ProtoOAExecutionEvent.
type ExecutionType int32

const (
	ExecutionTypeOrderAccepted        ExecutionType = 2
	ExecutionTypeOrderFilled          ExecutionType = 3
	ExecutionTypeOrderReplaced        ExecutionType = 4
	ExecutionTypeOrderCancelled       ExecutionType = 5
	ExecutionTypeOrderExpired         ExecutionType = 6
	ExecutionTypeOrderRejected        ExecutionType = 7
	ExecutionTypeOrderCancelRejected  ExecutionType = 8
	ExecutionTypeSwap                 ExecutionType = 9
	ExecutionTypeDepositWithdraw      ExecutionType = 10
	ExecutionTypeOrderPartialFill     ExecutionType = 11
	ExecutionTypeBonusDepositWithdraw ExecutionType = 12
)

// Model submessages embedded in responses and events.

// ProtoOAAsset describes a tradable asset (currency, metal, index unit).
type ProtoOAAsset struct {
	AssetID     int64
	Name        string
	DisplayName string
	Digits      int32
}

func (m *ProtoOAAsset) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.AssetID)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.DisplayName)
	b = appendInt32(b, 4, m.Digits)
	return b
}

func (m *ProtoOAAsset) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.AssetID = d.int64()
		case 2:
			m.Name = d.string()
		case 3:
			m.DisplayName = d.string()
		case 4:
			m.Digits = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAAssetClass groups assets (forex, metals, crypto).
type ProtoOAAssetClass struct {
	ID   int64
	Name string
}

func (m *ProtoOAAssetClass) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	return b
}

func (m *ProtoOAAssetClass) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.int64()
		case 2:
			m.Name = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOASymbolCategory groups symbols inside an asset class.
type ProtoOASymbolCategory struct {
	ID           int64
	AssetClassID int64
	Name         string
}

func (m *ProtoOASymbolCategory) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.ID)
	b = appendInt64(b, 2, m.AssetClassID)
	b = appendString(b, 3, m.Name)
	return b
}

func (m *ProtoOASymbolCategory) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.int64()
		case 2:
			m.AssetClassID = d.int64()
		case 3:
			m.Name = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOALightSymbol is the compact symbol shape returned by the list call.
type ProtoOALightSymbol struct {
	SymbolID         int64
	SymbolName       string
	Enabled          bool
	BaseAssetID      int64
	QuoteAssetID     int64
	SymbolCategoryID int64
	Description      string
}

func (m *ProtoOALightSymbol) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.SymbolID)
	b = appendString(b, 2, m.SymbolName)
	b = appendBool(b, 3, m.Enabled)
	b = appendInt64(b, 4, m.BaseAssetID)
	b = appendInt64(b, 5, m.QuoteAssetID)
	b = appendInt64(b, 6, m.SymbolCategoryID)
	b = appendString(b, 7, m.Description)
	return b
}

func (m *ProtoOALightSymbol) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64()
		case 2:
			m.SymbolName = d.string()
		case 3:
			m.Enabled = d.bool()
		case 4:
			m.BaseAssetID = d.int64()
		case 5:
			m.QuoteAssetID = d.int64()
		case 6:
			m.SymbolCategoryID = d.int64()
		case 7:
			m.Description = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOASymbol is the detailed symbol shape returned by the by-id call.
type ProtoOASymbol struct {
	SymbolID           int64
	Digits             int32
	PipPosition        int32
	EnableShortSelling bool
	GuaranteedStopLoss bool
	SwapLong           float64
	SwapShort          float64
	MaxVolume          int64
	MinVolume          int64
	StepVolume         int64
	LotSize            int64
}

func (m *ProtoOASymbol) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.SymbolID)
	b = appendInt32(b, 2, m.Digits)
	b = appendInt32(b, 3, m.PipPosition)
	b = appendBool(b, 4, m.EnableShortSelling)
	b = appendBool(b, 5, m.GuaranteedStopLoss)
	b = appendDouble(b, 7, m.SwapLong)
	b = appendDouble(b, 8, m.SwapShort)
	b = appendInt64(b, 9, m.MaxVolume)
	b = appendInt64(b, 10, m.MinVolume)
	b = appendInt64(b, 11, m.StepVolume)
	b = appendInt64(b, 14, m.LotSize)
	return b
}

func (m *ProtoOASymbol) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64()
		case 2:
			m.Digits = d.int32()
		case 3:
			m.PipPosition = d.int32()
		case 4:
			m.EnableShortSelling = d.bool()
		case 5:
			m.GuaranteedStopLoss = d.bool()
		case 7:
			m.SwapLong = d.double()
		case 8:
			m.SwapShort = d.double()
		case 9:
			m.MaxVolume = d.int64()
		case 10:
			m.MinVolume = d.int64()
		case 11:
			m.StepVolume = d.int64()
		case 14:
			m.LotSize = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOACtidTraderAccount identifies one trading account reachable with an
// access token.
type ProtoOACtidTraderAccount struct {
	CtidTraderAccountID uint64
	IsLive              bool
	TraderLogin         int64
}

func (m *ProtoOACtidTraderAccount) AppendTo(b []byte) []byte {
	b = appendUint64(b, 1, m.CtidTraderAccountID)
	b = appendBool(b, 2, m.IsLive)
	b = appendInt64(b, 3, m.TraderLogin)
	return b
}

func (m *ProtoOACtidTraderAccount) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.CtidTraderAccountID = d.uint64()
		case 2:
			m.IsLive = d.bool()
		case 3:
			m.TraderLogin = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOATrendbar is a delta-encoded OHLCV bar: open, close, and high are
// stored as unsigned deltas from low.
type ProtoOATrendbar struct {
	Volume                int64
	Period                TrendbarPeriod
	Low                   int64
	DeltaOpen             uint64
	DeltaClose            uint64
	DeltaHigh             uint64
	UTCTimestampInMinutes uint32
}

func (m *ProtoOATrendbar) AppendTo(b []byte) []byte {
	b = appendInt64(b, 3, m.Volume)
	b = appendInt32(b, 4, int32(m.Period))
	b = appendInt64(b, 5, m.Low)
	b = appendUint64(b, 6, m.DeltaOpen)
	b = appendUint64(b, 7, m.DeltaClose)
	b = appendUint64(b, 8, m.DeltaHigh)
	b = appendUint32(b, 9, m.UTCTimestampInMinutes)
	return b
}

func (m *ProtoOATrendbar) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 3:
			m.Volume = d.int64()
		case 4:
			m.Period = TrendbarPeriod(d.int32())
		case 5:
			m.Low = d.int64()
		case 6:
			m.DeltaOpen = d.uint64()
		case 7:
			m.DeltaClose = d.uint64()
		case 8:
			m.DeltaHigh = d.uint64()
		case 9:
			m.UTCTimestampInMinutes = d.uint32()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOATickData is a delta-encoded tick: each entry's timestamp and price
// are deltas from the previous entry in the same response.
type ProtoOATickData struct {
	Timestamp int64
	Tick      int64
}

func (m *ProtoOATickData) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.Timestamp)
	b = appendInt64(b, 2, m.Tick)
	return b
}

func (m *ProtoOATickData) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.Timestamp = d.int64()
		case 2:
			m.Tick = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOATrader is the account summary.
type ProtoOATrader struct {
	CtidTraderAccountID int64
	Balance             int64
	BalanceVersion      int64
	LeverageInCents     int64
	TraderLogin         int64
	MoneyDigits         uint32
}

func (m *ProtoOATrader) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.CtidTraderAccountID)
	b = appendInt64(b, 2, m.Balance)
	b = appendInt64(b, 3, m.BalanceVersion)
	b = appendInt64(b, 9, m.LeverageInCents)
	b = appendInt64(b, 14, m.TraderLogin)
	b = appendUint32(b, 15, m.MoneyDigits)
	return b
}

func (m *ProtoOATrader) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.CtidTraderAccountID = d.int64()
		case 2:
			m.Balance = d.int64()
		case 3:
			m.BalanceVersion = d.int64()
		case 9:
			m.LeverageInCents = d.int64()
		case 14:
			m.TraderLogin = d.int64()
		case 15:
			m.MoneyDigits = d.uint32()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOATradeData is the immutable part of a position or order.
type ProtoOATradeData struct {
	SymbolID      int64
	Volume        int64
	TradeSide     TradeSide
	OpenTimestamp int64
	Label         string
	Comment       string
}

func (m *ProtoOATradeData) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.SymbolID)
	b = appendInt64(b, 2, m.Volume)
	b = appendInt32(b, 3, int32(m.TradeSide))
	b = appendInt64(b, 4, m.OpenTimestamp)
	b = appendString(b, 5, m.Label)
	b = appendString(b, 7, m.Comment)
	return b
}

func (m *ProtoOATradeData) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64()
		case 2:
			m.Volume = d.int64()
		case 3:
			m.TradeSide = TradeSide(d.int32())
		case 4:
			m.OpenTimestamp = d.int64()
		case 5:
			m.Label = d.string()
		case 7:
			m.Comment = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAPosition is an open position.
type ProtoOAPosition struct {
	PositionID             int64
	TradeData              ProtoOATradeData
	PositionStatus         int32
	Swap                   int64
	Price                  float64
	StopLoss               float64
	TakeProfit             float64
	UTCLastUpdateTimestamp int64
	Commission             int64
}

func (m *ProtoOAPosition) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.PositionID)
	b = appendEmbedded(b, 2, &m.TradeData)
	b = appendInt32(b, 3, m.PositionStatus)
	b = appendInt64(b, 4, m.Swap)
	b = appendDouble(b, 5, m.Price)
	b = appendDouble(b, 6, m.StopLoss)
	b = appendDouble(b, 7, m.TakeProfit)
	b = appendInt64(b, 8, m.UTCLastUpdateTimestamp)
	b = appendInt64(b, 9, m.Commission)
	return b
}

func (m *ProtoOAPosition) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.PositionID = d.int64()
		case 2:
			d.embedded(&m.TradeData)
		case 3:
			m.PositionStatus = d.int32()
		case 4:
			m.Swap = d.int64()
		case 5:
			m.Price = d.double()
		case 6:
			m.StopLoss = d.double()
		case 7:
			m.TakeProfit = d.double()
		case 8:
			m.UTCLastUpdateTimestamp = d.int64()
		case 9:
			m.Commission = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAOrder is a pending or historical order.
type ProtoOAOrder struct {
	OrderID        int64
	TradeData      ProtoOATradeData
	OrderType      OrderType
	OrderStatus    int32
	ExecutionPrice float64
	ExecutedVolume int64
	LimitPrice     float64
	StopPrice      float64
	PositionID     int64
}

func (m *ProtoOAOrder) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.OrderID)
	b = appendEmbedded(b, 2, &m.TradeData)
	b = appendInt32(b, 3, int32(m.OrderType))
	b = appendInt32(b, 4, m.OrderStatus)
	b = appendDouble(b, 7, m.ExecutionPrice)
	b = appendInt64(b, 8, m.ExecutedVolume)
	b = appendDouble(b, 13, m.LimitPrice)
	b = appendDouble(b, 14, m.StopPrice)
	b = appendInt64(b, 19, m.PositionID)
	return b
}

func (m *ProtoOAOrder) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.OrderID = d.int64()
		case 2:
			d.embedded(&m.TradeData)
		case 3:
			m.OrderType = OrderType(d.int32())
		case 4:
			m.OrderStatus = d.int32()
		case 7:
			m.ExecutionPrice = d.double()
		case 8:
			m.ExecutedVolume = d.int64()
		case 13:
			m.LimitPrice = d.double()
		case 14:
			m.StopPrice = d.double()
		case 19:
			m.PositionID = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOADeal is an executed fill.
type ProtoOADeal struct {
	DealID             int64
	OrderID            int64
	PositionID         int64
	Volume             int64
	FilledVolume       int64
	SymbolID           int64
	CreateTimestamp    int64
	ExecutionTimestamp int64
	ExecutionPrice     float64
	TradeSide          TradeSide
	DealStatus         int32
}

func (m *ProtoOADeal) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.DealID)
	b = appendInt64(b, 2, m.OrderID)
	b = appendInt64(b, 3, m.PositionID)
	b = appendInt64(b, 4, m.Volume)
	b = appendInt64(b, 5, m.FilledVolume)
	b = appendInt64(b, 6, m.SymbolID)
	b = appendInt64(b, 7, m.CreateTimestamp)
	b = appendInt64(b, 8, m.ExecutionTimestamp)
	b = appendDouble(b, 10, m.ExecutionPrice)
	b = appendInt32(b, 11, int32(m.TradeSide))
	b = appendInt32(b, 12, m.DealStatus)
	return b
}

func (m *ProtoOADeal) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.DealID = d.int64()
		case 2:
			m.OrderID = d.int64()
		case 3:
			m.PositionID = d.int64()
		case 4:
			m.Volume = d.int64()
		case 5:
			m.FilledVolume = d.int64()
		case 6:
			m.SymbolID = d.int64()
		case 7:
			m.CreateTimestamp = d.int64()
		case 8:
			m.ExecutionTimestamp = d.int64()
		case 10:
			m.ExecutionPrice = d.double()
		case 11:
			m.TradeSide = TradeSide(d.int32())
		case 12:
			m.DealStatus = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

// ProtoOAPositionUnrealizedPnL is the per-position unrealized result.
type ProtoOAPositionUnrealizedPnL struct {
	PositionID          int64
	GrossUnrealizedPnL  int64
	NetUnrealizedPnL    int64
}

func (m *ProtoOAPositionUnrealizedPnL) AppendTo(b []byte) []byte {
	b = appendInt64(b, 1, m.PositionID)
	b = appendInt64(b, 2, m.GrossUnrealizedPnL)
	b = appendInt64(b, 3, m.NetUnrealizedPnL)
	return b
}

func (m *ProtoOAPositionUnrealizedPnL) ReadFrom(data []byte) error {
	d := decoder{buf: data}
	for d.next() {
		switch d.num {
		case 1:
			m.PositionID = d.int64()
		case 2:
			m.GrossUnrealizedPnL = d.int64()
		case 3:
			m.NetUnrealizedPnL = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}
