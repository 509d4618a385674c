// Package connector is the high-level entry point: it wires credentials, the
// OAuth token manager, and a session into one object, keeps local caches of
// symbols, positions, and orders fed from the receive path, and fans events
// out to registered handlers.
package connector

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"ctrader-openapi/auth"
	"ctrader-openapi/client"
	"ctrader-openapi/codec"
	"ctrader-openapi/messages"
	"ctrader-openapi/transport"
)

// Handler consumes one decoded inbound message.
type Handler func(messages.Message)

type config struct {
	host        string
	port        int
	redirectURI string
	tokenFile   string
	logger      *zap.Logger
	sessionOpts []client.Option
	authOpts    []auth.Option
}

// Option configures a Connector.
type Option func(*config)

// WithPort overrides the API port.
func WithPort(port int) Option {
	return func(c *config) { c.port = port }
}

// WithEndpointHost overrides the API host derived from the credentials.
// Tests point this at a local endpoint.
func WithEndpointHost(host string) Option {
	return func(c *config) { c.host = host }
}

// WithRedirectURI sets the OAuth redirect URI registered for the application.
func WithRedirectURI(uri string) Option {
	return func(c *config) { c.redirectURI = uri }
}

// WithTokenFile sets the persisted token location.
func WithTokenFile(path string) Option {
	return func(c *config) { c.tokenFile = path }
}

// WithLogger sets the structured logger shared by all layers.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSessionOptions forwards options to the underlying session.
func WithSessionOptions(opts ...client.Option) Option {
	return func(c *config) { c.sessionOpts = append(c.sessionOpts, opts...) }
}

// WithAuthOptions forwards options to the token manager.
func WithAuthOptions(opts ...auth.Option) Option {
	return func(c *config) { c.authOpts = append(c.authOpts, opts...) }
}

// Connector drives the full flow: connect → app-auth → account-auth → typed
// operations, with caches maintained from responses and events.
type Connector struct {
	creds   *Credentials
	session *client.Session
	tokens  *auth.Manager
	log     *zap.Logger

	mu        sync.RWMutex
	symbols   map[int64]messages.ProtoOALightSymbol
	positions map[int64]messages.ProtoOAPosition
	orders    map[int64]messages.ProtoOAOrder
	accounts  []messages.ProtoOACtidTraderAccount
	handlers  map[uint32][]Handler
}

// New builds a connector from a loaded credential set.
func New(creds *Credentials, opts ...Option) *Connector {
	cfg := config{
		port:        transport.DefaultPort,
		redirectURI: "http://localhost:8080/redirect",
		tokenFile:   "tokens.json",
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Connector{
		creds:     creds,
		log:       cfg.logger,
		symbols:   make(map[int64]messages.ProtoOALightSymbol),
		positions: make(map[int64]messages.ProtoOAPosition),
		orders:    make(map[int64]messages.ProtoOAOrder),
		handlers:  make(map[uint32][]Handler),
	}

	authOpts := append([]auth.Option{
		auth.WithTokenFile(cfg.tokenFile),
		auth.WithLogger(cfg.logger),
	}, cfg.authOpts...)
	c.tokens = auth.NewManager(creds.ClientID, creds.Secret, cfg.redirectURI, authOpts...)

	sessionOpts := append([]client.Option{
		client.WithLogger(cfg.logger),
		client.WithEventHandler(c.handleEnvelope),
	}, cfg.sessionOpts...)
	host := cfg.host
	if host == "" {
		host = creds.Endpoint()
	}
	c.session = client.NewSession(host, cfg.port, sessionOpts...)

	return c
}

// Session exposes the underlying session for direct request access.
func (c *Connector) Session() *client.Session { return c.session }

// Tokens exposes the token manager.
func (c *Connector) Tokens() *auth.Manager { return c.tokens }

// AuthCodeURL is the URL the account holder visits to grant access.
func (c *Connector) AuthCodeURL() string { return c.tokens.AuthCodeURL() }

// ExchangeCode trades an authorization code for a persisted token set.
func (c *Connector) ExchangeCode(ctx context.Context, code string) error {
	_, err := c.tokens.Exchange(ctx, code)
	return err
}

// Connect loads any persisted token, refreshes it if it is close to expiry,
// opens the session, and performs application auth.
func (c *Connector) Connect(ctx context.Context) error {
	if err := c.tokens.Load(); err != nil {
		return err
	}
	if c.tokens.Token() != nil {
		if err := c.tokens.EnsureValid(ctx); err != nil {
			return err
		}
	}

	if err := c.session.Connect(ctx); err != nil {
		return err
	}
	if _, err := c.session.SendApplicationAuthReq(ctx, c.creds.ClientID, c.creds.Secret); err != nil {
		c.session.Disconnect()
		return err
	}
	return nil
}

// Disconnect closes the session.
func (c *Connector) Disconnect() {
	c.session.Disconnect()
}

// Accounts lists the trading accounts reachable with the stored token and
// caches the result.
func (c *Connector) Accounts(ctx context.Context) ([]messages.ProtoOACtidTraderAccount, error) {
	tok := c.tokens.Token()
	if tok == nil {
		return nil, auth.ErrNoToken
	}
	res, err := c.session.SendGetAccountListByAccessTokenReq(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.accounts = res.CtidTraderAccount
	c.mu.Unlock()
	return res.CtidTraderAccount, nil
}

// SetAccount binds a trading account to the session with the stored access
// token.
func (c *Connector) SetAccount(ctx context.Context, ctidTraderAccountID int64) error {
	tok := c.tokens.Token()
	if tok == nil {
		return auth.ErrNoToken
	}
	_, err := c.session.SendAccountAuthReq(ctx, ctidTraderAccountID, tok.AccessToken)
	return err
}

// AccountID returns the bound account, or zero.
func (c *Connector) AccountID() int64 { return c.session.AccountID() }

// Symbols fetches the symbol list and refreshes the cache from the response.
func (c *Connector) Symbols(ctx context.Context, includeArchived bool) ([]messages.ProtoOALightSymbol, error) {
	res, err := c.session.SendSymbolsListReq(ctx, c.AccountID(), includeArchived)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	for _, s := range res.Symbol {
		c.symbols[s.SymbolID] = s
	}
	c.mu.Unlock()
	return res.Symbol, nil
}

// SymbolByID returns the cached light symbol, if present.
func (c *Connector) SymbolByID(id int64) (messages.ProtoOALightSymbol, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.symbols[id]
	return s, ok
}

// Positions returns a snapshot of the cached open positions.
func (c *Connector) Positions() []messages.ProtoOAPosition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]messages.ProtoOAPosition, 0, len(c.positions))
	for _, p := range c.positions {
		out = append(out, p)
	}
	return out
}

// Orders returns a snapshot of the cached pending orders.
func (c *Connector) Orders() []messages.ProtoOAOrder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]messages.ProtoOAOrder, 0, len(c.orders))
	for _, o := range c.orders {
		out = append(out, o)
	}
	return out
}

// Reconcile fetches open positions and pending orders and resets the caches
// from the response.
func (c *Connector) Reconcile(ctx context.Context) (*messages.ProtoOAReconcileRes, error) {
	res, err := c.session.SendReconcileReq(ctx, c.AccountID())
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.positions = make(map[int64]messages.ProtoOAPosition, len(res.Position))
	for _, p := range res.Position {
		c.positions[p.PositionID] = p
	}
	c.orders = make(map[int64]messages.ProtoOAOrder, len(res.Order))
	for _, o := range res.Order {
		c.orders[o.OrderID] = o
	}
	c.mu.Unlock()
	return res, nil
}

// SubscribeSpots subscribes to quote updates for the given symbols.
func (c *Connector) SubscribeSpots(ctx context.Context, symbolIDs []int64) error {
	_, err := c.session.SendSubscribeSpotsReq(ctx, c.AccountID(), symbolIDs)
	return err
}

// UnsubscribeSpots drops the quote subscription for the given symbols.
func (c *Connector) UnsubscribeSpots(ctx context.Context, symbolIDs []int64) error {
	_, err := c.session.SendUnsubscribeSpotsReq(ctx, c.AccountID(), symbolIDs)
	return err
}

// Handle registers a handler for a payload type. Handlers run on the receive
// goroutine in wire order; a panicking handler is logged and contained.
func (c *Connector) Handle(payloadType uint32, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[payloadType] = append(c.handlers[payloadType], h)
}

// handleEnvelope runs for every inbound envelope on the receive path. It
// updates caches from events and dispatches registered handlers.
func (c *Connector) handleEnvelope(env *messages.ProtoMessage) {
	inner, err := codec.Extract(env)
	if err != nil {
		c.log.Debug("skipping inbound message", zap.Error(err))
		return
	}

	switch msg := inner.(type) {
	case *messages.ProtoOAExecutionEvent:
		c.applyExecution(msg)
	case *messages.ProtoOAAccountDisconnectEvent:
		c.log.Warn("account disconnected by server",
			zap.Int64("ctidTraderAccountId", msg.CtidTraderAccountID))
	}

	c.mu.RLock()
	hs := c.handlers[env.PayloadTypeTag]
	c.mu.RUnlock()
	for _, h := range hs {
		c.invoke(h, inner)
	}
}

func (c *Connector) invoke(h Handler, msg messages.Message) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("event handler panicked",
				zap.String("payload", messages.Name(msg.PayloadType())),
				zap.Any("panic", r))
		}
	}()
	h(msg)
}

// applyExecution keeps the position and order caches in step with fills,
// cancellations, and closes.
func (c *Connector) applyExecution(ev *messages.ProtoOAExecutionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ev.Position != nil {
		// Volume zero means the position was fully closed.
		if ev.Position.TradeData.Volume == 0 {
			delete(c.positions, ev.Position.PositionID)
		} else {
			c.positions[ev.Position.PositionID] = *ev.Position
		}
	}
	if ev.Order != nil {
		switch ev.ExecutionType {
		case messages.ExecutionTypeOrderFilled,
			messages.ExecutionTypeOrderCancelled,
			messages.ExecutionTypeOrderExpired,
			messages.ExecutionTypeOrderRejected:
			delete(c.orders, ev.Order.OrderID)
		default:
			c.orders[ev.Order.OrderID] = *ev.Order
		}
	}
}

// BuyMarket places a market buy order.
func (c *Connector) BuyMarket(ctx context.Context, symbolID, volume int64, opts ...OrderOption) (*messages.ProtoMessage, error) {
	return c.placeMarket(ctx, symbolID, volume, messages.TradeSideBuy, opts...)
}

// SellMarket places a market sell order.
func (c *Connector) SellMarket(ctx context.Context, symbolID, volume int64, opts ...OrderOption) (*messages.ProtoMessage, error) {
	return c.placeMarket(ctx, symbolID, volume, messages.TradeSideSell, opts...)
}

// OrderOption adjusts an order request before dispatch.
type OrderOption func(*messages.ProtoOANewOrderReq)

// WithStopLoss sets an absolute stop-loss price.
func WithStopLoss(price float64) OrderOption {
	return func(r *messages.ProtoOANewOrderReq) { r.StopLoss = price }
}

// WithTakeProfit sets an absolute take-profit price.
func WithTakeProfit(price float64) OrderOption {
	return func(r *messages.ProtoOANewOrderReq) { r.TakeProfit = price }
}

// WithComment attaches a comment to the order.
func WithComment(comment string) OrderOption {
	return func(r *messages.ProtoOANewOrderReq) { r.Comment = comment }
}

// WithLabel attaches a label to the order.
func WithLabel(label string) OrderOption {
	return func(r *messages.ProtoOANewOrderReq) { r.Label = label }
}

func (c *Connector) placeMarket(ctx context.Context, symbolID, volume int64, side messages.TradeSide, opts ...OrderOption) (*messages.ProtoMessage, error) {
	req := &messages.ProtoOANewOrderReq{
		CtidTraderAccountID: c.AccountID(),
		SymbolID:            symbolID,
		OrderType:           messages.OrderTypeMarket,
		TradeSide:           side,
		Volume:              volume,
	}
	for _, o := range opts {
		o(req)
	}
	return c.session.SendNewOrderReq(ctx, req)
}

// PlaceLimitOrder places a limit order at the given price.
func (c *Connector) PlaceLimitOrder(ctx context.Context, symbolID, volume int64, side messages.TradeSide, limitPrice float64, opts ...OrderOption) (*messages.ProtoMessage, error) {
	req := &messages.ProtoOANewOrderReq{
		CtidTraderAccountID: c.AccountID(),
		SymbolID:            symbolID,
		OrderType:           messages.OrderTypeLimit,
		TradeSide:           side,
		Volume:              volume,
		LimitPrice:          limitPrice,
	}
	for _, o := range opts {
		o(req)
	}
	return c.session.SendNewOrderReq(ctx, req)
}

// PlaceStopOrder places a stop order at the given trigger price.
func (c *Connector) PlaceStopOrder(ctx context.Context, symbolID, volume int64, side messages.TradeSide, stopPrice float64, opts ...OrderOption) (*messages.ProtoMessage, error) {
	req := &messages.ProtoOANewOrderReq{
		CtidTraderAccountID: c.AccountID(),
		SymbolID:            symbolID,
		OrderType:           messages.OrderTypeStop,
		TradeSide:           side,
		Volume:              volume,
		StopPrice:           stopPrice,
	}
	for _, o := range opts {
		o(req)
	}
	return c.session.SendNewOrderReq(ctx, req)
}

// CancelOrder cancels a pending order.
func (c *Connector) CancelOrder(ctx context.Context, orderID int64) (*messages.ProtoMessage, error) {
	return c.session.SendCancelOrderReq(ctx, c.AccountID(), orderID)
}

// ClosePosition closes part or all of a position.
func (c *Connector) ClosePosition(ctx context.Context, positionID, volume int64) (*messages.ProtoMessage, error) {
	return c.session.SendClosePositionReq(ctx, c.AccountID(), positionID, volume)
}

// AmendPositionSLTP changes a position's protection levels.
func (c *Connector) AmendPositionSLTP(ctx context.Context, positionID int64, stopLoss, takeProfit float64) (*messages.ProtoMessage, error) {
	return c.session.SendAmendPositionSLTPReq(ctx, &messages.ProtoOAAmendPositionSLTPReq{
		CtidTraderAccountID: c.AccountID(),
		PositionID:          positionID,
		StopLoss:            stopLoss,
		TakeProfit:          takeProfit,
	})
}

// String describes the connector's target environment.
func (c *Connector) String() string {
	return fmt.Sprintf("connector(%s %s)", c.creds.Host, c.creds.Endpoint())
}
