// Package client implements the session layer: request/response multiplexing
// over one transport connection, with per-call correlation ids, timeouts, and
// the connect → app-auth → account-auth state machine.
//
// Call flow:
//
//	SendSymbolsListReq(ctx, ...)
//	  → build ProtoOASymbolsListReq        → request layer
//	  → codec.Encode(req, uuid)            → envelope with fresh correlation id
//	  → pending[uuid] = chan               → register BEFORE sending
//	  → conn.Send(data)                    → rate-limited queue
//	  → <-chan / timeout / ctx.Done()      → wait for the correlated response
//
// The receive path routes each correlated response to its waiter via the
// pending map; uncorrelated envelopes (spot events, execution events) fan out
// to the event callback in wire order.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ctrader-openapi/codec"
	"ctrader-openapi/messages"
	"ctrader-openapi/middleware"
	"ctrader-openapi/transport"
)

// State is the session lifecycle position.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateAppAuthenticated
	StateAccountAuthenticated
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateAppAuthenticated:
		return "AppAuthenticated"
	case StateAccountAuthenticated:
		return "AccountAuthenticated"
	case StateClosing:
		return "Closing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var (
	// ErrNotConnected reports a request issued before the session reached
	// Connected.
	ErrNotConnected = errors.New("client: session not connected")

	// ErrTimeout reports a response deadline exceeded. Only the affected
	// waiter fails.
	ErrTimeout = errors.New("client: response timeout")

	// ErrConnectionLost reports an unexpected disconnect; every pending
	// waiter fails with it.
	ErrConnectionLost = errors.New("client: connection lost")

	// ErrAccountNotAuthenticated reports an account-scoped request issued
	// before account auth completed.
	ErrAccountNotAuthenticated = errors.New("client: account not authenticated")
)

// ServerError is an error envelope returned by the server in place of the
// expected response.
type ServerError struct {
	Code        string
	Description string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("client: server error %s: %s", e.Code, e.Description)
}

// ServerErrorFrom converts an error envelope into a *ServerError. It returns
// nil for any non-error payload type.
func ServerErrorFrom(env *messages.ProtoMessage) error {
	switch env.PayloadTypeTag {
	case messages.PayloadTypeErrorRes:
		var res messages.ProtoErrorRes
		if err := res.ReadFrom(env.Payload); err != nil {
			return &codec.MalformedPayloadError{PayloadType: env.PayloadTypeTag, Err: err}
		}
		return &ServerError{Code: res.ErrorCode, Description: res.Description}
	case messages.PayloadTypeOAErrorRes:
		var res messages.ProtoOAErrorRes
		if err := res.ReadFrom(env.Payload); err != nil {
			return &codec.MalformedPayloadError{PayloadType: env.PayloadTypeTag, Err: err}
		}
		return &ServerError{Code: res.ErrorCode, Description: res.Description}
	}
	return nil
}

const defaultResponseTimeout = 30 * time.Second

type config struct {
	responseTimeout time.Duration
	logger          *zap.Logger
	transportOpts   []transport.Option
	middlewares     []middleware.Middleware
	onEvent         func(*messages.ProtoMessage)
	onConnect       func()
	onDisconnect    func(reason string)
}

// Option configures a Session.
type Option func(*config)

// WithResponseTimeout sets the default per-request response deadline.
func WithResponseTimeout(d time.Duration) Option {
	return func(c *config) { c.responseTimeout = d }
}

// WithLogger sets the structured logger, shared with the transport.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTransportOptions forwards options to the underlying connection.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(c *config) { c.transportOpts = append(c.transportOpts, opts...) }
}

// WithMiddleware wraps the request dispatch with the given middlewares, first
// one outermost.
func WithMiddleware(mw ...middleware.Middleware) Option {
	return func(c *config) { c.middlewares = append(c.middlewares, mw...) }
}

// WithEventHandler sets the callback for every inbound non-heartbeat
// envelope, correlated or not, invoked in wire order on the receive goroutine. Handlers must not
// assume concurrency among themselves.
func WithEventHandler(fn func(*messages.ProtoMessage)) Option {
	return func(c *config) { c.onEvent = fn }
}

// WithConnectHandler sets the callback fired when the TLS connection is
// established.
func WithConnectHandler(fn func()) Option {
	return func(c *config) { c.onConnect = fn }
}

// WithDisconnectHandler sets the callback fired once per connection loss with
// a reason string.
func WithDisconnectHandler(fn func(reason string)) Option {
	return func(c *config) { c.onDisconnect = fn }
}

type pendingResult struct {
	env *messages.ProtoMessage
	err error
}

// Session multiplexes request/response exchanges and server-pushed events
// over one connection. It can be re-driven through Connect after reaching
// Disconnected; a higher layer owns any reconnection policy.
type Session struct {
	host string
	port int
	cfg  config
	log  *zap.Logger

	mu        sync.Mutex
	conn      *transport.Conn
	state     atomic.Int32
	accountID atomic.Int64

	// pending maps clientMsgId → chan pendingResult (cap 1). The receive
	// path resolves entries; senders evict their own on timeout or error.
	pending sync.Map

	dispatch middleware.HandlerFunc
}

// NewSession creates a session for the given endpoint. No I/O happens until
// Connect.
func NewSession(host string, port int, opts ...Option) *Session {
	cfg := config{
		responseTimeout: defaultResponseTimeout,
		logger:          zap.NewNop(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	s := &Session{
		host: host,
		port: port,
		cfg:  cfg,
		log:  cfg.logger,
	}
	s.state.Store(int32(StateDisconnected))
	s.dispatch = middleware.Chain(cfg.middlewares...)(s.send)
	return s
}

// State returns the current lifecycle position.
func (s *Session) State() State {
	return State(s.state.Load())
}

// AccountID returns the account bound by the last successful account auth, or
// zero.
func (s *Session) AccountID() int64 {
	return s.accountID.Load()
}

func (s *Session) transition(from, to State) bool {
	return s.state.CompareAndSwap(int32(from), int32(to))
}

// Connect opens the TLS connection and starts the transport loops. The
// session moves Disconnected → Connecting → Connected; application auth is a
// separate step (SendApplicationAuthReq).
func (s *Session) Connect(ctx context.Context) error {
	if !s.transition(StateDisconnected, StateConnecting) {
		return fmt.Errorf("client: connect in state %s", s.State())
	}

	opts := append([]transport.Option{
		transport.WithLogger(s.log),
		transport.WithMessageHandler(s.handleMessage),
		transport.WithDisconnectHandler(s.handleDisconnect),
	}, s.cfg.transportOpts...)
	if deadline, ok := ctx.Deadline(); ok {
		opts = append(opts, transport.WithDialTimeout(time.Until(deadline)))
	}

	conn, err := transport.Dial(s.host, s.port, opts...)
	if err != nil {
		s.state.Store(int32(StateDisconnected))
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.state.Store(int32(StateConnected))
	s.log.Info("session connected", zap.String("host", s.host), zap.Int("port", s.port))

	if s.cfg.onConnect != nil {
		s.cfg.onConnect()
	}
	return nil
}

// Disconnect closes the connection. Pending waiters fail with
// ErrConnectionLost via the transport's disconnect path.
func (s *Session) Disconnect() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	s.state.Store(int32(StateClosing))
	conn.Close()
}

// handleMessage runs on the receive goroutine, in wire order.
func (s *Session) handleMessage(env *messages.ProtoMessage) {
	if s.cfg.onEvent != nil {
		s.cfg.onEvent(env)
	}

	if env.ClientMsgID == "" {
		return
	}
	if ch, ok := s.pending.LoadAndDelete(env.ClientMsgID); ok {
		ch.(chan pendingResult) <- pendingResult{env: env}
		return
	}
	// The waiter timed out or was cancelled before the server answered.
	s.log.Debug("dropping late response",
		zap.String("clientMsgId", env.ClientMsgID),
		zap.String("payload", messages.Name(env.PayloadTypeTag)))
}

func (s *Session) handleDisconnect(reason string) {
	s.failAllPending(ErrConnectionLost)
	s.state.Store(int32(StateDisconnected))
	s.accountID.Store(0)
	s.mu.Lock()
	s.conn = nil
	s.mu.Unlock()
	if s.cfg.onDisconnect != nil {
		s.cfg.onDisconnect(reason)
	}
}

// failAllPending wakes every outstanding waiter with err. Channels have cap 1
// and entries are removed as they are visited, so the fan-out cannot block.
func (s *Session) failAllPending(err error) {
	s.pending.Range(func(key, value any) bool {
		if _, ok := s.pending.LoadAndDelete(key); ok {
			value.(chan pendingResult) <- pendingResult{err: err}
		}
		return true
	})
}

// SendOption adjusts a single Send call.
type SendOption func(*sendConfig)

type sendConfig struct {
	clientMsgID string
	timeout     time.Duration
}

// WithClientMsgID pins the correlation id instead of generating one.
func WithClientMsgID(id string) SendOption {
	return func(c *sendConfig) { c.clientMsgID = id }
}

// WithTimeout overrides the session's default response deadline for one call.
func WithTimeout(d time.Duration) SendOption {
	return func(c *sendConfig) { c.timeout = d }
}

// Send dispatches an inner message and waits for its correlated response
// envelope. A fresh UUID v4 correlation id is generated unless pinned.
func (s *Session) Send(ctx context.Context, msg messages.Message, opts ...SendOption) (*messages.ProtoMessage, error) {
	sc := sendConfig{timeout: s.cfg.responseTimeout}
	for _, o := range opts {
		o(&sc)
	}

	handler := s.dispatch
	if sc.timeout > 0 {
		handler = middleware.Timeout(sc.timeout)(handler)
	}
	if sc.clientMsgID != "" {
		ctx = withClientMsgID(ctx, sc.clientMsgID)
	}
	return handler(ctx, msg)
}

type clientMsgIDKey struct{}

func withClientMsgID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientMsgIDKey{}, id)
}

// send is the innermost dispatch below the middleware chain.
func (s *Session) send(ctx context.Context, msg messages.Message) (*messages.ProtoMessage, error) {
	switch s.State() {
	case StateConnected, StateAppAuthenticated, StateAccountAuthenticated:
	default:
		return nil, ErrNotConnected
	}

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil, ErrNotConnected
	}

	id, _ := ctx.Value(clientMsgIDKey{}).(string)
	if id == "" {
		id = uuid.NewString()
	}

	ch := make(chan pendingResult, 1)
	// Register before sending so a fast response cannot race the waiter.
	s.pending.Store(id, ch)

	data := codec.Encode(msg, id)
	cancelled := func() bool { return ctx.Err() != nil }
	if err := conn.Send(data, cancelled); err != nil {
		s.pending.Delete(id)
		return nil, err
	}

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		return res.env, nil
	case <-ctx.Done():
		s.pending.Delete(id)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}
