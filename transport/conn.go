// Package transport implements the duplex TLS transport under a session:
// a rate-limited send scheduler on one goroutine, a receive loop on another,
// and an instant path for heartbeats that must not wait behind the queue.
//
//	caller ──Send──→ queue ──┐
//	                         ├─ sendLoop ──(rate limit)──→ TLS conn
//	heartbeat ──SendInstant──┘
//
//	recvLoop: TLS conn ──frame──→ envelope ──→ heartbeat echo / OnMessage
//
// Why one reader and a write lock? TLS is a byte stream — reads must be
// sequential to keep frame boundaries, and writes must not interleave or the
// stream corrupts. The send loop and the instant path (including heartbeat
// echoes written from the receive loop) share one write mutex. Callers only
// enqueue and wait.
package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ctrader-openapi/codec"
	"ctrader-openapi/messages"
	"ctrader-openapi/protocol"
)

// Default endpoints of the reference environment.
const (
	DemoHost    = "demo.ctraderapi.com"
	LiveHost    = "live.ctraderapi.com"
	DefaultPort = 5035
)

const (
	defaultMessagesPerSecond = 5
	defaultHeartbeatIdle     = 20 * time.Second
	defaultQueueSize         = 1024
)

// ErrQueueFull reports a saturated outbound queue.
var ErrQueueFull = errors.New("transport: outbound queue full")

// ErrClosed reports a send on a connection that has shut down.
var ErrClosed = errors.New("transport: connection closed")

type config struct {
	messagesPerSecond int
	heartbeatIdle     time.Duration
	maxFrameBytes     uint32
	queueSize         int
	verifyPeer        bool
	dialTimeout       time.Duration
	logger            *zap.Logger
	onMessage         func(*messages.ProtoMessage)
	onDisconnect      func(reason string)
}

// Option configures a connection.
type Option func(*config)

// WithMessagesPerSecond caps queued dispatches per sliding second.
func WithMessagesPerSecond(n int) Option {
	return func(c *config) { c.messagesPerSecond = n }
}

// WithHeartbeatIdle sets the write-inactivity interval after which the send
// loop emits a heartbeat.
func WithHeartbeatIdle(d time.Duration) Option {
	return func(c *config) { c.heartbeatIdle = d }
}

// WithMaxFrameBytes sets the inbound frame size limit.
func WithMaxFrameBytes(n uint32) Option {
	return func(c *config) { c.maxFrameBytes = n }
}

// WithVerifyPeer enables TLS certificate verification. The reference
// environment runs with verification off; production deployments should turn
// it on.
func WithVerifyPeer(v bool) Option {
	return func(c *config) { c.verifyPeer = v }
}

// WithDialTimeout bounds the TCP+TLS handshake.
func WithDialTimeout(d time.Duration) Option {
	return func(c *config) { c.dialTimeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMessageHandler sets the callback invoked for every decoded non-heartbeat
// envelope, in wire order, on the receive goroutine.
func WithMessageHandler(fn func(*messages.ProtoMessage)) Option {
	return func(c *config) { c.onMessage = fn }
}

// WithDisconnectHandler sets the callback fired once when the connection goes
// down, with a human-readable reason.
func WithDisconnectHandler(fn func(reason string)) Option {
	return func(c *config) { c.onDisconnect = fn }
}

type outItem struct {
	data      []byte
	cancelled func() bool
}

// Conn is one duplex connection to an Open API endpoint.
type Conn struct {
	conn net.Conn
	cfg  config
	log  *zap.Logger

	limiter *rate.Limiter
	queue   chan outItem

	// writeMu serializes the send loop with instant writes so a heartbeat
	// never lands inside another frame.
	writeMu   sync.Mutex
	lastWrite time.Time // guarded by writeMu

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Dial opens a TLS connection to host:port and starts the send and receive
// loops.
func Dial(host string, port int, opts ...Option) (*Conn, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	dialer := &net.Dialer{Timeout: cfg.dialTimeout}
	tlsConf := &tls.Config{InsecureSkipVerify: !cfg.verifyPeer}
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(host, fmt.Sprint(port)), tlsConf)
	if err != nil {
		return nil, err
	}
	return NewConn(conn, opts...), nil
}

// NewConn wraps an established connection and starts the loops. Dial calls it
// after the TLS handshake.
func NewConn(conn net.Conn, opts ...Option) *Conn {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		conn:      conn,
		cfg:       cfg,
		log:       cfg.logger,
		limiter:   rate.NewLimiter(rate.Limit(cfg.messagesPerSecond), 1),
		queue:     make(chan outItem, cfg.queueSize),
		lastWrite: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}

	c.wg.Add(2)
	go c.sendLoop()
	go c.recvLoop()
	return c
}

func defaultConfig() config {
	return config{
		messagesPerSecond: defaultMessagesPerSecond,
		heartbeatIdle:     defaultHeartbeatIdle,
		maxFrameBytes:     protocol.MaxFrameBytes,
		queueSize:         defaultQueueSize,
		dialTimeout:       30 * time.Second,
		logger:            zap.NewNop(),
	}
}

// Send enqueues envelope bytes for rate-limited dispatch in insertion order.
// cancelled, if non-nil, is checked at dequeue time; items reporting true are
// skipped without being written.
func (c *Conn) Send(data []byte, cancelled func() bool) error {
	select {
	case <-c.ctx.Done():
		return ErrClosed
	default:
	}
	select {
	case c.queue <- outItem{data: data, cancelled: cancelled}:
		return nil
	default:
		return ErrQueueFull
	}
}

// SendInstant writes envelope bytes immediately, bypassing the queue and the
// rate limiter. Only heartbeats and heartbeat replies use this path.
func (c *Conn) SendInstant(data []byte) error {
	select {
	case <-c.ctx.Done():
		return ErrClosed
	default:
	}
	return c.writeFrame(data)
}

// Heartbeat sends a heartbeat envelope on the instant path.
func (c *Conn) Heartbeat() error {
	return c.SendInstant(codec.Encode(&messages.ProtoHeartbeatEvent{}, ""))
}

// Close shuts the connection down and stops both loops. Safe to call more
// than once.
func (c *Conn) Close() error {
	c.shutdown("closed by client")
	c.wg.Wait()
	return nil
}

func (c *Conn) writeFrame(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := protocol.Encode(c.conn, data); err != nil {
		return err
	}
	c.lastWrite = time.Now()
	c.log.Debug("frame written", zap.Int("bytes", len(data)))
	return nil
}

func (c *Conn) idleSince() time.Duration {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return time.Since(c.lastWrite)
}

// sendLoop drains the queue under the rate limiter and keeps the connection
// warm with heartbeats while idle.
func (c *Conn) sendLoop() {
	defer c.wg.Done()

	// The idle check runs a few times per heartbeat interval so an idle
	// heartbeat goes out within one tick of the deadline.
	tick := c.cfg.heartbeatIdle / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	idle := time.NewTicker(tick)
	defer idle.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return

		case item := <-c.queue:
			if item.cancelled != nil && item.cancelled() {
				c.log.Debug("skipping cancelled outbound message")
				continue
			}
			// Waits until the limiter grants a slot; spacing writes at
			// 1/messagesPerSecond keeps every sliding second at or under
			// the cap.
			if err := c.limiter.Wait(c.ctx); err != nil {
				return
			}
			if err := c.writeFrame(item.data); err != nil {
				c.log.Error("outbound write failed", zap.Error(err))
				c.shutdown(fmt.Sprintf("write error: %v", err))
				return
			}

		case <-idle.C:
			if c.idleSince() < c.cfg.heartbeatIdle {
				continue
			}
			if err := c.Heartbeat(); err != nil {
				c.log.Error("heartbeat write failed", zap.Error(err))
				c.shutdown(fmt.Sprintf("heartbeat error: %v", err))
				return
			}
			c.log.Debug("idle heartbeat sent")
		}
	}
}

// recvLoop reads frames, decodes envelopes, echoes heartbeats, and hands
// everything else to the message callback in wire order.
//
// Decode failures are logged and skipped; the connection stays up. Transport
// failures tear the connection down.
func (c *Conn) recvLoop() {
	defer c.wg.Done()

	for {
		payload, err := protocol.Decode(c.conn, c.cfg.maxFrameBytes)
		if err != nil {
			select {
			case <-c.ctx.Done():
				// Close() already ran; the read failed because the socket
				// went away under it.
				return
			default:
			}
			if errors.Is(err, protocol.ErrConnectionClosed) {
				c.shutdown("connection closed by server")
			} else {
				c.log.Error("inbound read failed", zap.Error(err))
				c.shutdown(fmt.Sprintf("read error: %v", err))
			}
			return
		}

		env, err := codec.Decode(payload)
		if err != nil {
			c.log.Warn("dropping undecodable envelope", zap.Error(err))
			continue
		}

		if env.PayloadTypeTag == messages.PayloadTypeHeartbeatEvent {
			c.log.Debug("heartbeat received, echoing")
			if err := c.Heartbeat(); err != nil {
				c.log.Error("heartbeat echo failed", zap.Error(err))
				c.shutdown(fmt.Sprintf("heartbeat error: %v", err))
				return
			}
			continue
		}

		if c.cfg.onMessage != nil {
			c.dispatch(env)
		}
	}
}

// dispatch invokes the message callback, containing handler panics so a bad
// handler cannot take the receive loop down with it.
func (c *Conn) dispatch(env *messages.ProtoMessage) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("message handler panicked",
				zap.Uint32("payloadType", env.PayloadTypeTag),
				zap.Any("panic", r))
		}
	}()
	c.cfg.onMessage(env)
}

// shutdown runs the teardown path exactly once: stop the loops, close the
// socket, fire the disconnect callback.
func (c *Conn) shutdown(reason string) {
	c.closeOnce.Do(func() {
		c.cancel()
		c.conn.Close()
		c.log.Info("connection down", zap.String("reason", reason))
		if c.cfg.onDisconnect != nil {
			c.cfg.onDisconnect(reason)
		}
	})
}
