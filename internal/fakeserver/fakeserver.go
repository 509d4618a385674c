// Package fakeserver is an in-process stand-in for an Open API endpoint,
// used by transport, client, and connector tests. It speaks the real wire
// protocol over a real TLS listener with a self-signed certificate, so tests
// exercise the same dial and framing paths as production.
package fakeserver

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"net"
	"strconv"
	"sync"
	"time"

	"ctrader-openapi/codec"
	"ctrader-openapi/messages"
	"ctrader-openapi/protocol"
)

// Handler consumes one inbound envelope on a server connection, heartbeats
// included — tests decide whether to count, echo, or ignore them.
type Handler func(c *Conn, env *messages.ProtoMessage)

// Conn is one accepted client connection.
type Conn struct {
	raw net.Conn
	mu  sync.Mutex
}

// Send wraps inner in an envelope with the given correlation id and writes
// the frame.
func (c *Conn) Send(inner messages.Message, clientMsgID string) error {
	return c.SendRaw(codec.Encode(inner, clientMsgID))
}

// SendRaw writes envelope bytes as one frame.
func (c *Conn) SendRaw(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return protocol.Encode(c.raw, data)
}

// Close drops the client connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// Server accepts connections and feeds decoded envelopes to the handler.
type Server struct {
	ln     net.Listener
	handle Handler

	mu     sync.Mutex
	conns  []*Conn
	closed bool
	wg     sync.WaitGroup
}

// Start listens on an ephemeral loopback port with a fresh self-signed
// certificate.
func Start(handle Handler) (*Server, error) {
	cert, err := selfSignedCert()
	if err != nil {
		return nil, err
	}
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: []tls.Certificate{cert}})
	if err != nil {
		return nil, err
	}

	s := &Server{ln: ln, handle: handle}
	s.wg.Add(1)
	go s.acceptLoop()
	return s, nil
}

// HostPort returns the listener's host and port.
func (s *Server) HostPort() (string, int) {
	host, portStr, _ := net.SplitHostPort(s.ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	return host, port
}

// Conns returns the currently accepted connections.
func (s *Server) Conns() []*Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Conn(nil), s.conns...)
}

// Close stops accepting and drops every connection.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	conns := append([]*Conn(nil), s.conns...)
	s.mu.Unlock()

	s.ln.Close()
	for _, c := range conns {
		c.Close()
	}
	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		raw, err := s.ln.Accept()
		if err != nil {
			return
		}
		c := &Conn{raw: raw}
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			raw.Close()
			return
		}
		s.conns = append(s.conns, c)
		s.mu.Unlock()

		s.wg.Add(1)
		go s.readLoop(c)
	}
}

func (s *Server) readLoop(c *Conn) {
	defer s.wg.Done()
	for {
		payload, err := protocol.Decode(c.raw, protocol.MaxFrameBytes)
		if err != nil {
			return
		}
		env, err := codec.Decode(payload)
		if err != nil {
			continue
		}
		if s.handle != nil {
			s.handle(c, env)
		}
	}
}

// selfSignedCert builds a throwaway loopback certificate.
func selfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, err
	}
	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "fakeserver"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, err
	}
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}, nil
}

// ErrNoConn reports that no client has connected yet.
var ErrNoConn = errors.New("fakeserver: no connection")

// WaitConn blocks until a client connects or the timeout elapses.
func (s *Server) WaitConn(timeout time.Duration) (*Conn, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		if len(s.conns) > 0 {
			c := s.conns[0]
			s.mu.Unlock()
			return c, nil
		}
		s.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	return nil, ErrNoConn
}
