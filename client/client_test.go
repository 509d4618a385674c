package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ctrader-openapi/internal/fakeserver"
	"ctrader-openapi/messages"
	"ctrader-openapi/transport"
)

// scriptedHandler answers auth and symbol requests the way the real endpoint
// does, echoing each request's correlation id.
func scriptedHandler(c *fakeserver.Conn, env *messages.ProtoMessage) {
	switch env.PayloadTypeTag {
	case messages.PayloadTypeOAApplicationAuthReq:
		c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
	case messages.PayloadTypeOAAccountAuthReq:
		var req messages.ProtoOAAccountAuthReq
		req.ReadFrom(env.Payload)
		c.Send(&messages.ProtoOAAccountAuthRes{CtidTraderAccountID: req.CtidTraderAccountID}, env.ClientMsgID)
	case messages.PayloadTypeOASymbolsListReq:
		var req messages.ProtoOASymbolsListReq
		req.ReadFrom(env.Payload)
		c.Send(&messages.ProtoOASymbolsListRes{
			CtidTraderAccountID: req.CtidTraderAccountID,
			Symbol: []messages.ProtoOALightSymbol{
				{SymbolID: 1, SymbolName: "EURUSD", Enabled: true},
			},
		}, env.ClientMsgID)
	case messages.PayloadTypeOAVersionReq:
		c.Send(&messages.ProtoOAVersionRes{Version: "99"}, env.ClientMsgID)
	}
}

func startSession(t *testing.T, handle fakeserver.Handler, opts ...Option) (*Session, *fakeserver.Server) {
	t.Helper()
	srv, err := fakeserver.Start(handle)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(srv.Close)

	host, port := srv.HostPort()
	opts = append([]Option{
		WithTransportOptions(transport.WithMessagesPerSecond(200)),
	}, opts...)
	s := NewSession(host, port, opts...)
	t.Cleanup(s.Disconnect)
	return s, srv
}

func TestHappyPathAuth(t *testing.T) {
	s, _ := startSession(t, scriptedHandler)
	ctx := context.Background()

	if err := s.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if got := s.State(); got != StateConnected {
		t.Fatalf("state after connect: %s", got)
	}

	if _, err := s.SendApplicationAuthReq(ctx, "client-id", "secret"); err != nil {
		t.Fatalf("app auth failed: %v", err)
	}
	if got := s.State(); got != StateAppAuthenticated {
		t.Fatalf("state after app auth: %s", got)
	}

	res, err := s.SendAccountAuthReq(ctx, 12345, "token")
	if err != nil {
		t.Fatalf("account auth failed: %v", err)
	}
	if res.CtidTraderAccountID != 12345 {
		t.Errorf("account auth echoed %d", res.CtidTraderAccountID)
	}
	if got := s.State(); got != StateAccountAuthenticated {
		t.Fatalf("state after account auth: %s", got)
	}
	if got := s.AccountID(); got != 12345 {
		t.Errorf("AccountID() = %d", got)
	}

	symbols, err := s.SendSymbolsListReq(ctx, 12345, false)
	if err != nil {
		t.Fatalf("symbols list failed: %v", err)
	}
	if len(symbols.Symbol) != 1 || symbols.Symbol[0].SymbolName != "EURUSD" {
		t.Errorf("unexpected symbols: %+v", symbols.Symbol)
	}
}

func TestOutOfOrderResponses(t *testing.T) {
	var mu sync.Mutex
	held := map[string]*messages.ProtoMessage{}

	// Hold request "a"; when "b" arrives, answer b first, then a.
	handler := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		switch env.PayloadTypeTag {
		case messages.PayloadTypeOAApplicationAuthReq:
			c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
		case messages.PayloadTypeOAVersionReq:
			mu.Lock()
			defer mu.Unlock()
			if env.ClientMsgID == "a" {
				held["a"] = env
				return
			}
			c.Send(&messages.ProtoOAVersionRes{Version: "b"}, "b")
			if _, ok := held["a"]; ok {
				// Small gap so the two completions cannot race in the
				// waiter goroutines.
				time.Sleep(20 * time.Millisecond)
				c.Send(&messages.ProtoOAVersionRes{Version: "a"}, "a")
			}
		}
	}

	s, _ := startSession(t, handler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	order := make(chan string, 2)
	var wg sync.WaitGroup
	send := func(id string) {
		defer wg.Done()
		if _, err := s.Send(ctx, &messages.ProtoOAVersionReq{}, WithClientMsgID(id)); err != nil {
			t.Errorf("send %s failed: %v", id, err)
			return
		}
		order <- id
	}
	wg.Add(2)
	go send("a")
	time.Sleep(50 * time.Millisecond)
	go send("b")
	wg.Wait()

	first, second := <-order, <-order
	if first != "b" || second != "a" {
		t.Errorf("completion order %s, %s; want b, a", first, second)
	}
}

func TestTimeoutIsolation(t *testing.T) {
	silentVersion := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		if env.PayloadTypeTag == messages.PayloadTypeOAVersionReq {
			return // never answer
		}
		scriptedHandler(c, env)
	}

	s, _ := startSession(t, silentVersion)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	_, err := s.SendVersionReq(ctx, WithTimeout(200*time.Millisecond))
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout took %v", elapsed)
	}

	// An unrelated request on the same session still succeeds.
	if _, err := s.SendAccountAuthReq(ctx, 7, "token"); err != nil {
		t.Errorf("request after timeout failed: %v", err)
	}
}

func TestDisconnectFailsAllPending(t *testing.T) {
	silent := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		if env.PayloadTypeTag == messages.PayloadTypeOAApplicationAuthReq {
			c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
		}
	}

	reasons := make(chan string, 2)
	s, srv := startSession(t, silent, WithDisconnectHandler(func(r string) { reasons <- r }))
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_, err := s.Send(ctx, &messages.ProtoOAVersionReq{})
			errs <- err
		}()
	}

	// Let the requests reach the wire, then kill the connection.
	time.Sleep(200 * time.Millisecond)
	for _, c := range srv.Conns() {
		c.Close()
	}

	for i := 0; i < 3; i++ {
		select {
		case err := <-errs:
			if !errors.Is(err, ErrConnectionLost) {
				t.Errorf("waiter %d: expected ErrConnectionLost, got %v", i, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("pending waiter never failed")
		}
	}

	select {
	case <-reasons:
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect callback never fired")
	}
	select {
	case r := <-reasons:
		t.Fatalf("disconnect callback fired twice: %q", r)
	case <-time.After(100 * time.Millisecond):
	}

	if got := s.State(); got != StateDisconnected {
		t.Errorf("state after disconnect: %s", got)
	}
}

func TestCorrelationUniqueness(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]int{}
	handler := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		if env.PayloadTypeTag == messages.PayloadTypeOAApplicationAuthReq {
			c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
			return
		}
		mu.Lock()
		seen[env.ClientMsgID]++
		mu.Unlock()
		c.Send(&messages.ProtoOAVersionRes{Version: "x"}, env.ClientMsgID)
	}

	s, _ := startSession(t, handler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatal(err)
	}

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.SendVersionReq(ctx); err != nil {
				t.Errorf("concurrent send failed: %v", err)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != n {
		t.Errorf("expected %d distinct correlation ids, got %d", n, len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("correlation id %q used %d times", id, count)
		}
	}
}

func TestAccountScopedGating(t *testing.T) {
	s, _ := startSession(t, scriptedHandler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatal(err)
	}

	// App-authenticated but no account bound yet.
	if _, err := s.SendSymbolsListReq(ctx, 1, false); !errors.Is(err, ErrAccountNotAuthenticated) {
		t.Errorf("expected ErrAccountNotAuthenticated, got %v", err)
	}
	if _, err := s.SendTraderReq(ctx, 1); !errors.Is(err, ErrAccountNotAuthenticated) {
		t.Errorf("expected ErrAccountNotAuthenticated, got %v", err)
	}
}

func TestSendBeforeConnect(t *testing.T) {
	s := NewSession("127.0.0.1", 1)
	_, err := s.Send(context.Background(), &messages.ProtoOAVersionReq{})
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestServerErrorEnvelope(t *testing.T) {
	handler := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		if env.PayloadTypeTag == messages.PayloadTypeOAApplicationAuthReq {
			c.Send(&messages.ProtoOAErrorRes{
				ErrorCode:   "CH_CLIENT_AUTH_FAILURE",
				Description: "bad client pair",
			}, env.ClientMsgID)
		}
	}

	s, _ := startSession(t, handler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	_, err := s.SendApplicationAuthReq(ctx, "id", "wrong")
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if serr.Code != "CH_CLIENT_AUTH_FAILURE" {
		t.Errorf("error code %q", serr.Code)
	}
	// A rejected app auth leaves the state machine at Connected.
	if got := s.State(); got != StateConnected {
		t.Errorf("state after rejected auth: %s", got)
	}
}

func TestLateResponseDropped(t *testing.T) {
	release := make(chan struct{})
	handler := func(c *fakeserver.Conn, env *messages.ProtoMessage) {
		switch env.PayloadTypeTag {
		case messages.PayloadTypeOAApplicationAuthReq:
			c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
		case messages.PayloadTypeOAVersionReq:
			go func() {
				<-release
				c.Send(&messages.ProtoOAVersionRes{Version: "late"}, env.ClientMsgID)
			}()
		default:
			scriptedHandler(c, env)
		}
	}

	s, _ := startSession(t, handler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.SendVersionReq(ctx, WithTimeout(100*time.Millisecond)); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	// Deliver the response after the waiter has given up; the session must
	// drop it and stay healthy.
	close(release)
	time.Sleep(100 * time.Millisecond)

	if _, err := s.SendAccountAuthReq(ctx, 3, "token"); err != nil {
		t.Errorf("session unhealthy after late response: %v", err)
	}
}

func TestReconnectAfterDisconnect(t *testing.T) {
	s, srv := startSession(t, scriptedHandler)
	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	for _, c := range srv.Conns() {
		c.Close()
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.State() != StateDisconnected && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.State() != StateDisconnected {
		t.Fatal("session never reached Disconnected")
	}

	// The state machine tolerates being re-driven.
	if err := s.Connect(ctx); err != nil {
		t.Fatalf("reconnect failed: %v", err)
	}
	if _, err := s.SendApplicationAuthReq(ctx, "id", "secret"); err != nil {
		t.Fatalf("app auth after reconnect failed: %v", err)
	}
}
