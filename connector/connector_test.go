package connector

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ctrader-openapi/auth"
	"ctrader-openapi/client"
	"ctrader-openapi/internal/fakeserver"
	"ctrader-openapi/messages"
	"ctrader-openapi/transport"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	writeJSON(t, path, map[string]string{
		"clientId": "my-id",
		"Secret":   "my-secret",
		"Host":     "Demo",
	})

	c, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}
	if c.ClientID != "my-id" || c.Secret != "my-secret" {
		t.Errorf("credentials %+v", c)
	}
	if c.Endpoint() != transport.DemoHost {
		t.Errorf("endpoint %q", c.Endpoint())
	}
}

func TestLoadCredentialsLiveHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	writeJSON(t, path, map[string]string{"clientId": "a", "Secret": "b", "Host": "LIVE"})

	c, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Endpoint() != transport.LiveHost {
		t.Errorf("endpoint %q", c.Endpoint())
	}
}

func TestLoadCredentialsRejectsBadHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	writeJSON(t, path, map[string]string{"clientId": "a", "Secret": "b", "Host": "staging"})
	if _, err := LoadCredentials(path); err == nil {
		t.Error("expected error for unknown host")
	}
}

func TestLoadCredentialsRejectsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	writeJSON(t, path, map[string]string{"Host": "demo"})
	if _, err := LoadCredentials(path); err == nil {
		t.Error("expected error for missing clientId/Secret")
	}
}

// apiHandler scripts the fake endpoint for the full connector flow.
func apiHandler(c *fakeserver.Conn, env *messages.ProtoMessage) {
	switch env.PayloadTypeTag {
	case messages.PayloadTypeOAApplicationAuthReq:
		c.Send(&messages.ProtoOAApplicationAuthRes{}, env.ClientMsgID)
	case messages.PayloadTypeOAGetAccountListByTokenReq:
		c.Send(&messages.ProtoOAGetAccountListByAccessTokenRes{
			CtidTraderAccount: []messages.ProtoOACtidTraderAccount{
				{CtidTraderAccountID: 12345, TraderLogin: 777},
			},
		}, env.ClientMsgID)
	case messages.PayloadTypeOAAccountAuthReq:
		var req messages.ProtoOAAccountAuthReq
		req.ReadFrom(env.Payload)
		c.Send(&messages.ProtoOAAccountAuthRes{CtidTraderAccountID: req.CtidTraderAccountID}, env.ClientMsgID)
	case messages.PayloadTypeOASymbolsListReq:
		c.Send(&messages.ProtoOASymbolsListRes{
			Symbol: []messages.ProtoOALightSymbol{
				{SymbolID: 1, SymbolName: "EURUSD", Enabled: true},
				{SymbolID: 2, SymbolName: "XAUUSD", Enabled: true},
			},
		}, env.ClientMsgID)
	}
}

func startConnector(t *testing.T) (*Connector, *fakeserver.Server) {
	t.Helper()
	srv, err := fakeserver.Start(apiHandler)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(srv.Close)
	host, port := srv.HostPort()

	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "tokens.json")
	writeJSON(t, tokenFile, auth.TokenSet{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		ExpiresIn:    2628000,
		IssuedAt:     time.Now().Unix(),
		TokenType:    "bearer",
	})

	creds := &Credentials{ClientID: "cid", Secret: "csec", Host: "demo"}
	c := New(creds,
		WithEndpointHost(host),
		WithPort(port),
		WithTokenFile(tokenFile),
		WithSessionOptions(client.WithTransportOptions(transport.WithMessagesPerSecond(200))))
	t.Cleanup(c.Disconnect)
	return c, srv
}

func TestConnectorFullFlow(t *testing.T) {
	c, _ := startConnector(t)
	ctx := context.Background()

	if err := c.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if got := c.Session().State(); got != client.StateAppAuthenticated {
		t.Fatalf("state after connect: %s", got)
	}

	accounts, err := c.Accounts(ctx)
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}
	if len(accounts) != 1 || accounts[0].CtidTraderAccountID != 12345 {
		t.Fatalf("accounts %+v", accounts)
	}

	if err := c.SetAccount(ctx, 12345); err != nil {
		t.Fatalf("SetAccount failed: %v", err)
	}
	if got := c.AccountID(); got != 12345 {
		t.Errorf("AccountID() = %d", got)
	}

	symbols, err := c.Symbols(ctx, false)
	if err != nil {
		t.Fatalf("Symbols failed: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("symbols %+v", symbols)
	}
	if s, ok := c.SymbolByID(2); !ok || s.SymbolName != "XAUUSD" {
		t.Errorf("symbol cache miss: %+v ok=%v", s, ok)
	}
}

func TestConnectorEventFanOut(t *testing.T) {
	c, srv := startConnector(t)
	ctx := context.Background()
	if err := c.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	spots := make(chan *messages.ProtoOASpotEvent, 1)
	c.Handle(messages.PayloadTypeOASpotEvent, func(m messages.Message) {
		spots <- m.(*messages.ProtoOASpotEvent)
	})

	sconn, err := srv.WaitConn(2 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := sconn.Send(&messages.ProtoOASpotEvent{SymbolID: 1, Bid: 109450, Ask: 109470}, ""); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-spots:
		if ev.SymbolID != 1 || ev.Bid != 109450 {
			t.Errorf("spot event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("spot event never dispatched")
	}
}

func TestConnectorExecutionEventUpdatesCaches(t *testing.T) {
	c, srv := startConnector(t)
	ctx := context.Background()
	if err := c.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	seen := make(chan struct{}, 2)
	c.Handle(messages.PayloadTypeOAExecutionEvent, func(messages.Message) { seen <- struct{}{} })

	sconn, err := srv.WaitConn(2 * time.Second)
	if err != nil {
		t.Fatal(err)
	}

	open := &messages.ProtoOAExecutionEvent{
		ExecutionType: messages.ExecutionTypeOrderFilled,
		Position: &messages.ProtoOAPosition{
			PositionID: 42,
			TradeData:  messages.ProtoOATradeData{SymbolID: 1, Volume: 100000, TradeSide: messages.TradeSideBuy},
			Price:      1.0945,
		},
	}
	if err := sconn.Send(open, ""); err != nil {
		t.Fatal(err)
	}
	<-seen

	positions := c.Positions()
	if len(positions) != 1 || positions[0].PositionID != 42 {
		t.Fatalf("positions after fill: %+v", positions)
	}

	closed := &messages.ProtoOAExecutionEvent{
		ExecutionType: messages.ExecutionTypeOrderFilled,
		Position: &messages.ProtoOAPosition{
			PositionID: 42,
			TradeData:  messages.ProtoOATradeData{SymbolID: 1, Volume: 0, TradeSide: messages.TradeSideBuy},
		},
	}
	if err := sconn.Send(closed, ""); err != nil {
		t.Fatal(err)
	}
	<-seen

	if positions := c.Positions(); len(positions) != 0 {
		t.Errorf("positions after close: %+v", positions)
	}
}

func TestConnectorPanickingHandlerIsContained(t *testing.T) {
	c, srv := startConnector(t)
	ctx := context.Background()
	if err := c.Connect(ctx); err != nil {
		t.Fatal(err)
	}

	got := make(chan struct{}, 2)
	c.Handle(messages.PayloadTypeOASpotEvent, func(messages.Message) { panic("bad handler") })
	c.Handle(messages.PayloadTypeOASpotEvent, func(messages.Message) { got <- struct{}{} })

	sconn, err := srv.WaitConn(2 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := sconn.Send(&messages.ProtoOASpotEvent{SymbolID: 1}, ""); err != nil {
		t.Fatal(err)
	}

	// The second handler still runs, and the session survives.
	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("handler after panicking one never ran")
	}
	if _, err := c.Accounts(ctx); err != nil {
		t.Errorf("session unhealthy after handler panic: %v", err)
	}
}
