// Package auth manages the OAuth2 credential lifecycle: building the
// authorization URL, exchanging the authorization code, refreshing before
// expiry, and persisting the token set to disk.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// Endpoints of the broker's OAuth service.
const (
	DefaultAuthURL  = "https://openapi.ctrader.com/apps/auth"
	DefaultTokenURL = "https://openapi.ctrader.com/apps/token"
	DefaultScope    = "trading"
)

// refreshSkew is how long before nominal expiry a token counts as expiring.
const refreshSkew = 5 * time.Minute

// ErrMissingAccessToken reports a token endpoint response without an
// access_token field.
var ErrMissingAccessToken = errors.New("auth: response missing access_token")

// ErrNoToken reports an operation that needs a stored token when none is
// loaded.
var ErrNoToken = errors.New("auth: no token available")

// TokenError carries the error the token endpoint returned.
type TokenError struct {
	Code        string
	Description string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("auth: token endpoint error %s: %s", e.Code, e.Description)
}

// TokenSet is the persisted credential set. IssuedAt is stamped locally on
// every acquisition or refresh; the file on disk uses these snake_case keys.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	IssuedAt     int64  `json:"issued_at"`
	TokenType    string `json:"token_type"`
}

// ExpiresAt is the nominal expiry instant.
func (t *TokenSet) ExpiresAt() time.Time {
	return time.Unix(t.IssuedAt+t.ExpiresIn, 0)
}

// Expiring reports whether the token is within the refresh skew of expiry.
func (t *TokenSet) Expiring(now time.Time) bool {
	return !now.Before(t.ExpiresAt().Add(-refreshSkew))
}

type config struct {
	authURL   string
	tokenURL  string
	scope     string
	tokenFile string
	client    *http.Client
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*config)

// WithTokenFile sets the persisted token location.
func WithTokenFile(path string) Option {
	return func(c *config) { c.tokenFile = path }
}

// WithEndpoints overrides the OAuth endpoints. Tests point this at a local
// server.
func WithEndpoints(authURL, tokenURL string) Option {
	return func(c *config) { c.authURL = authURL; c.tokenURL = tokenURL }
}

// WithScope overrides the requested scope.
func WithScope(scope string) Option {
	return func(c *config) { c.scope = scope }
}

// WithHTTPClient sets the HTTP client used for token requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.client = hc }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithClock overrides the time source. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// Manager acquires, refreshes, and persists the OAuth token set. All methods
// are safe for concurrent use; concurrent refreshes collapse into a single
// request.
type Manager struct {
	oauth oauth2.Config
	cfg   config
	log   *zap.Logger

	mu    sync.Mutex
	token *TokenSet

	sf singleflight.Group
}

// NewManager creates a token manager for the given OAuth application.
func NewManager(clientID, clientSecret, redirectURI string, opts ...Option) *Manager {
	cfg := config{
		authURL:   DefaultAuthURL,
		tokenURL:  DefaultTokenURL,
		scope:     DefaultScope,
		tokenFile: "tokens.json",
		client:    http.DefaultClient,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return &Manager{
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{cfg.scope},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.authURL,
				TokenURL: cfg.tokenURL,
			},
		},
		cfg: cfg,
		log: cfg.logger,
	}
}

// AuthCodeURL is the URL the account holder visits to grant access. Query:
// client_id, redirect_uri, response_type=code, scope.
func (m *Manager) AuthCodeURL() string {
	return m.oauth.AuthCodeURL("")
}

// Token returns a copy of the current token set, or nil if none is loaded.
func (m *Manager) Token() *TokenSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return nil
	}
	t := *m.token
	return &t
}

// legacyTokenFile is the older camelCase persistence format. It is accepted
// on read and rewritten in canonical form.
type legacyTokenFile struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
	IssuedAt     int64  `json:"issued_at"`
}

// Load reads the token file. A missing file is not an error: the manager just
// stays without a token until Exchange. Legacy camelCase files are migrated
// to snake_case on the spot.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.cfg.tokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return pkgerrors.Wrap(err, "auth: reading token file")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return pkgerrors.Wrap(err, "auth: parsing token file")
	}

	if _, legacy := probe["accessToken"]; legacy {
		var old legacyTokenFile
		if err := json.Unmarshal(data, &old); err != nil {
			return pkgerrors.Wrap(err, "auth: parsing legacy token file")
		}
		ts := &TokenSet{
			AccessToken:  old.AccessToken,
			RefreshToken: old.RefreshToken,
			ExpiresIn:    old.ExpiresIn,
			IssuedAt:     old.IssuedAt,
			TokenType:    old.TokenType,
		}
		if ts.TokenType == "" {
			ts.TokenType = "Bearer"
		}
		if ts.IssuedAt == 0 {
			ts.IssuedAt = m.cfg.now().Unix()
		}
		m.mu.Lock()
		m.token = ts
		m.mu.Unlock()
		m.log.Info("migrated legacy token file", zap.String("path", m.cfg.tokenFile))
		return m.save(ts)
	}

	var ts TokenSet
	if err := json.Unmarshal(data, &ts); err != nil {
		return pkgerrors.Wrap(err, "auth: parsing token file")
	}
	if ts.IssuedAt == 0 {
		ts.IssuedAt = m.cfg.now().Unix()
	}
	m.mu.Lock()
	m.token = &ts
	m.mu.Unlock()
	return nil
}

// save writes the token file atomically: temp file in the same directory,
// then rename over the target.
func (m *Manager) save(ts *TokenSet) error {
	data, err := json.Marshal(ts)
	if err != nil {
		return pkgerrors.Wrap(err, "auth: encoding token set")
	}

	dir := filepath.Dir(m.cfg.tokenFile)
	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return pkgerrors.Wrap(err, "auth: creating temp token file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return pkgerrors.Wrap(err, "auth: writing token file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return pkgerrors.Wrap(err, "auth: closing token file")
	}
	if err := os.Rename(tmp.Name(), m.cfg.tokenFile); err != nil {
		os.Remove(tmp.Name())
		return pkgerrors.Wrap(err, "auth: replacing token file")
	}
	return nil
}

// tokenResponse is the token endpoint's JSON body. The broker reports
// failures through errorCode/description rather than the standard OAuth
// error field.
type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
	TokenType    string          `json:"token_type"`
	ErrorCode    json.RawMessage `json:"errorCode"`
	Description  string          `json:"description"`
}

func (m *Manager) post(ctx context.Context, form url.Values) (*TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.oauth.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.cfg.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "auth: token request")
	}
	defer resp.Body.Close()

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, pkgerrors.Wrap(err, "auth: decoding token response")
	}

	if len(body.ErrorCode) > 0 && string(body.ErrorCode) != "null" {
		code := strings.Trim(string(body.ErrorCode), `"`)
		return nil, &TokenError{Code: code, Description: body.Description}
	}
	if body.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	ts := &TokenSet{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresIn:    body.ExpiresIn,
		IssuedAt:     m.cfg.now().Unix(),
		TokenType:    body.TokenType,
	}
	if ts.TokenType == "" {
		ts.TokenType = "Bearer"
	}

	m.mu.Lock()
	m.token = ts
	m.mu.Unlock()
	if err := m.save(ts); err != nil {
		return nil, err
	}

	out := *ts
	return &out, nil
}

// Exchange trades an authorization code for a token set and persists it.
func (m *Manager) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	m.log.Debug("exchanging authorization code")
	return m.post(ctx, url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {m.oauth.RedirectURL},
		"client_id":     {m.oauth.ClientID},
		"client_secret": {m.oauth.ClientSecret},
	})
}

// Refresh trades the stored refresh token for a fresh token set and persists
// it. Concurrent callers share one request.
func (m *Manager) Refresh(ctx context.Context) (*TokenSet, error) {
	m.mu.Lock()
	cur := m.token
	m.mu.Unlock()
	if cur == nil {
		return nil, ErrNoToken
	}

	v, err, _ := m.sf.Do("refresh", func() (any, error) {
		m.log.Debug("refreshing access token")
		return m.post(ctx, url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {cur.RefreshToken},
			"client_id":     {m.oauth.ClientID},
			"client_secret": {m.oauth.ClientSecret},
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*TokenSet), nil
}

// EnsureValid refreshes the stored token if it is within the refresh skew of
// expiry, and does nothing otherwise.
func (m *Manager) EnsureValid(ctx context.Context) error {
	m.mu.Lock()
	cur := m.token
	m.mu.Unlock()
	if cur == nil {
		return ErrNoToken
	}
	if !cur.Expiring(m.cfg.now()) {
		return nil
	}
	_, err := m.Refresh(ctx)
	return err
}
