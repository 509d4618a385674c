package connector

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"ctrader-openapi/transport"
)

// Credentials is the application credential file: JSON with keys clientId,
// Secret, and Host (live or demo, case-insensitive).
type Credentials struct {
	ClientID string `json:"clientId"`
	Secret   string `json:"Secret"`
	Host     string `json:"Host"`
}

// LoadCredentials reads and validates a credentials file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "connector: reading credentials")
	}
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, pkgerrors.Wrap(err, "connector: parsing credentials")
	}
	if c.ClientID == "" || c.Secret == "" {
		return nil, fmt.Errorf("connector: credentials missing clientId or Secret")
	}
	switch strings.ToLower(c.Host) {
	case "live", "demo":
	default:
		return nil, fmt.Errorf("connector: credentials Host must be live or demo, got %q", c.Host)
	}
	return &c, nil
}

// Endpoint returns the API host for the credential's environment.
func (c *Credentials) Endpoint() string {
	if strings.ToLower(c.Host) == "live" {
		return transport.LiveHost
	}
	return transport.DemoHost
}
