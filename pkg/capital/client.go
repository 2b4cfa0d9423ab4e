// Package capital implements a client for the Capital.com REST trading API:
// session login, market search, positions and working orders.
package capital

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/betbot/gocapital/pkg/logger"
)

// Base hosts, selected by Config.UseDemo.
const (
	DemoBaseURL = "https://demo-api-capital.backend-capital.com"
	LiveBaseURL = "https://api-capital.backend-capital.com"
)

// defaultTimeout applies to every call; there are no retries.
const defaultTimeout = 15 * time.Second

// Config holds the connection settings for one account. Immutable once the
// client is constructed.
type Config struct {
	Identifier  string
	APIKey      string
	APIPassword string
	UseDemo     bool
}

// Client calls the Capital.com REST API. The two session tokens are written
// only by Login and read by every later call; the client is meant for
// single-goroutine use (guard it with a mutex if you must share it).
type Client struct {
	cfg  Config
	http *resty.Client
	log  *logrus.Entry

	cst           string
	securityToken string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the demo/live host, mainly for tests against a stub
// server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(u)
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithLogger sets the log entry the client writes under.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Client) {
		c.log = entry
	}
}

// NewClient creates a client for the environment selected by cfg.UseDemo.
func NewClient(cfg Config, opts ...Option) *Client {
	base := LiveBaseURL
	if cfg.UseDemo {
		base = DemoBaseURL
	}

	c := &Client{
		cfg: cfg,
		log: logger.WithField("component", "capital"),
	}
	c.http = resty.New().
		SetBaseURL(base).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "gocapital")

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated reports whether a login has stored both session tokens.
func (c *Client) Authenticated() bool {
	return c.cst != "" && c.securityToken != ""
}

// newRequest builds a request carrying the API key header and, once Login
// has succeeded, the two session headers. Before login the session headers
// are simply absent; the remote API rejects trading calls without them.
func (c *Client) newRequest(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	r.SetHeader(headerAPIKey, c.cfg.APIKey)
	if c.cst != "" && c.securityToken != "" {
		r.SetHeader(headerCST, c.cst)
		r.SetHeader(headerSecurityToken, c.securityToken)
	}
	return r
}

// opLog returns a log entry tagged with the operation and a short
// correlation id so one session's calls can be traced in rotated logs.
func (c *Client) opLog(op string) *logrus.Entry {
	return c.log.WithFields(logrus.Fields{"op": op, "req": uuid.NewString()[:8]})
}
