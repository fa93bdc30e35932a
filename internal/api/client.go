package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rickgao/auction-stats/internal/auth"
)

// DefaultLocale is sent with requests that return localized names.
const DefaultLocale = "en_US"

// Client provides access to the Battle.net REST API.
type Client struct {
	baseURL    string
	region     string
	locale     string
	token      auth.Token
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client for region using token for every
// request.
func NewClient(region string, token auth.Token, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL(region),
		region:  region,
		locale:  DefaultLocale,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DefaultBaseURL returns the API host for region.
func DefaultBaseURL(region string) string {
	return "https://" + region + ".api.blizzard.com"
}

// Namespace returns the dynamic Classic namespace for region.
func Namespace(region string) string {
	return "dynamic-classic-" + region
}

// WithBaseURL overrides the API host.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithLocale sets the locale used for localized names.
func WithLocale(locale string) ClientOption {
	return func(c *Client) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
