// Package auth obtains Battle.net API access tokens using the OAuth2
// client-credentials grant.
//
// A token is fetched once per run and never refreshed.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/rickgao/auction-stats/internal/model"
)

// DefaultTokenURL is the global Battle.net token endpoint.
const DefaultTokenURL = "https://oauth.battle.net/token"

const redacted = "[REDACTED]"

// Token is a bearer credential. Every printable form of a Token is
// redacted; only Header exposes the secret.
type Token struct {
	tokenType string
	secret    string
}

// NewToken builds a Token from its type (usually "Bearer") and secret.
func NewToken(tokenType, secret string) Token {
	return Token{tokenType: tokenType, secret: secret}
}

// Header returns the value for the Authorization header.
func (t Token) Header() string {
	return t.tokenType + " " + t.secret
}

// IsZero reports whether the token carries no secret.
func (t Token) IsZero() bool {
	return t.secret == ""
}

func (t Token) String() string {
	return redacted
}

func (t Token) GoString() string {
	return "auth.Token{" + redacted + "}"
}

// Format redacts the token under every fmt verb and flag.
func (t Token) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		io.WriteString(f, t.GoString())
		return
	}
	io.WriteString(f, redacted)
}

// LogValue implements slog.LogValuer.
func (t Token) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalText keeps the secret out of JSON and YAML encoders.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Provider exchanges client credentials for a Token.
type Provider struct {
	cfg        clientcredentials.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) ProviderOption {
	return func(p *Provider) {
		if u != "" {
			p.cfg.TokenURL = u
		}
	}
}

// WithHTTPClient sets the HTTP client used for the exchange.
func WithHTTPClient(hc *http.Client) ProviderOption {
	return func(p *Provider) {
		p.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a Provider for the given client credentials.
func NewProvider(clientID, clientSecret string, opts ...ProviderOption) *Provider {
	p := &Provider{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     DefaultTokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Token performs the client-credentials exchange.
func (p *Provider) Token(ctx context.Context) (Token, error) {
	if p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		return Token{}, fmt.Errorf("%w: client id and secret are required", model.ErrAuth)
	}

	p.logger.Info("authenticating", "token_url", p.cfg.TokenURL)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := p.cfg.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return Token{}, fmt.Errorf("%w: token endpoint returned %d: %w",
				model.ErrAuth, retrieveErr.Response.StatusCode, err)
		}
		return Token{}, fmt.Errorf("%w: exchange client credentials: %w", model.ErrAuth, err)
	}
	if tok.AccessToken == "" {
		return Token{}, fmt.Errorf("%w: token response has no access token", model.ErrAuth)
	}

	p.logger.Debug("authenticated",
		"token_type", tok.Type(),
		"expires_at", tok.Expiry,
	)

	return NewToken(tok.Type(), tok.AccessToken), nil
}
