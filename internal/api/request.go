package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rickgao/auction-stats/internal/model"
	"github.com/rickgao/auction-stats/internal/version"
)

// APIError represents a non-2xx response from the Battle.net API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("battle.net api error %d: %s", e.StatusCode, e.Message)
}

// resolve joins path to the base URL. Absolute URLs (hrefs returned by the
// API) contribute only their path and query, so the token is only ever sent
// to the configured host.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	base.Path = base.Path + ref.Path

	merged := ref.Query()
	for k, vs := range query {
		merged[k] = vs
	}
	base.RawQuery = merged.Encode()

	return base.String(), nil
}

// doRequest performs an authenticated GET and returns the response body.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL, err := c.resolve(path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Battlenet-Namespace", Namespace(c.region))
	if !c.token.IsZero() {
		req.Header.Set("Authorization", c.token.Header())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// get performs a GET request and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrTransport, err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: unmarshal response: %w", model.ErrParse, err)
	}

	return nil
}

func (c *Client) localeQuery() url.Values {
	return url.Values{"locale": []string{c.locale}}
}
