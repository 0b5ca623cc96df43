package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Credentials are the bearer tokens issued by the booking backend.
type Credentials struct {
	Token        string
	RefreshToken string
}

// CredentialStore abstracts where tokens live (session row, memory, a test
// stub). The client reads on every request and writes after each refresh, so
// a store shared across requests keeps all of them on the newest token.
type CredentialStore interface {
	Credentials(ctx context.Context) (Credentials, error)
	SetCredentials(ctx context.Context, creds Credentials) error
	ClearCredentials(ctx context.Context) error
}

// Client talks to the booking backend REST API.
//
// Auth behavior: every request carries the stored bearer token. A 401 is
// retried exactly once after a refresh; concurrent 401s share one in-flight
// refresh rather than each calling /auth/refresh. If the refresh fails (or no
// refresh token exists) credentials are cleared and ErrSessionExpired is
// returned.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Creds      CredentialStore

	// now is swappable in tests for proactive-expiry checks.
	now func() time.Time

	refreshMu  sync.Mutex
	refreshGen uint64
}

func New(baseURL string, creds CredentialStore) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Creds:      creds,
	}
}

// do issues an authenticated JSON request, transparently refreshing the
// access token at most once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, respBody any) (int, error) {
	creds, err := c.Creds.Credentials(ctx)
	if err != nil {
		return 0, err
	}

	// Proactive refresh: don't bother sending a token we can see is dead.
	if creds.Token != "" && tokenExpired(creds.Token, c.timeNow()) {
		creds, err = c.refresh(ctx, c.generation())
		if err != nil {
			return http.StatusUnauthorized, err
		}
	}

	gen := c.generation()
	status, err := c.send(ctx, method, path, query, reqBody, respBody, creds.Token)
	if status != http.StatusUnauthorized {
		return status, err
	}

	// Single refresh-and-retry cycle.
	creds, err = c.refresh(ctx, gen)
	if err != nil {
		return http.StatusUnauthorized, err
	}
	return c.send(ctx, method, path, query, reqBody, respBody, creds.Token)
}

// doPublic issues a request without credentials (login, availability check).
func (c *Client) doPublic(ctx context.Context, method, path string, query url.Values, reqBody, respBody any) (int, error) {
	return c.send(ctx, method, path, query, reqBody, respBody, "")
}

// refresh exchanges the stored refresh token for new credentials. gen is the
// refresh generation observed before the failing request: if another caller
// has refreshed since, the stored credentials are already new and are reused
// instead of spending a second /auth/refresh call.
func (c *Client) refresh(ctx context.Context, gen uint64) (Credentials, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.refreshGen != gen {
		creds, err := c.Creds.Credentials(ctx)
		if err != nil {
			return Credentials{}, err
		}
		if creds.Token != "" {
			return creds, nil
		}
		// A concurrent refresh failed and cleared the store.
		return Credentials{}, ErrSessionExpired
	}

	creds, err := c.Creds.Credentials(ctx)
	if err != nil {
		return Credentials{}, err
	}
	if creds.RefreshToken == "" {
		_ = c.Creds.ClearCredentials(ctx)
		c.refreshGen++
		return Credentials{}, ErrSessionExpired
	}

	var resp refreshResponse
	_, err = c.send(ctx, http.MethodPost, "/auth/refresh", nil, refreshRequest{RefreshToken: creds.RefreshToken}, &resp, "")
	if err != nil || resp.Token == "" {
		_ = c.Creds.ClearCredentials(ctx)
		c.refreshGen++
		if err != nil {
			return Credentials{}, fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		return Credentials{}, ErrSessionExpired
	}

	next := Credentials{Token: resp.Token, RefreshToken: resp.RefreshToken}
	if next.RefreshToken == "" {
		// Backend rotates access tokens but may keep the refresh token.
		next.RefreshToken = creds.RefreshToken
	}
	if err := c.Creds.SetCredentials(ctx, next); err != nil {
		return Credentials{}, err
	}
	c.refreshGen++
	return next, nil
}

func (c *Client) generation() uint64 {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.refreshGen
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, reqBody, respBody any, token string) (int, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" {
		return 0, fmt.Errorf("missing backend base url")
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if len(b) > 0 {
			_ = json.Unmarshal(b, &eb)
		}
		return resp.StatusCode, eb.toAPIError(resp.StatusCode)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			// Include body for easier debugging (unexpected shape, partial responses, etc).
			return resp.StatusCode, fmt.Errorf("decode backend response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}

func (c *Client) timeNow() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
