// internal/repository/remote/client.go
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"alcyxob/training-client/internal/repository"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 512
)

// envelope is the backend's response wrapper. Sign-in and refresh also carry a token.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Token  string          `json:"token"`
}

type reply struct {
	status      int
	body        []byte
	contentType string
}

// Client talks to the coaching backend. It attaches the bearer token from the session
// store, refreshes it once on a 401 and retries the request.
type Client struct {
	baseURL string
	version string
	http    *http.Client
	session repository.SessionStore

	refreshMu sync.Mutex
}

func NewClient(baseURL, version string, timeout time.Duration, session repository.SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		http:    &http.Client{Timeout: timeout},
		session: session,
	}
}

// path builds "/<version>/<p>"; publicPath the unauthenticated "/public/<version>/<p>".
func (c *Client) path(p string) string {
	return "/" + c.version + "/" + strings.TrimLeft(p, "/")
}

func (c *Client) publicPath(p string) string {
	return "/public" + c.path(p)
}

// call performs an authenticated JSON request and returns the decoded envelope.
func (c *Client) call(ctx context.Context, method, path string, body any) (*envelope, error) {
	r, err := c.authorized(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(method, path, r)
}

// callPublic performs a request without a bearer token and without refresh.
func (c *Client) callPublic(ctx context.Context, method, path string, body any) (*envelope, error) {
	r, err := c.roundTrip(ctx, method, path, body, "")
	if err != nil {
		return nil, err
	}
	if r.status == http.StatusUnauthorized || r.status == http.StatusForbidden {
		return nil, repository.ErrUnauthorized
	}
	return decodeEnvelope(method, path, r)
}

// authorized sends the request with the stored token; a 401 triggers one refresh and
// one retry. A refresh that fails ends in ErrAuthExpired.
func (c *Client) authorized(ctx context.Context, method, path string, body any) (*reply, error) {
	token := c.token(ctx)
	r, err := c.roundTrip(ctx, method, path, body, token)
	if err != nil || r.status != http.StatusUnauthorized {
		return r, err
	}

	if err := c.refresh(ctx, token); err != nil {
		log.Printf("WARN: Token refresh failed for %s %s: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrAuthExpired, err)
	}
	r, err = c.roundTrip(ctx, method, path, body, c.token(ctx))
	if err != nil {
		return nil, err
	}
	if r.status == http.StatusUnauthorized {
		return nil, repository.ErrAuthExpired
	}
	return r, nil
}

// refresh exchanges the token the failed request used for a new one. When another
// request refreshed in the meantime the newer token is kept.
func (c *Client) refresh(ctx context.Context, used string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if current := c.token(ctx); current != "" && current != used {
		return nil
	}
	r, err := c.roundTrip(ctx, http.MethodGet, c.path("user/refresh"), nil, used)
	if err != nil {
		return err
	}
	if r.status != http.StatusOK {
		return fmt.Errorf("refresh answered status %d", r.status)
	}
	var env envelope
	if err := json.Unmarshal(r.body, &env); err != nil || env.Token == "" {
		return errors.New("refresh answered without a token")
	}
	return c.session.Set(ctx, repository.KeyBearerToken, env.Token)
}

func (c *Client) token(ctx context.Context) string {
	token, err := c.session.Get(ctx, repository.KeyBearerToken)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: Could not read bearer token: %v", err)
		}
		return ""
	}
	return token
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, token string) (*reply, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", repository.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", repository.ErrNetwork, method, path, err)
	}
	return &reply{status: resp.StatusCode, body: raw, contentType: resp.Header.Get("Content-Type")}, nil
}

func decodeEnvelope(method, path string, r *reply) (*envelope, error) {
	if err := statusError(method, path, r); err != nil {
		return nil, err
	}
	env := &envelope{}
	if len(bytes.TrimSpace(r.body)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(r.body, env); err != nil {
		return nil, fmt.Errorf("%w: decode %s %s: %v", repository.ErrNetwork, method, path, err)
	}
	return env, nil
}

func statusError(method, path string, r *reply) error {
	switch {
	case r.status >= 200 && r.status <= 299:
		return nil
	case r.status == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", repository.ErrNotFound, method, path)
	default:
		detail := r.body
		if len(detail) > maxErrorBody {
			detail = detail[:maxErrorBody]
		}
		return fmt.Errorf("%w: %s %s answered %d %s", repository.ErrNetwork, method, path, r.status, detail)
	}
}

// decodeResult unmarshals the envelope's result into out.
func decodeResult(env *envelope, out any) error {
	if env == nil || len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%w: decode result: %v", repository.ErrNetwork, err)
	}
	return nil
}
