// Package gateway wraps the backend reservation API.  Every operation issues
// a single HTTP request against a fixed base URL and either returns the
// parsed JSON body (2xx) or a *FetchFailure.  There are no retries; callers
// decide how to degrade.
package gateway

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "time"

    "go.uber.org/zap"
)

// Client is the backend API client.  The zero value is not usable; construct
// with New.  A Client is safe for concurrent use by the fan-out page loads.
type Client struct {
    base  string
    http  *http.Client
    log   *zap.Logger
    cache *Cache
}

// New builds a Client for the backend at baseURL.  timeout bounds every
// request so a hung backend cannot block a page indefinitely.  cache may be
// nil, in which case the cacheable reads always hit the backend.
func New(baseURL string, timeout time.Duration, log *zap.Logger, cache *Cache) *Client {
    if log == nil {
        log = zap.NewNop()
    }
    return &Client{
        base:  baseURL,
        http:  &http.Client{Timeout: timeout},
        log:   log,
        cache: cache,
    }
}

// do performs one request and returns the raw body and status.  A transport
// failure yields a *FetchFailure with Status 0; a non-2xx response yields one
// with the status set.  bearer, when non-empty, is sent as an Authorization
// header.
func (c *Client) do(ctx context.Context, op, method, path, bearer string, payload any) ([]byte, error) {
    var body io.Reader
    if payload != nil {
        raw, err := json.Marshal(payload)
        if err != nil {
            return nil, &FetchFailure{Op: op, Err: err}
        }
        body = bytes.NewReader(raw)
    }
    req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
    if err != nil {
        return nil, &FetchFailure{Op: op, Err: err}
    }
    if payload != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    if bearer != "" {
        req.Header.Set("Authorization", "Bearer "+bearer)
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, &FetchFailure{Op: op, Err: err}
    }
    defer resp.Body.Close()
    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, &FetchFailure{Op: op, Err: err}
    }
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, &FetchFailure{Op: op, Status: resp.StatusCode}
    }
    return raw, nil
}

// getJSON fetches path and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, op, path, bearer string, out any) error {
    raw, err := c.do(ctx, op, http.MethodGet, path, bearer, nil)
    if err != nil {
        return err
    }
    if err := json.Unmarshal(raw, out); err != nil {
        return &FetchFailure{Op: op, Err: err}
    }
    return nil
}

// getJSONCached is getJSON with a read-through cache in front.  Cache misses
// and cache errors fall back to the backend; a fetched body is stored
// best-effort.
func (c *Client) getJSONCached(ctx context.Context, op, path, bearer string, out any) error {
    if c.cache == nil {
        return c.getJSON(ctx, op, path, bearer, out)
    }
    if raw, ok := c.cache.get(ctx, path); ok {
        if err := json.Unmarshal(raw, out); err == nil {
            return nil
        }
        // A corrupt entry is dropped and refetched.
        c.cache.drop(ctx, path)
    }
    raw, err := c.do(ctx, op, http.MethodGet, path, bearer, nil)
    if err != nil {
        return err
    }
    if err := json.Unmarshal(raw, out); err != nil {
        return &FetchFailure{Op: op, Err: err}
    }
    c.cache.set(ctx, path, raw)
    return nil
}
