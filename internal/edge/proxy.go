// Package edge is the browser-facing proxy. It verifies session tokens
// locally, forwards accepted requests to the backend and relays the answer.
package edge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultUpstreamTimeout bounds one backend call when no timeout is configured.
const DefaultUpstreamTimeout = 10 * time.Second

var (
	// ErrUpstreamTimeout means the backend did not answer within the timeout.
	ErrUpstreamTimeout = errors.New("upstream timeout")
	// ErrUpstreamUnavailable covers every other transport failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// forwardedHeaders are copied from the browser request to the backend.
var forwardedHeaders = []string{
	"Accept",
	"Accept-Language",
	"Content-Type",
	"Cookie",
	"User-Agent",
	"X-Request-Id",
	"X-Vapi-Secret",
	"X-Vapi-Signature",
}

// Upstream describes the backend call made for one request.
type Upstream struct {
	Method string
	Path   string
	Query  string
	// Token is sent as a bearer token when not empty.
	Token string
}

// Proxy reissues requests to the backend.
type Proxy struct {
	base    *url.URL
	client  *http.Client
	timeout time.Duration
}

// NewProxy creates a Proxy for the backend at baseURL. A non-positive
// timeout falls back to DefaultUpstreamTimeout.
func NewProxy(baseURL string, timeout time.Duration, client *http.Client) (*Proxy, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("edge: invalid backend url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if client == nil {
		client = &http.Client{}
	}
	// Redirects from the backend are relayed, not followed.
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	return &Proxy{base: u, client: &c, timeout: timeout}, nil
}

// Forward sends the request body of in, with the browser headers, to the
// backend. The timeout covers the whole exchange including reading the
// response body, so the caller must close it. A deadline hit before the
// response headers arrive is ErrUpstreamTimeout.
func (p *Proxy) Forward(ctx context.Context, in *http.Request, up Upstream) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)

	target := p.base.JoinPath(up.Path)
	target.RawQuery = up.Query

	var body io.Reader
	if in.Body != nil && in.Body != http.NoBody && up.Method != http.MethodGet && up.Method != http.MethodHead {
		body = in.Body
	}

	out, err := http.NewRequestWithContext(ctx, up.Method, target.String(), body)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("edge: build request: %w", err)
	}
	out.ContentLength = in.ContentLength
	if body == nil {
		out.ContentLength = 0
	}
	for _, h := range forwardedHeaders {
		if v := in.Header.Values(h); len(v) > 0 {
			out.Header[h] = v
		}
	}
	if up.Token != "" {
		out.Header.Set("Authorization", "Bearer "+up.Token)
	}
	if ip, _, err := net.SplitHostPort(in.RemoteAddr); err == nil {
		out.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := p.client.Do(out)
	if err != nil {
		cancel()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s %s", ErrUpstreamTimeout, up.Method, up.Path)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// Ping checks that the backend answers its liveness probe.
func (p *Proxy) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base.JoinPath("/live").String(), nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: live returned %d", ErrUpstreamUnavailable, resp.StatusCode)
	}
	return nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
