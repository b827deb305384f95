package gmocoin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// Request configuration for the production transport.
	requestTimeout = 30 * time.Second

	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// RawResponse is the boundary value passed from the transport to the decode
// layer: the HTTP status code and the full body read as text. It carries no
// identity beyond its values and is consumed exactly once.
type RawResponse struct {
	HTTPStatusCode uint16
	BodyText       string
}

// HTTPClient is the transport capability used by every API operation. The
// production Client performs real network I/O; InmemClient is a deterministic
// stand-in for tests. Implementations must translate every failure into a
// typed *Error rather than panicking or leaking foreign error types.
type HTTPClient interface {
	Get(ctx context.Context, url string, headers http.Header) (*RawResponse, error)
}

// Client is the network-backed HTTPClient.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with connection pooling and a request timeout.
// Per-call timeouts and cancellation are controlled through the context.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		},
	}
}

// NewClientWithHTTPClient creates a Client on top of a caller-supplied
// *http.Client, for callers that need their own transport configuration.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Get issues the HTTP GET and reads the status code and full body into a
// RawResponse. A URL that does not parse is reported as a transport error,
// as are connection, TLS, and read failures.
func (c *Client) Get(ctx context.Context, rawURL string, headers http.Header) (*RawResponse, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, NewTransportError("parse request url", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, NewTransportError("parse request url",
			fmt.Errorf("unsupported scheme %q in %q", parsed.Scheme, rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, NewTransportError("build request", err)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError("perform request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError("read response body", err)
	}

	return &RawResponse{
		HTTPStatusCode: uint16(resp.StatusCode),
		BodyText:       string(body),
	}, nil
}
