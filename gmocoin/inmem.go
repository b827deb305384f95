package gmocoin

import (
	"context"
	"net/http"
)

// InmemClient is a deterministic HTTPClient for tests. It returns the
// configured status code and body text on every call regardless of the
// requested URL, and performs no I/O. When ReturnError is set, every call
// returns the opaque unknown error instead of a response.
type InmemClient struct {
	HTTPStatusCode uint16
	BodyText       string
	ReturnError    bool

	// LastURL records the most recent request URL so tests can assert on
	// the query string the caller built. It does not influence the result.
	LastURL string
}

// Get implements HTTPClient.
func (c *InmemClient) Get(_ context.Context, url string, _ http.Header) (*RawResponse, error) {
	c.LastURL = url

	if c.ReturnError {
		return nil, NewUnknownError()
	}

	return &RawResponse{
		HTTPStatusCode: c.HTTPStatusCode,
		BodyText:       c.BodyText,
	}, nil
}
