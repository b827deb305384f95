package gmocoin

import (
	"encoding/json"
	"errors"
)

// RestResponse pairs the HTTP status code of a completed call with its decoded
// body. It is constructed once per call from a successful decode and is
// read-only thereafter.
type RestResponse[T any] struct {
	HTTPStatusCode uint16
	Body           T
}

// ParseResponse decodes the raw body text into the typed envelope T. Field
// converter failures raised inside custom unmarshalers are surfaced as-is so
// the offending field stays visible; any other JSON failure is wrapped as a
// document-level decode error.
func ParseResponse[T any](raw *RawResponse) (*RestResponse[T], error) {
	var body T
	if err := json.Unmarshal([]byte(raw.BodyText), &body); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, NewDecodeError("", err)
	}

	return &RestResponse[T]{
		HTTPStatusCode: raw.HTTPStatusCode,
		Body:           body,
	}, nil
}
