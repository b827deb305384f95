package public

import (
	"context"
	"encoding/json"
	"time"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
)

// statusPath is the exchange-status API path.
const statusPath = "/v1/status"

// Exchange status values reported by the API.
const (
	StatusOpen        = "OPEN"
	StatusPreOpen     = "PREOPEN"
	StatusMaintenance = "MAINTENANCE"
)

// StatusData is the data block of an exchange-status response.
type StatusData struct {
	Status string `json:"status"`
}

// ExchangeStatus is the decoded exchange-status envelope.
type ExchangeStatus struct {
	Status       int16
	ResponseTime time.Time
	Data         StatusData
}

// UnmarshalJSON decodes the envelope, converting the response timestamp.
func (s *ExchangeStatus) UnmarshalJSON(data []byte) error {
	var wire struct {
		Status       int16      `json:"status"`
		ResponseTime string     `json:"responsetime"`
		Data         StatusData `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	responseTime, err := gmocoin.TimeFromString("responsetime", wire.ResponseTime)
	if err != nil {
		return err
	}

	*s = ExchangeStatus{
		Status:       wire.Status,
		ResponseTime: responseTime,
		Data:         wire.Data,
	}
	return nil
}

// StatusResponse wraps the decoded exchange-status envelope together with the
// HTTP status code of the call.
type StatusResponse struct {
	gmocoin.RestResponse[ExchangeStatus]
}

// ExchangeStatus returns the reported status value (OPEN, PREOPEN, or
// MAINTENANCE).
func (r *StatusResponse) ExchangeStatus() string {
	return r.Body.Data.Status
}

// IsOpen reports whether the exchange is accepting orders.
func (r *StatusResponse) IsOpen() bool {
	return r.Body.Data.Status == StatusOpen
}

// GetStatus calls the exchange-status API.
func GetStatus(ctx context.Context, client gmocoin.HTTPClient) (*StatusResponse, error) {
	url := gmocoin.PublicEndpoint + statusPath

	raw, err := client.Get(ctx, url, gmocoin.EmptyHeaders())
	if err != nil {
		return nil, err
	}

	resp, err := gmocoin.ParseResponse[ExchangeStatus](raw)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{RestResponse: *resp}, nil
}
