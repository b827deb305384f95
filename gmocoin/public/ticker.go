package public

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
)

// tickerPath is the ticker API path.
const tickerPath = "/v1/ticker"

// TickerEntry is the 24-hour market summary for one symbol. Prices and volume
// decode to decimals so fractional quotes keep their exact value.
type TickerEntry struct {
	Ask       decimal.Decimal
	Bid       decimal.Decimal
	High      decimal.Decimal
	Last      decimal.Decimal
	Low       decimal.Decimal
	Symbol    string
	Timestamp time.Time
	Volume    decimal.Decimal
}

// UnmarshalJSON decodes the wire representation, converting the
// string-encoded numeric fields.
func (e *TickerEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		Ask       json.RawMessage `json:"ask"`
		Bid       json.RawMessage `json:"bid"`
		High      json.RawMessage `json:"high"`
		Last      json.RawMessage `json:"last"`
		Low       json.RawMessage `json:"low"`
		Symbol    string          `json:"symbol"`
		Timestamp string          `json:"timestamp"`
		Volume    json.RawMessage `json:"volume"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	entry := TickerEntry{Symbol: wire.Symbol}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *decimal.Decimal
	}{
		{"ask", wire.Ask, &entry.Ask},
		{"bid", wire.Bid, &entry.Bid},
		{"high", wire.High, &entry.High},
		{"last", wire.Last, &entry.Last},
		{"low", wire.Low, &entry.Low},
		{"volume", wire.Volume, &entry.Volume},
	}
	for _, f := range fields {
		value, err := gmocoin.DecimalFromJSON(f.name, f.raw)
		if err != nil {
			return err
		}
		*f.dst = value
	}

	timestamp, err := gmocoin.TimeFromString("timestamp", wire.Timestamp)
	if err != nil {
		return err
	}
	entry.Timestamp = timestamp

	*e = entry
	return nil
}

// Ticker is the decoded ticker envelope. The API returns one entry when a
// symbol is requested and one per listed symbol otherwise.
type Ticker struct {
	Status       int16
	ResponseTime time.Time
	Data         []TickerEntry
}

// UnmarshalJSON decodes the envelope, converting the response timestamp.
func (t *Ticker) UnmarshalJSON(data []byte) error {
	var wire struct {
		Status       int16         `json:"status"`
		ResponseTime string        `json:"responsetime"`
		Data         []TickerEntry `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	responseTime, err := gmocoin.TimeFromString("responsetime", wire.ResponseTime)
	if err != nil {
		return err
	}

	*t = Ticker{
		Status:       wire.Status,
		ResponseTime: responseTime,
		Data:         wire.Data,
	}
	return nil
}

// TickerResponse wraps the decoded ticker envelope together with the HTTP
// status code of the call.
type TickerResponse struct {
	gmocoin.RestResponse[Ticker]
}

// Entries returns the decoded ticker entries in wire order.
func (r *TickerResponse) Entries() []TickerEntry {
	return r.Body.Data
}

// GetTicker calls the ticker API for a single symbol.
func GetTicker(ctx context.Context, client gmocoin.HTTPClient, symbol gmocoin.Symbol) (*TickerResponse, error) {
	url := fmt.Sprintf("%s%s?symbol=%s", gmocoin.PublicEndpoint, tickerPath, symbol.String())
	return getTicker(ctx, client, url)
}

// GetTickers calls the ticker API for every listed symbol.
func GetTickers(ctx context.Context, client gmocoin.HTTPClient) (*TickerResponse, error) {
	return getTicker(ctx, client, gmocoin.PublicEndpoint+tickerPath)
}

func getTicker(ctx context.Context, client gmocoin.HTTPClient, url string) (*TickerResponse, error) {
	raw, err := client.Get(ctx, url, gmocoin.EmptyHeaders())
	if err != nil {
		return nil, err
	}

	resp, err := gmocoin.ParseResponse[Ticker](raw)
	if err != nil {
		return nil, err
	}

	return &TickerResponse{RestResponse: *resp}, nil
}
