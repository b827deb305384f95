// Package public implements the endpoints of the GMO Coin public API. Each
// operation builds its request URL, performs the GET through a caller-supplied
// transport, and decodes the body into a typed envelope wrapped in a
// RestResponse. Operations never retry, cache, or log; every failure is
// returned as a typed error.
package public

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
)

// tradesPath is the trade-history API path.
const tradesPath = "/v1/trades"

// Pagination defaults applied by GetTrades.
const (
	defaultTradesPage  = 1
	defaultTradesCount = 100
)

// Trade is a single execution from the trade history. Price and size arrive
// on the wire as numeric strings; the timestamp arrives in the exchange's
// format and is normalized to UTC.
type Trade struct {
	Price     int64
	Side      string
	Size      float64
	Timestamp time.Time
}

// UnmarshalJSON decodes the wire representation, converting the
// string-encoded fields. A field that fails to parse surfaces a decode error
// naming the field; values are never silently coerced to zero.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var wire struct {
		Price     json.RawMessage `json:"price"`
		Side      string          `json:"side"`
		Size      json.RawMessage `json:"size"`
		Timestamp string          `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	price, err := gmocoin.Int64FromJSON("price", wire.Price)
	if err != nil {
		return err
	}
	size, err := gmocoin.Float64FromJSON("size", wire.Size)
	if err != nil {
		return err
	}
	timestamp, err := gmocoin.TimeFromString("timestamp", wire.Timestamp)
	if err != nil {
		return err
	}

	*t = Trade{
		Price:     price,
		Side:      wire.Side,
		Size:      size,
		Timestamp: timestamp,
	}
	return nil
}

// Pagination is the page cursor block of a trade-history response.
type Pagination struct {
	CurrentPage int64
	Count       int64
}

// UnmarshalJSON decodes the wire representation; both fields may arrive as
// bare numbers or numeric strings.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var wire struct {
		CurrentPage json.RawMessage `json:"currentPage"`
		Count       json.RawMessage `json:"count"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	currentPage, err := gmocoin.Int64FromJSON("currentPage", wire.CurrentPage)
	if err != nil {
		return err
	}
	count, err := gmocoin.Int64FromJSON("count", wire.Count)
	if err != nil {
		return err
	}

	*p = Pagination{CurrentPage: currentPage, Count: count}
	return nil
}

// TradesData is the data block of a trade-history response: the executions in
// the order the exchange returned them, plus the page cursor.
type TradesData struct {
	Pagination Pagination `json:"pagination"`
	Trades     []Trade    `json:"list"`
}

// Trades is the decoded trade-history envelope. Its shape mirrors the
// documented API response exactly, including the nested field names.
type Trades struct {
	Status       int16
	ResponseTime time.Time
	Data         TradesData
}

// UnmarshalJSON decodes the envelope, converting the response timestamp.
func (t *Trades) UnmarshalJSON(data []byte) error {
	var wire struct {
		Status       int16      `json:"status"`
		ResponseTime string     `json:"responsetime"`
		Data         TradesData `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	responseTime, err := gmocoin.TimeFromString("responsetime", wire.ResponseTime)
	if err != nil {
		return err
	}

	*t = Trades{
		Status:       wire.Status,
		ResponseTime: responseTime,
		Data:         wire.Data,
	}
	return nil
}

// TradesResponse wraps the decoded trade-history envelope together with the
// HTTP status code of the call.
type TradesResponse struct {
	gmocoin.RestResponse[Trades]
}

// Trades returns the decoded executions in wire order. The returned slice is
// a read-only view of the response.
func (r *TradesResponse) Trades() []Trade {
	return r.Body.Data.Trades
}

// Pagination returns the page cursor of the response.
func (r *TradesResponse) Pagination() Pagination {
	return r.Body.Data.Pagination
}

// GetTradesWithOptions calls the trade-history API, requesting the given page
// and page size.
func GetTradesWithOptions(ctx context.Context, client gmocoin.HTTPClient, symbol gmocoin.Symbol, page, count int) (*TradesResponse, error) {
	url := fmt.Sprintf("%s%s?symbol=%s&page=%d&count=%d",
		gmocoin.PublicEndpoint, tradesPath, symbol.String(), page, count)

	raw, err := client.Get(ctx, url, gmocoin.EmptyHeaders())
	if err != nil {
		return nil, err
	}

	resp, err := gmocoin.ParseResponse[Trades](raw)
	if err != nil {
		return nil, err
	}

	return &TradesResponse{RestResponse: *resp}, nil
}

// GetTrades calls the trade-history API with the default pagination: the
// first page, 100 executions.
func GetTrades(ctx context.Context, client gmocoin.HTTPClient, symbol gmocoin.Symbol) (*TradesResponse, error) {
	return GetTradesWithOptions(ctx, client, symbol, defaultTradesPage, defaultTradesCount)
}
