package public

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
)

// orderbooksPath is the order book API path.
const orderbooksPath = "/v1/orderbooks"

// OrderbookLevel is one price level of the book.
type OrderbookLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

// UnmarshalJSON decodes the wire representation, converting the
// string-encoded price and size.
func (l *OrderbookLevel) UnmarshalJSON(data []byte) error {
	var wire struct {
		Price json.RawMessage `json:"price"`
		Size  json.RawMessage `json:"size"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	price, err := gmocoin.DecimalFromJSON("price", wire.Price)
	if err != nil {
		return err
	}
	size, err := gmocoin.DecimalFromJSON("size", wire.Size)
	if err != nil {
		return err
	}

	*l = OrderbookLevel{Price: price, Size: size}
	return nil
}

// OrderbookData is the data block of an order book response. Asks are ordered
// best (lowest) first, bids best (highest) first, as the exchange returns
// them.
type OrderbookData struct {
	Symbol string           `json:"symbol"`
	Asks   []OrderbookLevel `json:"asks"`
	Bids   []OrderbookLevel `json:"bids"`
}

// Orderbooks is the decoded order book envelope.
type Orderbooks struct {
	Status       int16
	ResponseTime time.Time
	Data         OrderbookData
}

// UnmarshalJSON decodes the envelope, converting the response timestamp.
func (o *Orderbooks) UnmarshalJSON(data []byte) error {
	var wire struct {
		Status       int16         `json:"status"`
		ResponseTime string        `json:"responsetime"`
		Data         OrderbookData `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	responseTime, err := gmocoin.TimeFromString("responsetime", wire.ResponseTime)
	if err != nil {
		return err
	}

	*o = Orderbooks{
		Status:       wire.Status,
		ResponseTime: responseTime,
		Data:         wire.Data,
	}
	return nil
}

// OrderbooksResponse wraps the decoded order book envelope together with the
// HTTP status code of the call.
type OrderbooksResponse struct {
	gmocoin.RestResponse[Orderbooks]
}

// Asks returns the ask side of the book, best price first.
func (r *OrderbooksResponse) Asks() []OrderbookLevel {
	return r.Body.Data.Asks
}

// Bids returns the bid side of the book, best price first.
func (r *OrderbooksResponse) Bids() []OrderbookLevel {
	return r.Body.Data.Bids
}

// BestAsk returns the lowest ask, if the side is non-empty.
func (r *OrderbooksResponse) BestAsk() (OrderbookLevel, bool) {
	if len(r.Body.Data.Asks) == 0 {
		return OrderbookLevel{}, false
	}
	return r.Body.Data.Asks[0], true
}

// BestBid returns the highest bid, if the side is non-empty.
func (r *OrderbooksResponse) BestBid() (OrderbookLevel, bool) {
	if len(r.Body.Data.Bids) == 0 {
		return OrderbookLevel{}, false
	}
	return r.Body.Data.Bids[0], true
}

// GetOrderbooks calls the order book API for the given symbol.
func GetOrderbooks(ctx context.Context, client gmocoin.HTTPClient, symbol gmocoin.Symbol) (*OrderbooksResponse, error) {
	url := fmt.Sprintf("%s%s?symbol=%s", gmocoin.PublicEndpoint, orderbooksPath, symbol.String())

	raw, err := client.Get(ctx, url, gmocoin.EmptyHeaders())
	if err != nil {
		return nil, err
	}

	resp, err := gmocoin.ParseResponse[Orderbooks](raw)
	if err != nil {
		return nil, err
	}

	return &OrderbooksResponse{RestResponse: *resp}, nil
}
