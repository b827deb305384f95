package public

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serinuntius/gmo-coin-go/gmocoin"
)

const tickerResponseSample = `{
  "status": 0,
  "data": [
    {
      "ask": "750760",
      "bid": "750600",
      "high": "762302",
      "last": "756662",
      "low": "704874",
      "symbol": "BTC",
      "timestamp": "2018-03-30T12:34:56.789Z",
      "volume": "194785.8484"
    }
  ],
  "responsetime": "2019-03-28T09:28:07.980Z"
}`

func TestGetTicker(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a single-symbol response", func(t *testing.T) {
		client := &gmocoin.InmemClient{
			HTTPStatusCode: 200,
			BodyText:       tickerResponseSample,
		}

		resp, err := GetTicker(ctx, client, gmocoin.SymbolBTC)

		require.NoError(t, err)
		assert.Equal(t, uint16(200), resp.HTTPStatusCode)
		require.Len(t, resp.Entries(), 1)

		entry := resp.Entries()[0]
		assert.Equal(t, "BTC", entry.Symbol)
		assert.True(t, entry.Ask.Equal(decimal.RequireFromString("750760")))
		assert.True(t, entry.Bid.Equal(decimal.RequireFromString("750600")))
		assert.True(t, entry.High.Equal(decimal.RequireFromString("762302")))
		assert.True(t, entry.Last.Equal(decimal.RequireFromString("756662")))
		assert.True(t, entry.Low.Equal(decimal.RequireFromString("704874")))
		assert.Equal(t, "194785.8484", entry.Volume.String())
		assert.Equal(t, time.Date(2018, 3, 30, 12, 34, 56, 789_000_000, time.UTC),
			entry.Timestamp)
	})

	t.Run("requests the symbol in the query string", func(t *testing.T) {
		client := &gmocoin.InmemClient{
			HTTPStatusCode: 200,
			BodyText:       tickerResponseSample,
		}

		_, err := GetTicker(ctx, client, gmocoin.SymbolETHJPY)

		require.NoError(t, err)
		assert.Equal(t,
			gmocoin.PublicEndpoint+"/v1/ticker?symbol=ETH_JPY",
			client.LastURL)
	})

	t.Run("omits the symbol when querying all tickers", func(t *testing.T) {
		client := &gmocoin.InmemClient{
			HTTPStatusCode: 200,
			BodyText:       tickerResponseSample,
		}

		_, err := GetTickers(ctx, client)

		require.NoError(t, err)
		assert.Equal(t, gmocoin.PublicEndpoint+"/v1/ticker", client.LastURL)
	})

	t.Run("returns a decode error naming the bad field", func(t *testing.T) {
		client := &gmocoin.InmemClient{
			HTTPStatusCode: 200,
			BodyText: `{"status":0,"data":[{"ask":"oops","bid":"1","high":"1","last":"1",
				"low":"1","symbol":"BTC","timestamp":"2018-03-30T12:34:56.789Z","volume":"1"}],
				"responsetime":"2019-03-28T09:28:07.980Z"}`,
		}

		resp, err := GetTicker(ctx, client, gmocoin.SymbolBTC)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, gmocoin.IsDecode(err))
		assert.Contains(t, err.Error(), "ask")
	})

	t.Run("propagates transport failures", func(t *testing.T) {
		client := &gmocoin.InmemClient{ReturnError: true}

		resp, err := GetTickers(ctx, client)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, gmocoin.IsUnknown(err))
	})
}
