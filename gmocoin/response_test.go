package gmocoin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeEnvelope struct {
	Status int16  `json:"status"`
	Note   string `json:"note"`
}

func TestParseResponse(t *testing.T) {
	t.Run("decodes a matching body and keeps the status code", func(t *testing.T) {
		raw := &RawResponse{
			HTTPStatusCode: 200,
			BodyText:       `{"status":0,"note":"ok"}`,
		}

		resp, err := ParseResponse[probeEnvelope](raw)

		require.NoError(t, err)
		assert.Equal(t, uint16(200), resp.HTTPStatusCode)
		assert.Equal(t, int16(0), resp.Body.Status)
		assert.Equal(t, "ok", resp.Body.Note)
	})

	t.Run("reports malformed JSON as a decode error", func(t *testing.T) {
		raw := &RawResponse{HTTPStatusCode: 200, BodyText: `{"status":`}

		resp, err := ParseResponse[probeEnvelope](raw)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, IsDecode(err))
		assert.False(t, IsTransport(err))
	})

	t.Run("reports shape mismatches as decode errors", func(t *testing.T) {
		raw := &RawResponse{HTTPStatusCode: 200, BodyText: `{"status":"not a number"}`}

		resp, err := ParseResponse[probeEnvelope](raw)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, IsDecode(err))
	})

	t.Run("keeps field-level converter errors intact", func(t *testing.T) {
		fieldErr := NewDecodeError("price", errors.New("invalid integer"))
		raw := &RawResponse{HTTPStatusCode: 200, BodyText: `{"status":0}`}

		// Simulate what a custom unmarshaler surfaces through json.Unmarshal.
		var apiErr *Error
		require.True(t, errors.As(fieldErr, &apiErr))
		assert.Equal(t, "price", apiErr.Field)

		// Document-level failures carry no field.
		_, err := ParseResponse[probeEnvelope](&RawResponse{
			HTTPStatusCode: raw.HTTPStatusCode,
			BodyText:       "not json",
		})
		require.Error(t, err)
		require.True(t, errors.As(err, &apiErr))
		assert.Empty(t, apiErr.Field)
	})
}
