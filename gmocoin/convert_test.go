package gmocoin

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64FromString(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected int64
		hasError bool
	}{
		{"positive integer", "750760", 750760, false},
		{"zero", "0", 0, false},
		{"negative integer", "-42", -42, false},
		{"not a number", "abc", 0, true},
		{"fractional", "1.5", 0, true},
		{"empty string", "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Int64FromString("price", tc.value)

			if tc.hasError {
				require.Error(t, err)
				assert.True(t, IsDecode(err))
				assert.Contains(t, err.Error(), "price")
				assert.Contains(t, err.Error(), tc.value)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestFloat64FromString(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected float64
		hasError bool
	}{
		{"fractional", "0.1", 0.1, false},
		{"integer form", "100", 100, false},
		{"zero", "0", 0, false},
		{"not a number", "abc", 0, true},
		{"empty string", "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Float64FromString("size", tc.value)

			if tc.hasError {
				require.Error(t, err)
				assert.True(t, IsDecode(err))
				assert.Contains(t, err.Error(), "size")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestDecimalFromString(t *testing.T) {
	t.Run("keeps fractional values exact", func(t *testing.T) {
		result, err := DecimalFromString("volume", "194785.8484")

		require.NoError(t, err)
		assert.Equal(t, "194785.8484", result.String())
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := DecimalFromString("volume", "a lot")

		require.Error(t, err)
		assert.True(t, IsDecode(err))
		assert.Contains(t, err.Error(), "volume")
	})
}

func TestTimeFromString(t *testing.T) {
	t.Run("parses the exchange format to UTC", func(t *testing.T) {
		result, err := TimeFromString("timestamp", "2019-03-28T09:28:07.980Z")

		require.NoError(t, err)
		assert.Equal(t, time.UTC, result.Location())
		assert.Equal(t, time.Date(2019, 3, 28, 9, 28, 7, 980_000_000, time.UTC), result)
	})

	t.Run("accepts a timestamp without a fraction", func(t *testing.T) {
		result, err := TimeFromString("timestamp", "2018-03-30T12:34:56Z")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2018, 3, 30, 12, 34, 56, 0, time.UTC), result)
	})

	t.Run("round-trips through the wire format", func(t *testing.T) {
		result, err := TimeFromString("responsetime", "2019-03-28T09:28:07.980Z")

		require.NoError(t, err)
		assert.Equal(t, "2019-03-28T09:28:07.980Z", result.Format("2006-01-02T15:04:05.000Z"))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := TimeFromString("timestamp", "28/03/2019 09:28")

		require.Error(t, err)
		assert.True(t, IsDecode(err))
		assert.Contains(t, err.Error(), "timestamp")
	})
}

func TestScalarConverters_AcceptQuotedAndBare(t *testing.T) {
	t.Run("int64 from a quoted scalar", func(t *testing.T) {
		result, err := Int64FromJSON("count", json.RawMessage(`"30"`))

		require.NoError(t, err)
		assert.Equal(t, int64(30), result)
	})

	t.Run("int64 from a bare scalar", func(t *testing.T) {
		result, err := Int64FromJSON("count", json.RawMessage(`30`))

		require.NoError(t, err)
		assert.Equal(t, int64(30), result)
	})

	t.Run("float64 from either encoding", func(t *testing.T) {
		quoted, err := Float64FromJSON("size", json.RawMessage(`"0.1"`))
		require.NoError(t, err)
		bare, err := Float64FromJSON("size", json.RawMessage(`0.1`))
		require.NoError(t, err)

		assert.Equal(t, quoted, bare)
	})

	t.Run("decimal from either encoding", func(t *testing.T) {
		quoted, err := DecimalFromJSON("ask", json.RawMessage(`"750760"`))
		require.NoError(t, err)
		bare, err := DecimalFromJSON("ask", json.RawMessage(`750760`))
		require.NoError(t, err)

		assert.True(t, quoted.Equal(bare))
	})

	t.Run("invalid scalar still names the field", func(t *testing.T) {
		_, err := Int64FromJSON("currentPage", json.RawMessage(`"abc"`))

		require.Error(t, err)
		assert.True(t, IsDecode(err))
		assert.Contains(t, err.Error(), "currentPage")
	})
}
