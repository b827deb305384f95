package gmocoin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// timestampFormat is the wire encoding GMO Coin uses for instants, RFC 3339
// with an optional millisecond fraction and a literal Z suffix, e.g.
// "2019-03-28T09:28:07.980Z".
const timestampFormat = "2006-01-02T15:04:05.999Z"

// Int64FromString parses a numeric string field into an int64. field names
// the JSON field for the decode error raised on invalid input.
func Int64FromString(field, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, NewDecodeError(field, fmt.Errorf("invalid integer %q: %w", value, err))
	}
	return n, nil
}

// Float64FromString parses a numeric string field into a float64.
func Float64FromString(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, NewDecodeError(field, fmt.Errorf("invalid number %q: %w", value, err))
	}
	return f, nil
}

// DecimalFromString parses a numeric string field into a decimal.Decimal for
// values where binary floating point would lose precision.
func DecimalFromString(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, NewDecodeError(field, fmt.Errorf("invalid decimal %q: %w", value, err))
	}
	return d, nil
}

// TimeFromString parses a timestamp in the exchange's wire format into a UTC
// instant.
func TimeFromString(field, value string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, value)
	if err != nil {
		return time.Time{}, NewDecodeError(field, fmt.Errorf("invalid timestamp %q: %w", value, err))
	}
	return t.UTC(), nil
}

// The API is inconsistent about quoting: some payloads carry numbers as JSON
// strings ("750760"), others as bare literals (30). The *FromJSON converters
// accept either by unquoting string scalars before parsing.

// Int64FromJSON parses a raw JSON scalar, quoted or bare, into an int64.
func Int64FromJSON(field string, raw json.RawMessage) (int64, error) {
	return Int64FromString(field, jsonScalar(raw))
}

// Float64FromJSON parses a raw JSON scalar, quoted or bare, into a float64.
func Float64FromJSON(field string, raw json.RawMessage) (float64, error) {
	return Float64FromString(field, jsonScalar(raw))
}

// DecimalFromJSON parses a raw JSON scalar, quoted or bare, into a decimal.
func DecimalFromJSON(field string, raw json.RawMessage) (decimal.Decimal, error) {
	return DecimalFromString(field, jsonScalar(raw))
}

// jsonScalar returns the string content of a raw JSON scalar, stripping the
// quoting and escapes of string literals and leaving other tokens untouched.
func jsonScalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
