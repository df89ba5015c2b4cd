package marketv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ts = time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)

func TestTradePayload_RoundTrip(t *testing.T) {
	trade := &TradeIntent{
		Timestamp: ts,
		Symbol:    "AAPL",
		Side:      SideBuy,
		Price:     101.25,
		Qty:       42,
		ID:        "T-01JWF0",
	}

	values, err := EncodeTrade(trade)
	require.NoError(t, err)
	require.Contains(t, values, TradeField)
	assert.IsType(t, "", values[TradeField])

	decoded, err := DecodeTrade(values)
	require.NoError(t, err)
	assert.True(t, trade.Timestamp.Equal(decoded.Timestamp))
	decoded.Timestamp = trade.Timestamp
	assert.Equal(t, trade, decoded)
}

func TestDecodeTrade_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]any
	}{
		{"missing field", map[string]any{"other": "x"}},
		{"non-string field", map[string]any{TradeField: 42}},
		{"invalid json", map[string]any{TradeField: "{not json"}},
		{"zero quantity", map[string]any{TradeField: `{"ts":"2025-06-01T12:00:00Z","symbol":"AAPL","side":"BUY","price":50,"qty":0,"id":"T-1"}`}},
		{"unknown side", map[string]any{TradeField: `{"ts":"2025-06-01T12:00:00Z","symbol":"AAPL","side":"HOLD","price":50,"qty":5,"id":"T-1"}`}},
		{"negative price", map[string]any{TradeField: `{"ts":"2025-06-01T12:00:00Z","symbol":"AAPL","side":"SELL","price":-1,"qty":5,"id":"T-1"}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trade, err := DecodeTrade(tc.values)
			assert.Error(t, err)
			assert.Nil(t, trade)
		})
	}
}

func TestMatchPayload_RoundTrip(t *testing.T) {
	match := &MatchEvent{
		Symbol:    "MSFT",
		Qty:       60,
		Price:     51,
		BuyID:     "T-1",
		SellID:    "T-2",
		Timestamp: ts,
	}

	values, err := EncodeMatch(match)
	require.NoError(t, err)

	decoded, err := DecodeMatch(values)
	require.NoError(t, err)
	assert.True(t, match.Timestamp.Equal(decoded.Timestamp))
	decoded.Timestamp = match.Timestamp
	assert.Equal(t, match, decoded)
}

func TestDecodeMatch_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]any
	}{
		{"missing field", map[string]any{TradeField: "{}"}},
		{"invalid json", map[string]any{MatchField: "]["}},
		{"zero quantity", map[string]any{MatchField: `{"symbol":"AAPL","qty":0,"price":51,"buy_id":"a","sell_id":"b","ts":"2025-06-01T12:00:00Z"}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, err := DecodeMatch(tc.values)
			assert.Error(t, err)
			assert.Nil(t, match)
		})
	}
}

func TestTradeIntent_Validate(t *testing.T) {
	valid := TradeIntent{Timestamp: ts, Symbol: "AAPL", Side: SideSell, Price: 10, Qty: 1, ID: "T-1"}
	assert.NoError(t, valid.Validate())

	empty := valid
	empty.ID = ""
	assert.Error(t, empty.Validate())
}

func TestMatchEvent_Notional(t *testing.T) {
	match := MatchEvent{Qty: 60, Price: 51}
	assert.InDelta(t, 3060.0, match.Notional(), 1e-9)
}
