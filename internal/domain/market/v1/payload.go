package marketv1

import (
	"encoding/json"

	"github.com/muhammadchandra19/tradesim/pkg/errors"
)

// Stream payloads are a single string-valued field holding a JSON-encoded
// object, matching the log service's field-map entry shape.
const (
	// TradeField is the entry field carrying a trade intent payload.
	TradeField = "trade"
	// MatchField is the entry field carrying a match event payload.
	MatchField = "match"
)

// EncodeTrade encodes a trade intent into stream entry values.
func EncodeTrade(t *TradeIntent) (map[string]any, error) {
	buf, err := json.Marshal(t)
	if err != nil {
		return nil, errors.NewErrorDetailsWithObject("failed to encode trade intent", string(errors.PayloadEncodeError), TradeField, err)
	}
	return map[string]any{TradeField: string(buf)}, nil
}

// DecodeTrade decodes stream entry values into a trade intent.
func DecodeTrade(values map[string]any) (*TradeIntent, error) {
	raw, ok := values[TradeField].(string)
	if !ok {
		return nil, errors.NewErrorDetails("stream entry has no trade field", string(errors.PayloadDecodeError), TradeField)
	}

	var trade TradeIntent
	if err := json.Unmarshal([]byte(raw), &trade); err != nil {
		return nil, errors.NewErrorDetailsWithObject("failed to decode trade intent", string(errors.PayloadDecodeError), TradeField, err)
	}
	if err := trade.Validate(); err != nil {
		return nil, err
	}
	return &trade, nil
}

// EncodeMatch encodes a match event into stream entry values.
func EncodeMatch(m *MatchEvent) (map[string]any, error) {
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, errors.NewErrorDetailsWithObject("failed to encode match event", string(errors.PayloadEncodeError), MatchField, err)
	}
	return map[string]any{MatchField: string(buf)}, nil
}

// DecodeMatch decodes stream entry values into a match event.
func DecodeMatch(values map[string]any) (*MatchEvent, error) {
	raw, ok := values[MatchField].(string)
	if !ok {
		return nil, errors.NewErrorDetails("stream entry has no match field", string(errors.PayloadDecodeError), MatchField)
	}

	var match MatchEvent
	if err := json.Unmarshal([]byte(raw), &match); err != nil {
		return nil, errors.NewErrorDetailsWithObject("failed to decode match event", string(errors.PayloadDecodeError), MatchField, err)
	}
	if match.Qty <= 0 {
		return nil, errors.NewErrorDetails("match event has non-positive quantity", string(errors.ErrInvalidQuantity), "qty")
	}
	return &match, nil
}
