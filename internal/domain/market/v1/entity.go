package marketv1

import (
	"time"

	"github.com/muhammadchandra19/tradesim/pkg/errors"
)

// Side represents the side of a trade intent.
type Side string

const (
	// SideBuy represents a buy intent.
	SideBuy Side = "BUY"
	// SideSell represents a sell intent.
	SideSell Side = "SELL"
)

// TradeIntent represents a single participant's intent to trade.
// Qty is decremented in place by the matcher as partial fills occur;
// the intent leaves the book the moment Qty reaches zero.
type TradeIntent struct {
	Timestamp time.Time `json:"ts"`
	Symbol    string    `json:"symbol"`
	Side      Side      `json:"side"`
	Price     float64   `json:"price"`
	Qty       int64     `json:"qty"`
	ID        string    `json:"id"`
}

// IsBuy checks if the intent is on the buy side.
func (t *TradeIntent) IsBuy() bool {
	return t.Side == SideBuy
}

// Validate checks the intent's fields before it may enter a book.
func (t *TradeIntent) Validate() error {
	if t.Side != SideBuy && t.Side != SideSell {
		return errors.NewErrorDetails("trade intent has unknown side", string(errors.ErrUnknownSide), "side")
	}
	if t.Price <= 0 {
		return errors.NewErrorDetails("trade intent has non-positive price", string(errors.ErrInvalidPrice), "price")
	}
	if t.Qty <= 0 {
		return errors.NewErrorDetails("trade intent has non-positive quantity", string(errors.ErrInvalidQuantity), "qty")
	}
	if t.ID == "" {
		return errors.NewErrorDetails("trade intent has empty id", string(errors.GeneralValidationError), "id")
	}
	return nil
}

// MatchEvent records a completed (possibly partial) fill.
// Immutable once created, appended once per match and never revised.
type MatchEvent struct {
	Symbol    string    `json:"symbol"`
	Qty       int64     `json:"qty"`
	Price     float64   `json:"price"`
	BuyID     string    `json:"buy_id"`
	SellID    string    `json:"sell_id"`
	Timestamp time.Time `json:"ts"`
}

// Notional returns the traded value of the fill.
func (m *MatchEvent) Notional() float64 {
	return float64(m.Qty) * m.Price
}
