package matcher

import (
	bookv1 "github.com/muhammadchandra19/tradesim/internal/domain/book/v1"
	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
)

// Matcher holds the two shared multi-symbol FIFO book sides and pairs
// opposing intents head-first. The book is a single buy/sell queue pair
// across all symbols, not one book per symbol; when the heads disagree on
// symbol, the longer queue is rotated once per incoming event. The rotation
// is a cheap alignment heuristic, not a correctness-preserving search, and
// can leave mismatched heads unresolved for several subsequent events.
type Matcher struct {
	buys  *bookv1.Queue
	sells *bookv1.Queue
}

// New creates a matcher with empty books.
func New() *Matcher {
	return &Matcher{
		buys:  bookv1.NewQueue(),
		sells: bookv1.NewQueue(),
	}
}

// Process enqueues one incoming intent and runs the matching loop, returning
// the match events produced in order. The incoming intent's timestamp is
// carried onto every match it triggers.
func (m *Matcher) Process(t *marketv1.TradeIntent) ([]*marketv1.MatchEvent, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if t.IsBuy() {
		m.buys.Push(t)
	} else {
		m.sells.Push(t)
	}

	var matches []*marketv1.MatchEvent
	for m.buys.Len() > 0 && m.sells.Len() > 0 {
		buy := m.buys.Peek()
		sell := m.sells.Peek()

		if buy.Symbol != sell.Symbol {
			// Alignment miss: rotate the longer queue once, then give up
			// until the next incoming event.
			if m.buys.Len() >= m.sells.Len() {
				m.buys.Rotate()
			} else {
				m.sells.Rotate()
			}
			break
		}

		qty := min(buy.Qty, sell.Qty)
		matches = append(matches, &marketv1.MatchEvent{
			Symbol:    buy.Symbol,
			Qty:       qty,
			Price:     (buy.Price + sell.Price) / 2,
			BuyID:     buy.ID,
			SellID:    sell.ID,
			Timestamp: t.Timestamp,
		})

		buy.Qty -= qty
		sell.Qty -= qty
		if buy.Qty == 0 {
			m.buys.Pop()
		}
		if sell.Qty == 0 {
			m.sells.Pop()
		}
	}

	return matches, nil
}

// BuyDepth returns the number of resting buy intents.
func (m *Matcher) BuyDepth() int {
	return m.buys.Len()
}

// SellDepth returns the number of resting sell intents.
func (m *Matcher) SellDepth() int {
	return m.sells.Len()
}

// RestingBuys returns the resting buy intents in head-to-tail order.
func (m *Matcher) RestingBuys() []*marketv1.TradeIntent {
	return m.buys.Snapshot()
}

// RestingSells returns the resting sell intents in head-to-tail order.
func (m *Matcher) RestingSells() []*marketv1.TradeIntent {
	return m.sells.Snapshot()
}
