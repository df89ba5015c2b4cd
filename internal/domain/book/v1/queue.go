package bookv1

import (
	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
)

// Queue is a FIFO sequence of resting trade intents of one side,
// regardless of symbol. Intents are appended only at the tail and removed
// only from the head, apart from Rotate which moves the head to the tail
// during symbol-alignment search.
type Queue struct {
	intents []*marketv1.TradeIntent
}

// NewQueue creates an empty book side.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of resting intents.
func (q *Queue) Len() int {
	return len(q.intents)
}

// Push appends an intent at the tail.
func (q *Queue) Push(t *marketv1.TradeIntent) {
	q.intents = append(q.intents, t)
}

// Peek returns the head intent without removing it, or nil when empty.
func (q *Queue) Peek() *marketv1.TradeIntent {
	if len(q.intents) == 0 {
		return nil
	}
	return q.intents[0]
}

// Pop removes and returns the head intent, or nil when empty.
func (q *Queue) Pop() *marketv1.TradeIntent {
	if len(q.intents) == 0 {
		return nil
	}
	head := q.intents[0]
	q.intents[0] = nil
	q.intents = q.intents[1:]
	return head
}

// Rotate moves the head intent to the tail.
func (q *Queue) Rotate() {
	if len(q.intents) < 2 {
		return
	}
	head := q.intents[0]
	copy(q.intents, q.intents[1:])
	q.intents[len(q.intents)-1] = head
}

// Snapshot returns the resting intents in head-to-tail order.
func (q *Queue) Snapshot() []*marketv1.TradeIntent {
	out := make([]*marketv1.TradeIntent, len(q.intents))
	copy(out, q.intents)
	return out
}
