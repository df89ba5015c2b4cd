package bookv1

import (
	"testing"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intent(id string) *marketv1.TradeIntent {
	return &marketv1.TradeIntent{
		ID:     id,
		Symbol: "AAPL",
		Side:   marketv1.SideBuy,
		Price:  100,
		Qty:    10,
	}
}

func TestQueue_EmptyBehavior(t *testing.T) {
	q := NewQueue()

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Peek())
	assert.Nil(t, q.Pop())

	// Rotate on empty and single-element queues is a no-op
	q.Rotate()
	assert.Equal(t, 0, q.Len())
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue()
	q.Push(intent("a"))
	q.Push(intent("b"))
	q.Push(intent("c"))

	require.Equal(t, 3, q.Len())
	assert.Equal(t, "a", q.Peek().ID)

	assert.Equal(t, "a", q.Pop().ID)
	assert.Equal(t, "b", q.Pop().ID)
	assert.Equal(t, "c", q.Pop().ID)
	assert.Nil(t, q.Pop())
}

func TestQueue_Rotate(t *testing.T) {
	q := NewQueue()
	q.Push(intent("a"))
	q.Push(intent("b"))
	q.Push(intent("c"))

	q.Rotate()

	require.Equal(t, 3, q.Len())
	assert.Equal(t, "b", q.Peek().ID)
	assert.Equal(t, []string{"b", "c", "a"}, ids(q))

	q.Rotate()
	q.Rotate()
	assert.Equal(t, []string{"a", "b", "c"}, ids(q))
}

func TestQueue_RotateSingle(t *testing.T) {
	q := NewQueue()
	q.Push(intent("a"))

	q.Rotate()

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, "a", q.Peek().ID)
}

func TestQueue_SnapshotIsCopy(t *testing.T) {
	q := NewQueue()
	q.Push(intent("a"))
	q.Push(intent("b"))

	snap := q.Snapshot()
	require.Len(t, snap, 2)

	q.Pop()
	assert.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
}

func ids(q *Queue) []string {
	var out []string
	for _, t := range q.Snapshot() {
		out = append(out, t.ID)
	}
	return out
}
