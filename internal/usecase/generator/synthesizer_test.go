package generator

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var symbols = []string{"AAPL", "MSFT", "GOOG", "AMZN", "META"}

func newTestSynthesizer(seed uint64) *Synthesizer {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewSynthesizer(symbols, 0.002, 100.0, 500, rng)
}

func TestSynthesizer_IntentShape(t *testing.T) {
	s := newTestSynthesizer(1)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		trade := s.Next(now)

		require.NoError(t, trade.Validate())
		assert.Contains(t, symbols, trade.Symbol)
		assert.True(t, trade.Side == marketv1.SideBuy || trade.Side == marketv1.SideSell)
		assert.GreaterOrEqual(t, trade.Qty, int64(1))
		assert.LessOrEqual(t, trade.Qty, int64(500))
		assert.Equal(t, now, trade.Timestamp)

		// Price is rounded to two decimals
		assert.InDelta(t, trade.Price, math.Round(trade.Price*100)/100, 1e-9)
		assert.Positive(t, trade.Price)
	}
}

func TestSynthesizer_UniqueIDs(t *testing.T) {
	s := newTestSynthesizer(2)
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		trade := s.Next(now)
		assert.False(t, seen[trade.ID], "duplicate id %s", trade.ID)
		seen[trade.ID] = true
	}
}

func TestSynthesizer_WalkEvolvesPerSymbol(t *testing.T) {
	s := newTestSynthesizer(3)
	now := time.Now()

	for i := 0; i < 5000; i++ {
		s.Next(now)
	}

	// After enough steps every symbol should have drifted off the seed
	moved := 0
	for _, sym := range symbols {
		price := s.Price(sym)
		assert.Positive(t, price)
		if price != 100.0 {
			moved++
		}
	}
	assert.Equal(t, len(symbols), moved)
}

// A sigma of 0.002 keeps single steps small, prices stay near the seed
func TestSynthesizer_StepIsSmall(t *testing.T) {
	s := newTestSynthesizer(4)

	prev := map[string]float64{}
	for _, sym := range symbols {
		prev[sym] = s.Price(sym)
	}

	now := time.Now()
	for i := 0; i < 200; i++ {
		trade := s.Next(now)
		ratio := s.Price(trade.Symbol) / prev[trade.Symbol]
		assert.InDelta(t, 1.0, ratio, 0.05)
		prev[trade.Symbol] = s.Price(trade.Symbol)
	}
}

func TestSynthesizer_Deterministic(t *testing.T) {
	now := time.Now()

	a := newTestSynthesizer(7)
	b := newTestSynthesizer(7)

	for i := 0; i < 100; i++ {
		ta := a.Next(now)
		tb := b.Next(now)
		assert.Equal(t, ta.Symbol, tb.Symbol)
		assert.Equal(t, ta.Side, tb.Side)
		assert.Equal(t, ta.Price, tb.Price)
		assert.Equal(t, ta.Qty, tb.Qty)
	}
}
