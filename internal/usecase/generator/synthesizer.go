package generator

import (
	"math"
	"math/rand/v2"
	"time"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/oklog/ulid/v2"
)

// Synthesizer produces one synthetic trade intent per tick. Prices follow a
// geometric random walk per symbol; the walk state lives only in process
// memory and restarts from the seed price on every run.
type Synthesizer struct {
	symbols []string
	sigma   float64
	maxQty  int64
	prices  map[string]float64
	rng     *rand.Rand
}

// NewSynthesizer creates a synthesizer over the given symbol universe.
// The random source is injected so tests can seed it.
func NewSynthesizer(symbols []string, sigma, seedPrice float64, maxQty int64, rng *rand.Rand) *Synthesizer {
	prices := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		prices[sym] = seedPrice
	}

	return &Synthesizer{
		symbols: symbols,
		sigma:   sigma,
		maxQty:  maxQty,
		prices:  prices,
		rng:     rng,
	}
}

// Next synthesizes the next trade intent: uniform symbol and side, one
// random-walk price step for that symbol, uniform quantity in [1, maxQty].
func (s *Synthesizer) Next(now time.Time) *marketv1.TradeIntent {
	sym := s.symbols[s.rng.IntN(len(s.symbols))]
	s.prices[sym] = s.step(s.prices[sym])

	side := marketv1.SideBuy
	if s.rng.IntN(2) == 1 {
		side = marketv1.SideSell
	}

	return &marketv1.TradeIntent{
		Timestamp: now.UTC(),
		Symbol:    sym,
		Side:      side,
		Price:     round2(s.prices[sym]),
		Qty:       s.rng.Int64N(s.maxQty) + 1,
		ID:        "T-" + ulid.Make().String(),
	}
}

// Price returns the current walk price for a symbol, unrounded.
func (s *Synthesizer) Price(symbol string) float64 {
	return s.prices[symbol]
}

// step evolves a price by multiplying with exp(N(0, sigma)).
func (s *Synthesizer) step(prev float64) float64 {
	return prev * math.Exp(s.rng.NormFloat64()*s.sigma)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
