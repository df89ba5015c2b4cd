package aggregator

import (
	"time"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
)

// KPI holds the running totals for one symbol.
type KPI struct {
	Volume   int64
	Notional float64
}

// Accumulator keeps cumulative-since-start per-symbol KPIs plus the report
// window start time. Totals are never reset during the process lifetime;
// only the window start moves on each report, so successive snapshots are
// monotonically non-decreasing.
type Accumulator struct {
	kpis        map[string]*KPI
	windowStart time.Time
	interval    time.Duration
}

// NewAccumulator creates an empty accumulator with the window starting now.
func NewAccumulator(interval time.Duration, now time.Time) *Accumulator {
	return &Accumulator{
		kpis:        make(map[string]*KPI),
		windowStart: now,
		interval:    interval,
	}
}

// Apply adds one match event to the symbol's running totals.
func (a *Accumulator) Apply(m *marketv1.MatchEvent) {
	kpi, ok := a.kpis[m.Symbol]
	if !ok {
		kpi = &KPI{}
		a.kpis[m.Symbol] = kpi
	}
	kpi.Volume += m.Qty
	kpi.Notional += m.Notional()
}

// Symbol returns the running totals for one symbol.
func (a *Accumulator) Symbol(symbol string) KPI {
	if kpi, ok := a.kpis[symbol]; ok {
		return *kpi
	}
	return KPI{}
}

// Totals returns the cumulative volume and notional summed over all symbols.
func (a *Accumulator) Totals() (int64, float64) {
	var volume int64
	var notional float64
	for _, kpi := range a.kpis {
		volume += kpi.Volume
		notional += kpi.Notional
	}
	return volume, notional
}

// WindowExpired reports whether the report interval has elapsed since the
// window start. The timer is wall-clock driven, independent of arrivals.
func (a *Accumulator) WindowExpired(now time.Time) bool {
	return now.Sub(a.windowStart) > a.interval
}

// ResetWindow moves the window start without touching the totals.
func (a *Accumulator) ResetWindow(now time.Time) {
	a.windowStart = now
}

// WindowStart returns the current window start time.
func (a *Accumulator) WindowStart() time.Time {
	return a.windowStart
}
