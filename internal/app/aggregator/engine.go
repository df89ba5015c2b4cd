package aggregator

import (
	"context"
	"sync"
	"time"

	streamv1 "github.com/muhammadchandra19/tradesim/internal/domain/stream/v1"
	"github.com/muhammadchandra19/tradesim/internal/usecase/aggregator"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"go.uber.org/zap"
)

// Engine owns the aggregator loop: tail the matches stream, fold every match
// into the accumulator, and log a cumulative KPI snapshot once per report
// interval. The wall-clock check runs once per polling cycle, so idle cycles
// still produce timely reports without touching the totals.
type Engine struct {
	accumulator *aggregator.Accumulator
	reader      streamv1.MatchReader
	logger      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
}

// NewEngine creates an aggregator engine.
func NewEngine(
	accumulator *aggregator.Accumulator,
	reader streamv1.MatchReader,
	log *logger.Logger,
) *Engine {
	return &Engine{
		accumulator: accumulator,
		reader:      reader,
		logger:      log,
		now:         time.Now,
	}
}

// Start launches the aggregation loop.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.run()

	e.logger.Info("Aggregator started")
	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Aggregator stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Aggregator stop timeout exceeded")
		return ctx.Err()
	}
}

func (e *Engine) run() {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			volume, notional := e.accumulator.Totals()
			e.logger.Info("Aggregator shutting down",
				logger.Field{Key: "volume", Value: volume},
				logger.Field{Key: "notional", Value: notional},
			)
			return
		default:
			matches, err := e.reader.ReadBatch(e.ctx)
			if err != nil {
				if e.ctx.Err() != nil {
					return
				}
				e.logger.GetZap().Fatal("Failed to read matches", zap.Error(err))
			}

			for _, match := range matches {
				e.accumulator.Apply(match)
			}

			e.report()
		}
	}
}

// report logs the cumulative snapshot when the window has elapsed. Only the
// window start resets; the totals keep growing for the process lifetime.
func (e *Engine) report() {
	now := e.now().UTC()
	if !e.accumulator.WindowExpired(now) {
		return
	}

	volume, notional := e.accumulator.Totals()
	e.logger.Info("KPI snapshot",
		logger.Field{Key: "windowStart", Value: e.accumulator.WindowStart()},
		logger.Field{Key: "matchedQty", Value: volume},
		logger.Field{Key: "notional", Value: notional},
	)

	e.accumulator.ResetWindow(now)
}
