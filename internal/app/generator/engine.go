package generator

import (
	"context"
	"sync"
	"time"

	streamv1 "github.com/muhammadchandra19/tradesim/internal/domain/stream/v1"
	"github.com/muhammadchandra19/tradesim/internal/usecase/generator"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"go.uber.org/zap"
)

// Engine owns the generator loop: one synthesized trade intent per tick,
// appended to the trades stream.
type Engine struct {
	synthesizer *generator.Synthesizer
	publisher   streamv1.TradePublisher
	logger      *logger.Logger
	tick        time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.RWMutex
	published int64
}

// NewEngine creates a generator engine.
func NewEngine(
	synthesizer *generator.Synthesizer,
	publisher streamv1.TradePublisher,
	log *logger.Logger,
	tick time.Duration,
) *Engine {
	return &Engine{
		synthesizer: synthesizer,
		publisher:   publisher,
		logger:      log,
		tick:        tick,
	}
}

// Start launches the generator loop.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.run()

	e.logger.Info("Generator started", logger.Field{
		Key:   "tick",
		Value: e.tick,
	})

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
		e.logger.Info("Generator stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Generator stop timeout exceeded")
		return ctx.Err()
	}
}

func (e *Engine) run() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Generator shutting down", logger.Field{
				Key:   "published",
				Value: e.Published(),
			})
			return
		case now := <-ticker.C:
			trade := e.synthesizer.Next(now)

			if _, err := e.publisher.Publish(e.ctx, trade); err != nil {
				if e.ctx.Err() != nil {
					return
				}
				// A failed append means the log service is gone, there is
				// no retry loop for the generator.
				e.logger.GetZap().Fatal("Failed to append trade", zap.Error(err))
			}

			e.incPublished()
		}
	}
}

// Published returns the number of trade intents appended so far.
func (e *Engine) Published() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.published
}

func (e *Engine) incPublished() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.published++
}
