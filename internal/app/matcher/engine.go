package matcher

import (
	"context"
	"sync"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	streamv1 "github.com/muhammadchandra19/tradesim/internal/domain/stream/v1"
	"github.com/muhammadchandra19/tradesim/internal/usecase/matcher"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"go.uber.org/zap"
)

// Engine owns the matcher loop: tail the trades stream, feed each intent to
// the book, append the resulting matches. The book state belongs to this
// single loop and is never shared, so it needs no locking.
type Engine struct {
	matcher   *matcher.Matcher
	reader    streamv1.TradeReader
	publisher streamv1.MatchPublisher
	logger    *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.RWMutex
	totalMatches int64
}

// NewEngine creates a matcher engine.
func NewEngine(
	m *matcher.Matcher,
	reader streamv1.TradeReader,
	publisher streamv1.MatchPublisher,
	log *logger.Logger,
) *Engine {
	return &Engine{
		matcher:   m,
		reader:    reader,
		publisher: publisher,
		logger:    log,
	}
}

// Start launches the matching loop.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.run()

	e.logger.Info("Matcher started")
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
		e.logger.Info("Matcher stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Matcher stop timeout exceeded")
		return ctx.Err()
	}
}

func (e *Engine) run() {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Matcher shutting down",
				logger.Field{Key: "totalMatches", Value: e.TotalMatches()},
				logger.Field{Key: "restingBuys", Value: e.matcher.BuyDepth()},
				logger.Field{Key: "restingSells", Value: e.matcher.SellDepth()},
			)
			return
		default:
			trades, err := e.reader.ReadBatch(e.ctx)
			if err != nil {
				if e.ctx.Err() != nil {
					return
				}
				e.logger.GetZap().Fatal("Failed to read trades", zap.Error(err))
			}

			for _, trade := range trades {
				e.processTrade(trade)
			}
		}
	}
}

// processTrade runs one intent through the book and appends every match it
// produced.
func (e *Engine) processTrade(trade *marketv1.TradeIntent) {
	matches, err := e.matcher.Process(trade)
	if err != nil {
		// Invalid intents never enter the book; skip to keep the pipeline live.
		e.logger.Error(err,
			logger.Field{Key: "action", Value: "process_trade"},
			logger.Field{Key: "tradeID", Value: trade.ID},
		)
		return
	}

	for _, match := range matches {
		if _, err := e.publisher.Publish(e.ctx, match); err != nil {
			if e.ctx.Err() != nil {
				return
			}
			e.logger.GetZap().Fatal("Failed to append match", zap.Error(err))
		}

		e.logger.Debug("Match executed",
			logger.Field{Key: "symbol", Value: match.Symbol},
			logger.Field{Key: "qty", Value: match.Qty},
			logger.Field{Key: "price", Value: match.Price},
			logger.Field{Key: "buyID", Value: match.BuyID},
			logger.Field{Key: "sellID", Value: match.SellID},
		)
	}

	e.addMatches(int64(len(matches)))
}

// TotalMatches returns the number of matches appended so far.
func (e *Engine) TotalMatches() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalMatches
}

func (e *Engine) addMatches(n int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.totalMatches += n
}
