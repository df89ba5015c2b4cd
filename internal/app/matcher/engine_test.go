package matcher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	streamv1_mock "github.com/muhammadchandra19/tradesim/internal/domain/stream/v1/mock"
	"github.com/muhammadchandra19/tradesim/internal/usecase/matcher"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger()
	require.NoError(t, err)
	return log
}

func intent(id, symbol string, side marketv1.Side, price float64, qty int64) *marketv1.TradeIntent {
	return &marketv1.TradeIntent{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Symbol:    symbol,
		Side:      side,
		Price:     price,
		Qty:       qty,
		ID:        id,
	}
}

// One batch with a crossing pair produces exactly one appended match, then
// the reader goes idle until the engine stops.
func TestEngine_MatchesAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := streamv1_mock.NewMockTradeReader(ctrl)
	publisher := streamv1_mock.NewMockMatchPublisher(ctrl)

	batch := []*marketv1.TradeIntent{
		intent("T-1", "AAPL", marketv1.SideBuy, 100, 100),
		intent("T-2", "AAPL", marketv1.SideSell, 102, 60),
	}

	var delivered int32
	reader.EXPECT().
		ReadBatch(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]*marketv1.TradeIntent, error) {
			if atomic.CompareAndSwapInt32(&delivered, 0, 1) {
				return batch, nil
			}
			select {
			case <-ctx.Done():
			case <-time.After(time.Millisecond):
			}
			return nil, nil
		}).
		AnyTimes()

	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, match *marketv1.MatchEvent) (string, error) {
			assert.Equal(t, "AAPL", match.Symbol)
			assert.Equal(t, int64(60), match.Qty)
			assert.Equal(t, 101.0, match.Price)
			assert.Equal(t, "T-1", match.BuyID)
			assert.Equal(t, "T-2", match.SellID)
			return "1-0", nil
		})

	engine := NewEngine(matcher.New(), reader, publisher, newTestLogger(t))

	require.NoError(t, engine.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return engine.TotalMatches() == 1
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, engine.Stop(stopCtx))

	// The unmatched remainder rests in the book
	resting := engine.matcher.RestingBuys()
	require.Len(t, resting, 1)
	assert.Equal(t, int64(40), resting[0].Qty)
	assert.Equal(t, 0, engine.matcher.SellDepth())
}

// Intents that fail validation are skipped without touching the book or the
// matches stream.
func TestEngine_SkipsInvalidIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := streamv1_mock.NewMockTradeReader(ctrl)
	publisher := streamv1_mock.NewMockMatchPublisher(ctrl)

	bad := intent("T-1", "AAPL", "HOLD", 100, 10)

	var delivered int32
	reader.EXPECT().
		ReadBatch(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]*marketv1.TradeIntent, error) {
			if atomic.CompareAndSwapInt32(&delivered, 0, 1) {
				return []*marketv1.TradeIntent{bad}, nil
			}
			select {
			case <-ctx.Done():
			case <-time.After(time.Millisecond):
			}
			return nil, nil
		}).
		AnyTimes()

	engine := NewEngine(matcher.New(), reader, publisher, newTestLogger(t))

	require.NoError(t, engine.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, engine.Stop(stopCtx))

	assert.Equal(t, int64(0), engine.TotalMatches())
	assert.Equal(t, 0, engine.matcher.BuyDepth())
	assert.Equal(t, 0, engine.matcher.SellDepth())
}

func TestEngine_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := streamv1_mock.NewMockTradeReader(ctrl)
	publisher := streamv1_mock.NewMockMatchPublisher(ctrl)

	engine := NewEngine(matcher.New(), reader, publisher, newTestLogger(t))

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, engine.Stop(stopCtx))
}
