package tradestream

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/muhammadchandra19/tradesim/pkg/errors"
	redis_mock "github.com/muhammadchandra19/tradesim/pkg/redis/mock"
	v9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrade() *marketv1.TradeIntent {
	return &marketv1.TradeIntent{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Symbol:    "MSFT",
		Side:      marketv1.SideSell,
		Price:     210.5,
		Qty:       25,
		ID:        "T-42",
	}
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := redis_mock.NewMockClient(ctrl)
	publisher := NewPublisher(client, newTestLogger(t), "trades")

	trade := testTrade()

	client.EXPECT().
		XAdd(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args *v9.XAddArgs) (string, error) {
			assert.Equal(t, "trades", args.Stream)

			// The appended payload must decode back into the same intent
			decoded, err := marketv1.DecodeTrade(args.Values.(map[string]any))
			require.NoError(t, err)
			assert.Equal(t, trade.ID, decoded.ID)
			assert.Equal(t, trade.Qty, decoded.Qty)
			assert.Equal(t, trade.Price, decoded.Price)
			assert.Equal(t, trade.Side, decoded.Side)

			return "7-0", nil
		})

	entryID, err := publisher.Publish(context.Background(), trade)

	require.NoError(t, err)
	assert.Equal(t, "7-0", entryID)
}

func TestPublisher_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := redis_mock.NewMockClient(ctrl)
	publisher := NewPublisher(client, newTestLogger(t), "trades")

	addErr := errors.NewErrorDetails("Failed to add entry to stream", string(errors.RedisXAddError), "xadd")
	client.EXPECT().XAdd(gomock.Any(), gomock.Any()).Return("", addErr)

	entryID, err := publisher.Publish(context.Background(), testTrade())

	assert.Error(t, err)
	assert.Empty(t, entryID)
}
