package tradestream

import (
	"context"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/muhammadchandra19/tradesim/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Publisher appends trade intents to the trades stream.
type Publisher struct {
	client redis.Client
	logger *logger.Logger
	stream string
}

// NewPublisher creates a trades stream publisher.
func NewPublisher(client redis.Client, log *logger.Logger, stream string) *Publisher {
	return &Publisher{
		client: client,
		logger: log,
		stream: stream,
	}
}

// Publish appends one trade intent and returns the log entry id.
func (p *Publisher) Publish(ctx context.Context, trade *marketv1.TradeIntent) (string, error) {
	values, err := marketv1.EncodeTrade(trade)
	if err != nil {
		return "", err
	}

	entryID, err := p.client.XAdd(ctx, &v9.XAddArgs{
		Stream: p.stream,
		Values: values,
	})
	if err != nil {
		p.logger.Error(err,
			logger.Field{Key: "action", Value: "publish_trade"},
			logger.Field{Key: "stream", Value: p.stream},
			logger.Field{Key: "tradeID", Value: trade.ID},
		)
		return "", err
	}

	return entryID, nil
}
