package matchstream

import (
	"context"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/muhammadchandra19/tradesim/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Publisher appends match events to the matches stream.
type Publisher struct {
	client redis.Client
	logger *logger.Logger
	stream string
}

// NewPublisher creates a matches stream publisher.
func NewPublisher(client redis.Client, log *logger.Logger, stream string) *Publisher {
	return &Publisher{
		client: client,
		logger: log,
		stream: stream,
	}
}

// Publish appends one match event and returns the log entry id.
func (p *Publisher) Publish(ctx context.Context, match *marketv1.MatchEvent) (string, error) {
	values, err := marketv1.EncodeMatch(match)
	if err != nil {
		return "", err
	}

	entryID, err := p.client.XAdd(ctx, &v9.XAddArgs{
		Stream: p.stream,
		Values: values,
	})
	if err != nil {
		p.logger.Error(err,
			logger.Field{Key: "action", Value: "publish_match"},
			logger.Field{Key: "stream", Value: p.stream},
			logger.Field{Key: "symbol", Value: match.Symbol},
		)
		return "", err
	}

	return entryID, nil
}
