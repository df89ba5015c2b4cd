package tradestream

import (
	"context"
	"time"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/muhammadchandra19/tradesim/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// CursorLatest is the latest-cursor sentinel: a reader starting here only
// receives entries appended after it begins tailing.
const CursorLatest = "$"

// Reader tails trade intents from the trades stream.
type Reader struct {
	client redis.Client
	logger *logger.Logger
	stream string
	count  int64
	block  time.Duration
	cursor string
}

// NewReader creates a trades stream reader starting at the latest cursor.
func NewReader(client redis.Client, log *logger.Logger, stream string, count int64, block time.Duration) *Reader {
	return &Reader{
		client: client,
		logger: log,
		stream: stream,
		count:  count,
		block:  block,
		cursor: CursorLatest,
	}
}

// ReadBatch blocks up to the configured timeout and returns the next batch of
// trade intents. An idle cycle returns an empty batch and no error. Malformed
// entries are skipped and logged; the cursor still advances past them.
func (r *Reader) ReadBatch(ctx context.Context) ([]*marketv1.TradeIntent, error) {
	streams, err := r.client.XRead(ctx, &v9.XReadArgs{
		Streams: []string{r.stream, r.cursor},
		Count:   r.count,
		Block:   r.block,
	})
	if err != nil {
		return nil, err
	}
	if len(streams) == 0 {
		return nil, nil
	}

	var trades []*marketv1.TradeIntent
	for _, msg := range streams[0].Messages {
		r.cursor = msg.ID

		trade, err := marketv1.DecodeTrade(msg.Values)
		if err != nil {
			r.logger.Error(err,
				logger.Field{Key: "action", Value: "decode_trade"},
				logger.Field{Key: "stream", Value: r.stream},
				logger.Field{Key: "entryID", Value: msg.ID},
			)
			continue
		}
		trades = append(trades, trade)
	}

	return trades, nil
}

// Cursor returns the id of the last consumed entry.
func (r *Reader) Cursor() string {
	return r.cursor
}
