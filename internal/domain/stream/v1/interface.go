package streamv1

import (
	"context"

	marketv1 "github.com/muhammadchandra19/tradesim/internal/domain/market/v1"
)

// TradePublisher appends trade intents to the trades stream.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=streamv1_mock
type TradePublisher interface {
	// Publish appends one trade intent and returns the log entry id.
	Publish(ctx context.Context, trade *marketv1.TradeIntent) (string, error)
}

// TradeReader tails the trades stream from a cursor forward.
type TradeReader interface {
	// ReadBatch blocks up to the configured timeout and returns the next
	// batch of decodable trade intents, empty on an idle cycle.
	ReadBatch(ctx context.Context) ([]*marketv1.TradeIntent, error)
	// Cursor returns the id of the last consumed entry.
	Cursor() string
}

// MatchPublisher appends match events to the matches stream.
type MatchPublisher interface {
	Publish(ctx context.Context, match *marketv1.MatchEvent) (string, error)
}

// MatchReader tails the matches stream from a cursor forward.
type MatchReader interface {
	ReadBatch(ctx context.Context) ([]*marketv1.MatchEvent, error)
	Cursor() string
}
