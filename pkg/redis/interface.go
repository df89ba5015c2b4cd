package redis

import (
	"context"

	v9 "github.com/redis/go-redis/v9"
)

// Client defines the interface for the Redis stream client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	XAdd(ctx context.Context, args *v9.XAddArgs) (string, error)
	XLen(ctx context.Context, stream string) (int64, error)
	XRead(ctx context.Context, args *v9.XReadArgs) ([]v9.XStream, error)
}
