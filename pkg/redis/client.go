package redis

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/muhammadchandra19/tradesim/pkg/errors"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger *logger.Logger
	config *Config
	rdb    *redis.Client
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger *logger.Logger, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}

	if c.config.Addr == "" {
		return errors.NewErrorDetails("Redis address is empty", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	if c.config.MaxRetries < 0 {
		return errors.NewErrorDetails("Invalid Redis max retries", string(errors.RedisConfigError), "connect")
	}

	if c.config.MinRetryBackoff < 0 || c.config.MaxRetryBackoff < 0 {
		return errors.NewErrorDetails("Invalid Redis retry backoff", string(errors.RedisConfigError), "connect")
	}

	c.rdb = redis.NewClient(&redis.Options{
		Addr:            c.config.Addr,
		Username:        c.config.Username,
		Password:        c.config.Password,
		DB:              c.config.DB,
		MaxRetries:      c.config.MaxRetries,
		MinRetryBackoff: c.config.MinRetryBackoff,
		MaxRetryBackoff: c.config.MaxRetryBackoff,
		DialTimeout:     c.config.ConnectTimeout,
		WriteTimeout:    c.config.ConnectTimeout,
		PoolSize:        c.config.PoolSize,
		MinIdleConns:    c.config.MinIdleConns,
		MaxIdleConns:    c.config.MaxIdleConns,
		PoolTimeout:     c.config.PoolTimeout,

		// Blocking XREAD calls carry their own timeout, the read deadline
		// must not fire before the server-side block elapses.
		ReadTimeout: -1,
	})

	return c.rdb.Ping(ctx).Err()
}

func (c *client) Reconnect(ctx context.Context) bool {
	baseDelay := c.config.MinRetryBackoff
	maxDelay := c.config.MaxRetryBackoff

	for i := range c.config.ReconnectMaxRetries {
		backoff := min(baseDelay*time.Duration(math.Pow(2, float64(i))), maxDelay)

		jitter := time.Duration(rand.IntN(1000)) * time.Millisecond
		totalDelay := backoff + jitter

		c.logger.Info("Reconnecting to Redis", logger.Field{
			Key:   "attempt",
			Value: i + 1,
		}, logger.Field{
			Key:   "delay",
			Value: totalDelay,
		})

		select {
		case <-ctx.Done():
			c.logger.Info("Reconnect cancelled", logger.Field{
				Key:   "reason",
				Value: ctx.Err(),
			})
			return false
		case <-time.After(totalDelay):
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Connect(connectCtx)
			cancel()
			if err == nil {
				c.logger.Info("Reconnected to Redis successfully", logger.Field{
					Key:   "attempt",
					Value: i + 1,
				})
				return true
			}
			c.logger.Error(errors.TracerFromError(err), logger.Field{
				Key:   "attempt",
				Value: i + 1,
			})
		}
	}

	return false
}

func (c *client) Disconnect(ctx context.Context) error {
	if c.rdb == nil {
		return errors.NewErrorDetails("Redis client is not connected", string(errors.RedisDisconnectionError), "disconnect")
	}
	return c.rdb.Close()
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

func (c *client) XAdd(ctx context.Context, args *redis.XAddArgs) (string, error) {
	entryID, err := c.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", errors.NewErrorDetailsWithObject("Failed to add entry to stream", string(errors.RedisXAddError), "xadd", err)
	}
	return entryID, nil
}

func (c *client) XLen(ctx context.Context, stream string) (int64, error) {
	length, err := c.rdb.XLen(ctx, stream).Result()
	if err != nil {
		return 0, errors.NewErrorDetails("Failed to get stream length", string(errors.RedisXLenError), "xlen")
	}
	return length, nil
}

func (c *client) XRead(ctx context.Context, args *redis.XReadArgs) ([]redis.XStream, error) {
	streams, err := c.rdb.XRead(ctx, args).Result()
	if err == redis.Nil {
		// Block timeout elapsed with no new entries, a normal idle cycle.
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewErrorDetailsWithObject("Failed to read from stream", string(errors.RedisXReadError), "xread", err)
	}
	return streams, nil
}
