package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	app "github.com/muhammadchandra19/tradesim/internal/app/matcher"
	matchstream "github.com/muhammadchandra19/tradesim/internal/usecase/match-stream"
	"github.com/muhammadchandra19/tradesim/internal/usecase/matcher"
	tradestream "github.com/muhammadchandra19/tradesim/internal/usecase/trade-stream"
	"github.com/muhammadchandra19/tradesim/pkg/config"
	"github.com/muhammadchandra19/tradesim/pkg/logger"
	"github.com/muhammadchandra19/tradesim/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		panic(err)
	}

	log = l.WithFields(logger.Field{
		Key:   "service",
		Value: "matcher",
	}, logger.Field{
		Key:   "instanceID",
		Value: uuid.NewString(),
	})
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	if depth, err := rclient.XLen(ctx, cfg.Matcher.InStream); err == nil {
		log.Info("Input stream depth at startup", logger.Field{
			Key:   "stream",
			Value: cfg.Matcher.InStream,
		}, logger.Field{
			Key:   "depth",
			Value: depth,
		})
	}

	reader := tradestream.NewReader(rclient, log, cfg.Matcher.InStream, cfg.Matcher.BatchCount, cfg.Matcher.BlockTimeout)
	publisher := matchstream.NewPublisher(rclient, log, cfg.Matcher.OutStream)
	engine := app.NewEngine(matcher.New(), reader, publisher, log)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_matcher",
		})
		return
	}

	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_matcher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Matcher shutdown complete")
}
