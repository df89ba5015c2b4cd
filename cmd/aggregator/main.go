package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	app "github.com/muhammadchandra19/tradesim/internal/app/aggregator"
	"github.com/muhammadchandra19/tradesim/internal/usecase/aggregator"
	matchstream "github.com/muhammadchandra19/tradesim/internal/usecase/match-stream"
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
		Value: "aggregator",
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

	if depth, err := rclient.XLen(ctx, cfg.Aggregator.InStream); err == nil {
		log.Info("Input stream depth at startup", logger.Field{
			Key:   "stream",
			Value: cfg.Aggregator.InStream,
		}, logger.Field{
			Key:   "depth",
			Value: depth,
		})
	}

	accumulator := aggregator.NewAccumulator(cfg.Aggregator.ReportInterval, time.Now().UTC())
	reader := matchstream.NewReader(rclient, log, cfg.Aggregator.InStream, cfg.Aggregator.BatchCount, cfg.Aggregator.BlockTimeout)
	engine := app.NewEngine(accumulator, reader, log)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_aggregator",
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
			Value: "stop_aggregator",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Aggregator shutdown complete")
}
