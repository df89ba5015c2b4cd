package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	app "github.com/muhammadchandra19/tradesim/internal/app/generator"
	"github.com/muhammadchandra19/tradesim/internal/usecase/generator"
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
		Value: "generator",
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

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	synthesizer := generator.NewSynthesizer(
		cfg.Generator.Symbols,
		cfg.Generator.Sigma,
		cfg.Generator.SeedPrice,
		cfg.Generator.MaxQty,
		rng,
	)
	publisher := tradestream.NewPublisher(rclient, log, cfg.Generator.Stream)
	engine := app.NewEngine(synthesizer, publisher, log, cfg.Generator.TickInterval)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_generator",
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
			Value: "stop_generator",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Generator shutdown complete")
}
