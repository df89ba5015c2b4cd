package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/tradesim/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig        `envPrefix:"APP_"`
	Redis      redis.Config     `envPrefix:"REDIS_"`
	Generator  GeneratorConfig  `envPrefix:"GENERATOR_"`
	Matcher    MatcherConfig    `envPrefix:"MATCHER_"`
	Aggregator AggregatorConfig `envPrefix:"AGGREGATOR_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"tradesim"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// GeneratorConfig configures the trade generator process.
type GeneratorConfig struct {
	Stream       string        `env:"STREAM" envDefault:"trades"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"10ms"`
	Sigma        float64       `env:"SIGMA" envDefault:"0.002"`
	SeedPrice    float64       `env:"SEED_PRICE" envDefault:"100.0"`
	MaxQty       int64         `env:"MAX_QTY" envDefault:"500"`
	Symbols      []string      `env:"SYMBOLS" envSeparator:"," envDefault:"AAPL,MSFT,GOOG,AMZN,META"`
}

// MatcherConfig configures the matcher process.
type MatcherConfig struct {
	InStream     string        `env:"IN_STREAM" envDefault:"trades"`
	OutStream    string        `env:"OUT_STREAM" envDefault:"matches"`
	BatchCount   int64         `env:"BATCH_COUNT" envDefault:"100"`
	BlockTimeout time.Duration `env:"BLOCK_TIMEOUT" envDefault:"500ms"`
}

// AggregatorConfig configures the KPI aggregator process.
type AggregatorConfig struct {
	InStream       string        `env:"IN_STREAM" envDefault:"matches"`
	BatchCount     int64         `env:"BATCH_COUNT" envDefault:"200"`
	BlockTimeout   time.Duration `env:"BLOCK_TIMEOUT" envDefault:"1s"`
	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"5s"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
