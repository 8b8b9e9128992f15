// Package config loads driver settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreBackend selects where players and matches are kept
type StoreBackend string

const (
	StoreRedis    StoreBackend = "redis"
	StoreSQLite   StoreBackend = "sqlite"
	StorePostgres StoreBackend = "postgres"
)

// Config holds every setting of the tournament driver
type Config struct {
	StoreBackend StoreBackend `env:"STORE_BACKEND" envDefault:"redis"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"tournament.db"`

	DatabaseURL     string        `env:"DATABASE_URL"`
	DatabaseTimeout time.Duration `env:"DATABASE_TIMEOUT" envDefault:"5s"`

	// DiceSeed makes a run reproducible; zero seeds from the clock
	DiceSeed    int64    `env:"DICE_SEED" envDefault:"0"`
	RoundPolicy string   `env:"ROUND_POLICY" envDefault:"floor"`
	Players     []string `env:"PLAYERS" envSeparator:"," envDefault:"Anna,Bill,Craig,Dave,Evan,Fred,Guy,Haidi,Ivan,Joe,Luke,Kaili,Matt,Neil,Oliver,Patrick,Mary"`
	MessageTone string   `env:"MESSAGE_TONE" envDefault:"neutral"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	Report Report `envPrefix:"REPORT_"`
}

// Report configures publishing of the final report. Publishing is off without a bucket.
type Report struct {
	Title           string `env:"TITLE" envDefault:"Swiss Tournament"`
	Bucket          string `env:"BUCKET"`
	Endpoint        string `env:"ENDPOINT"`
	Region          string `env:"REGION"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a report should be published
func (r Report) Enabled() bool {
	return r.Bucket != ""
}

// Load reads the given .env files, or ./.env when none are named, then parses the
// environment. Variables already set win over file values. A missing ./.env is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Players = cleanNames(cfg.Players)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that the types alone cannot
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreRedis, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.RoundPolicy {
	case "floor", "ceil":
	default:
		return fmt.Errorf("unknown ROUND_POLICY %q", c.RoundPolicy)
	}

	switch c.MessageTone {
	case "neutral", "funny", "celebration":
	default:
		return fmt.Errorf("unknown MESSAGE_TONE %q", c.MessageTone)
	}

	if c.Report.Enabled() && (c.Report.AccessKeyID == "" || c.Report.SecretAccessKey == "") {
		return fmt.Errorf("REPORT_ACCESS_KEY_ID and REPORT_SECRET_ACCESS_KEY are required when REPORT_BUCKET is set")
	}

	return nil
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
