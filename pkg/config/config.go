package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port            string        `env:"PORT" env-default:"8080"`
	ArtBaseURL      string        `env:"ART_BASE_URL" env-default:"https://collectionapi.metmuseum.org/public/collection/v1"`
	CreatureBaseURL string        `env:"CREATURE_BASE_URL" env-default:"https://pokeapi.co/api/v2/pokemon"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	ImageCacheTTL   time.Duration `env:"IMAGE_CACHE_TTL" env-default:"1h"`
	ImageHosts      []string      `env:"IMAGE_HOSTS" env-default:"images.metmuseum.org,raw.githubusercontent.com" env-separator:","`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" env-default:"33554432"`
	WebPQuality     int           `env:"WEBP_QUALITY" env-default:"90"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
}

// keys lists every variable Load reads.
var keys = []string{
	"PORT", "ART_BASE_URL", "CREATURE_BASE_URL", "HTTP_TIMEOUT", "IMAGE_CACHE_TTL",
	"IMAGE_HOSTS", "MAX_BODY_BYTES", "WEBP_QUALITY", "LOG_LEVEL",
}

// Load reads the configuration from the environment. A .env file, if any, is
// expected to be loaded by the caller beforehand.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.WebPQuality < 1 || cfg.WebPQuality > 100 {
		return nil, fmt.Errorf("WEBP_QUALITY must be within 1..100, got %d", cfg.WebPQuality)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return &cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
