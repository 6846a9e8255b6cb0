package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host        string `env:"HOST"`
	Port        string `env:"PORT" envDefault:"3001"`
	CatalogFile string `env:"CATALOG_FILE"`
	CatalogDSN  string `env:"CATALOG_DSN"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	LogFile     string `env:"LOG_FILE"`
	BodyLimit   int    `env:"BODY_LIMIT" envDefault:"1048576"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] could not read .env: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = 1 << 20
	}
	return cfg, nil
}
