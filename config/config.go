package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Allowed CORS origins, comma separated
		AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	// Catalog configuration
	Catalog struct {
		// Path to the property seed file
		SeedPath string `env:"CATALOG_SEED_PATH" envDefault:"data/properties.json"`

		// Reload the catalog when the seed file changes on disk
		WatchSeed bool `env:"CATALOG_WATCH_SEED" envDefault:"true"`
	}

	// Storage configuration
	Storage struct {
		// Path to the sqlite database holding the persisted slots
		DBPath string `env:"STORAGE_DB_PATH" envDefault:"database/homenest.db"`
	}

	// Auth configuration
	Auth struct {
		// Password digest algorithm: "sha256" or "bcrypt"
		HashAlgorithm string `env:"HASH_ALGORITHM" envDefault:"sha256"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
