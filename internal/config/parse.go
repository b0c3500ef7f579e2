package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Parse() (Config, error) {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres, DriverDynamo, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("storage key is empty")
	}

	if c.Assist.Attempts == 0 {
		return fmt.Errorf("assist attempts must be positive")
	}

	return nil
}
