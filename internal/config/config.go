package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"COMMON_LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":4000"`
	// PublicBaseURL overrides the host used in payment redirect URLs;
	// empty means derive it from the incoming request.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"file"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
}

type RabbitConfig struct {
	URL string `env:"RABBIT_URL"`
}

type Config struct {
	Common   CommonConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Rabbit   RabbitConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Store.Backend {
	case "file":
	case "postgres":
		if cfg.Postgres.DSN == "" {
			return Config{}, fmt.Errorf("postgres backend selected but POSTGRES_DSN is empty")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q (want file or postgres)", cfg.Store.Backend)
	}
	return cfg, nil
}
