package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreDriver selecciona el backing store de owners.
type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StorePostgres StoreDriver = "postgres"
	StoreSQLite   StoreDriver = "sqlite"
)

// Config agrupa toda la configuración del proceso (solo env vars).
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9091"` // vacío = sin servidor de métricas

	StoreDriver StoreDriver `env:"STORE_DRIVER" envDefault:"memory"`
	DBDSN       string      `env:"DB_DSN"`
	SQLitePath  string      `env:"SQLITE_PATH" envDefault:"petclinic.db"`

	OwnerEndpointAnonymousAllowed bool `env:"OWNER_ENDPOINT_ANONYMOUS_ALLOWED" envDefault:"true"`

	// Sin secret => modo dev (X-Debug-User-ID).
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`
	AuthJWTIssuer string `env:"AUTH_JWT_ISSUER"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"petclinic"`

	OTelEndpoint    string `env:"OTEL_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"petclinic"`
}

// Load lee un .env opcional (dev local) y después las env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse solo lee env vars, sin .env.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.StoreDriver = StoreDriver(strings.ToLower(strings.TrimSpace(string(c.StoreDriver))))
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.StoreDriver == StoreSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("SQLITE_PATH is required for store driver %q", c.StoreDriver)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	return nil
}

// Addr devuelve la dirección de escucha de la API.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
