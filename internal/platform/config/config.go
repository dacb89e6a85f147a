package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config se carga desde env (y .env si existe).
type Config struct {
	Port string `conf:"default:8080,env:PORT"`

	// Store: memory (dev), postgres o mongo.
	Store         string `conf:"default:memory,enum:memory|postgres|mongo,env:STORE"`
	DatabaseURL   string `conf:"env:DB_DSN,noprint"`
	AutoMigrate   bool   `conf:"default:true,env:DB_AUTO_MIGRATE"`
	MongoURI      string `conf:"default:mongodb://localhost:27017,env:MONGO_URI,noprint"`
	MongoDatabase string `conf:"default:pet,env:MONGO_DATABASE"`

	UploadDir      string `conf:"default:uploads,env:UPLOAD_DIR"`
	UploadMaxBytes int64  `conf:"default:5242880,env:UPLOAD_MAX_BYTES"`

	LogLevel  string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat string `conf:"default:text,env:LOG_FORMAT"`
	AppName   string `conf:"default:pet-shelter,env:APP_NAME"`

	// Lista separada por comas; "*" permite todo.
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
	RateLimitPerMinute int    `conf:"default:300,env:RATE_LIMIT_PER_MINUTE"`

	ShutdownTimeout time.Duration `conf:"default:10s,env:SHUTDOWN_TIMEOUT"`
}

func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()

	help, err := conf.Parse("", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que los tags no pueden expresar.
func (c *Config) Validate() error {
	var errs []string

	if c.Store == StorePostgres && strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, "DB_DSN is required when STORE=postgres")
	}
	if c.Store == StoreMongo && strings.TrimSpace(c.MongoURI) == "" {
		errs = append(errs, "MONGO_URI is required when STORE=mongo")
	}
	if strings.TrimSpace(c.UploadDir) == "" {
		errs = append(errs, "UPLOAD_DIR must not be empty")
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, "UPLOAD_MAX_BYTES must be > 0")
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, "RATE_LIMIT_PER_MINUTE must be >= 0")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
}

// String imprime la config sin secretos (respeta noprint).
func (c *Config) String() string {
	out, err := conf.String(c)
	if err != nil {
		return ""
	}
	return out
}
