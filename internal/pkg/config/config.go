package config

import (
	"fmt"
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Ledger    LedgerConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the shared secret of the hosted auth provider. Tokens are
// only validated here, never issued.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER"`
	Audience string `envconfig:"JWT_AUDIENCE" default:"authenticated"`
}

type LedgerConfig struct {
	Storage                 string `envconfig:"LEDGER_STORAGE" default:"postgres"`
	DefaultPointsPerCheckIn int    `envconfig:"LEDGER_DEFAULT_POINTS_PER_CHECK_IN" default:"50"`
	SummaryCacheSize        int    `envconfig:"LEDGER_SUMMARY_CACHE_SIZE" default:"10000"`
	TxMaxRetries            int    `envconfig:"LEDGER_TX_MAX_RETRIES" default:"3"`
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Ledger.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return errs.Newf("DB_USER and DB_NAME are required when LEDGER_STORAGE=%s", StoragePostgres)
		}
	default:
		return errs.Newf("unsupported LEDGER_STORAGE %q", c.Ledger.Storage)
	}
	if c.Ledger.DefaultPointsPerCheckIn <= 0 {
		return errs.Newf("LEDGER_DEFAULT_POINTS_PER_CHECK_IN must be positive, got %d", c.Ledger.DefaultPointsPerCheckIn)
	}
	if c.Ledger.TxMaxRetries < 0 {
		return errs.Newf("LEDGER_TX_MAX_RETRIES must not be negative, got %d", c.Ledger.TxMaxRetries)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-with-enough-entropy-for-hs256",
			Audience: "authenticated",
		},
		Ledger: LedgerConfig{
			Storage:                 StoragePostgres,
			DefaultPointsPerCheckIn: 50,
			SummaryCacheSize:        1000,
			TxMaxRetries:            3,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
