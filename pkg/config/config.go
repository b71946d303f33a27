package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "DESEMPENHO"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Traffic       TrafficConfig
	Filters       FiltersConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DESEMPENHO_APP_ENV" default:"dev"`
	Port         string `envconfig:"DESEMPENHO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DESEMPENHO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DESEMPENHO_LOG_WARN_STACK" default:"false"`
	// Timezone used for "today"/"yesterday" report boundaries.
	ReportTimezone string `envconfig:"DESEMPENHO_REPORT_TIMEZONE" default:"America/Sao_Paulo"`
	// AutoMigrate runs pending goose migrations on boot in dev.
	AutoMigrate bool `envconfig:"DESEMPENHO_APP_AUTO_MIGRATE" default:"false"`
	// CORSOrigins extends the built-in allowed origin list.
	CORSOrigins []string `envconfig:"DESEMPENHO_APP_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DESEMPENHO_DB_DSN"`
	Driver string `envconfig:"DESEMPENHO_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"DESEMPENHO_DB_HOST"`
	Port     int    `envconfig:"DESEMPENHO_DB_PORT" default:"5432"`
	User     string `envconfig:"DESEMPENHO_DB_USER"`
	Password string `envconfig:"DESEMPENHO_DB_PASSWORD"`
	Name     string `envconfig:"DESEMPENHO_DB_NAME"`
	SSLMode  string `envconfig:"DESEMPENHO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DESEMPENHO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DESEMPENHO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DESEMPENHO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DESEMPENHO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a DSN from discrete parts when one is not provided.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("db config requires either DSN or host/user/name")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"DESEMPENHO_REDIS_URL"`
	Address      string        `envconfig:"DESEMPENHO_REDIS_ADDR"`
	Password     string        `envconfig:"DESEMPENHO_REDIS_PASSWORD"`
	DB           int           `envconfig:"DESEMPENHO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DESEMPENHO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DESEMPENHO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DESEMPENHO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DESEMPENHO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DESEMPENHO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"DESEMPENHO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DESEMPENHO_JWT_ISSUER" default:"desempenho-api"`
	ExpirationMinutes int    `envconfig:"DESEMPENHO_JWT_EXPIRATION_MINUTES" default:"480"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DESEMPENHO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DESEMPENHO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DESEMPENHO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DESEMPENHO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DESEMPENHO_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"DESEMPENHO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"DESEMPENHO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"DESEMPENHO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type TrafficConfig struct {
	WebhookURL string        `envconfig:"DESEMPENHO_TRAFFIC_WEBHOOK_URL"`
	Timeout    time.Duration `envconfig:"DESEMPENHO_TRAFFIC_TIMEOUT" default:"30s"`
}

type FiltersConfig struct {
	TTL time.Duration `envconfig:"DESEMPENHO_FILTERS_TTL" default:"720h"`
}
