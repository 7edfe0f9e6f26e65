package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"dev"`
	ServiceName     string        `env:"APP_SERVICE_NAME" envDefault:"caddyshack"`
	ServiceVersion  string        `env:"APP_SERVICE_VERSION" envDefault:"dev"`
	HTTPAddr        string        `env:"APP_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevelRaw     string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"APP_LOG_FORMAT"`
	CompressEnabled bool          `env:"APP_COMPRESS_ENABLED" envDefault:"true"`

	TrustProxyHeaders  bool     `env:"APP_TRUST_PROXY_HEADERS" envDefault:"false"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SwaggerEnabledRaw  string   `env:"SWAGGER_ENABLED"`

	StoreDriver             string `env:"STORE_DRIVER" envDefault:"memory"`
	DBURL                   string `env:"DB_URL"`
	DBDisablePreparedBinary bool   `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"true"`
	DBMaxOpenConns          int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBAutoMigrate           bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	SQLitePath              string `env:"SQLITE_PATH" envDefault:"caddyshack.db"`
	MemorySeedEnabled       bool   `env:"MEMORY_SEED_ENABLED" envDefault:"true"`

	PprofEnabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	PprofAddr    string `env:"PPROF_ADDR" envDefault:":6060"`

	UptraceEnabled bool   `env:"UPTRACE_ENABLED" envDefault:"false"`
	UptraceDSN     string `env:"UPTRACE_DSN"`

	PyroscopeEnabled           bool          `env:"PYROSCOPE_ENABLED" envDefault:"false"`
	PyroscopeServerAddress     string        `env:"PYROSCOPE_SERVER_ADDRESS"`
	PyroscopeAppName           string        `env:"PYROSCOPE_APP_NAME"`
	PyroscopeAuthToken         string        `env:"PYROSCOPE_AUTH_TOKEN"`
	PyroscopeBasicAuthUser     string        `env:"PYROSCOPE_BASIC_AUTH_USER"`
	PyroscopeBasicAuthPassword string        `env:"PYROSCOPE_BASIC_AUTH_PASSWORD"`
	PyroscopeUploadRate        time.Duration `env:"PYROSCOPE_UPLOAD_RATE" envDefault:"15s"`
	// Mutex and block profiles need runtime sampling rates set elsewhere.
	PyroscopeContentionProfiles bool `env:"PYROSCOPE_CONTENTION_PROFILES" envDefault:"false"`

	LogLevel       logging.Level `env:"-"`
	SwaggerEnabled bool          `env:"-"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	appEnv, err := parseAppEnv(c.AppEnv)
	if err != nil {
		return err
	}
	c.AppEnv = appEnv

	c.ServiceName = strings.TrimSpace(c.ServiceName)
	if c.ServiceName == "" {
		return fmt.Errorf("APP_SERVICE_NAME cannot be empty")
	}
	c.HTTPAddr = strings.TrimSpace(c.HTTPAddr)
	if c.HTTPAddr == "" {
		return fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("APP_READ_TIMEOUT must be > 0")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("APP_WRITE_TIMEOUT must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	level, err := logging.ParseLevel(c.LogLevelRaw)
	if err != nil {
		return fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = logging.FormatJSON
		if c.AppEnv == EnvDev {
			c.LogFormat = logging.FormatConsole
		}
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", c.LogFormat, logging.FormatJSON, logging.FormatConsole)
	}

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CORSAllowedOrigins = origins

	// API docs stay off in prod unless asked for.
	c.SwaggerEnabled = c.AppEnv != EnvProd
	if raw := strings.TrimSpace(c.SwaggerEnabledRaw); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
		}
		c.SwaggerEnabled = enabled
	}

	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StorePostgres:
		c.DBURL = strings.TrimSpace(c.DBURL)
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
		if c.DBMaxOpenConns < 1 {
			return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
		}
	case StoreSQLite:
		c.SQLitePath = strings.TrimSpace(c.SQLitePath)
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", StoreSQLite)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s, %s", c.StoreDriver, StorePostgres, StoreSQLite, StoreMemory)
	}

	c.PprofAddr = strings.TrimSpace(c.PprofAddr)
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	c.UptraceDSN = strings.TrimSpace(c.UptraceDSN)
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	c.PyroscopeServerAddress = strings.TrimSpace(c.PyroscopeServerAddress)
	c.PyroscopeAppName = strings.TrimSpace(c.PyroscopeAppName)
	if c.PyroscopeAppName == "" {
		c.PyroscopeAppName = c.ServiceName
	}
	if c.PyroscopeEnabled && c.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if c.PyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	return nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
