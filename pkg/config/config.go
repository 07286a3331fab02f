package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "DASHBOARD"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	PasswordSchemeSHA    = "sha256"
	PasswordSchemeArgon2 = "argon2id"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv         = "DASHBOARD_APP_ENV"
	EnvPort           = "DASHBOARD_APP_PORT"
	EnvDBDSN          = "DASHBOARD_DB_DSN"
	EnvDBHost         = "DASHBOARD_DB_HOST"
	EnvDBUser         = "DASHBOARD_DB_USER"
	EnvDBName         = "DASHBOARD_DB_NAME"
	EnvRedisURL       = "DASHBOARD_REDIS_URL"
	EnvSessionSecret  = "DASHBOARD_SESSION_SECRET"
	EnvSessionIssuer  = "DASHBOARD_SESSION_ISSUER"
	EnvPasswordScheme = "DASHBOARD_PASSWORD_SCHEME"
	EnvUseSQLite      = "DASHBOARD_USE_SQLITE"
	EnvLowStockLimit  = "DASHBOARD_LOW_STOCK_THRESHOLD"
	EnvAllowedOrigins = "DASHBOARD_CORS_ALLOWED_ORIGINS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Dashboard    DashboardConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DBDriverSQLite
		cfg.DB.DSN = cfg.FeatureFlags.SQLitePath
	} else if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Password.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string        `envconfig:"DASHBOARD_APP_ENV" required:"true"`
	Port         string        `envconfig:"DASHBOARD_APP_PORT" default:"8080"`
	LogLevel     string        `envconfig:"DASHBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool          `envconfig:"DASHBOARD_LOG_WARN_STACK" default:"false"`
	ShutdownWait time.Duration `envconfig:"DASHBOARD_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DASHBOARD_DB_DSN"`
	Driver string `envconfig:"DASHBOARD_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DASHBOARD_DB_HOST"`
	LegacyPort     int    `envconfig:"DASHBOARD_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DASHBOARD_DB_USER"`
	LegacyPassword string `envconfig:"DASHBOARD_DB_PASSWORD"`
	LegacyName     string `envconfig:"DASHBOARD_DB_NAME"`
	LegacySSLMode  string `envconfig:"DASHBOARD_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DASHBOARD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DASHBOARD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DASHBOARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DASHBOARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DASHBOARD_REDIS_URL"`
	Address      string        `envconfig:"DASHBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"DASHBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"DASHBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DASHBOARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DASHBOARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DASHBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DASHBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DASHBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig controls the signed session token and the stored session record.
// Zero values mean no expiry: a session lives until logout.
type SessionConfig struct {
	Secret            string        `envconfig:"DASHBOARD_SESSION_SECRET" required:"true"`
	Issuer            string        `envconfig:"DASHBOARD_SESSION_ISSUER" default:"dashboard"`
	ExpirationMinutes int           `envconfig:"DASHBOARD_SESSION_EXPIRATION_MINUTES" default:"0"`
	RecordTTL         time.Duration `envconfig:"DASHBOARD_SESSION_RECORD_TTL" default:"0s"`
}

// TokenTTL returns the configured token lifetime, or zero for none.
func (s SessionConfig) TokenTTL() time.Duration {
	if s.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(s.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	Scheme           string `envconfig:"DASHBOARD_PASSWORD_SCHEME" default:"sha256"`
	ArgonMemoryKB    int    `envconfig:"DASHBOARD_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int    `envconfig:"DASHBOARD_ARGON_TIME" default:"3"`
	ArgonParallelism int    `envconfig:"DASHBOARD_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int    `envconfig:"DASHBOARD_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int    `envconfig:"DASHBOARD_ARGON_KEY_LEN" default:"32"`
}

// NormalizedScheme returns the lower-cased scheme, defaulting to sha256.
func (p PasswordConfig) NormalizedScheme() string {
	scheme := strings.ToLower(strings.TrimSpace(p.Scheme))
	if scheme == "" {
		return PasswordSchemeSHA
	}
	return scheme
}

func (p PasswordConfig) validate() error {
	switch p.NormalizedScheme() {
	case PasswordSchemeSHA, PasswordSchemeArgon2:
		return nil
	}
	return fmt.Errorf("%s must be %q or %q, got %q", EnvPasswordScheme, PasswordSchemeSHA, PasswordSchemeArgon2, p.Scheme)
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"DASHBOARD_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"DASHBOARD_SQLITE_PATH" default:"dashboard.db"`
	AutoMigrate bool   `envconfig:"DASHBOARD_AUTO_MIGRATE" default:"false"`
}

type DashboardConfig struct {
	LowStockThreshold int `envconfig:"DASHBOARD_LOW_STOCK_THRESHOLD" default:"30"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DASHBOARD_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
