package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	Cloudinary   CloudinaryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// The sqlite feature flag overrides the driver choice outright.
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"YARIGA_APP_ENV" required:"true"`
	Port         string `envconfig:"YARIGA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"YARIGA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"YARIGA_LOG_WARN_STACK" default:"false"`

	// Extra allowed CORS origins on top of the built-in defaults,
	// comma separated.
	CORSOrigins []string `envconfig:"YARIGA_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"YARIGA_DB_DSN"`
	Driver string `envconfig:"YARIGA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"YARIGA_DB_HOST"`
	LegacyPort     int    `envconfig:"YARIGA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"YARIGA_DB_USER"`
	LegacyPassword string `envconfig:"YARIGA_DB_PASSWORD"`
	LegacyName     string `envconfig:"YARIGA_DB_NAME"`
	LegacySSLMode  string `envconfig:"YARIGA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"YARIGA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"YARIGA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"YARIGA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"YARIGA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"YARIGA_REDIS_URL"`
	Address      string        `envconfig:"YARIGA_REDIS_ADDR"`
	Password     string        `envconfig:"YARIGA_REDIS_PASSWORD"`
	DB           int           `envconfig:"YARIGA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"YARIGA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"YARIGA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"YARIGA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"YARIGA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"YARIGA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. Rate
// limiting is skipped when it wasn't.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	SignInWindow     time.Duration `envconfig:"YARIGA_RATE_LIMIT_SIGNIN_WINDOW" default:"1m"`
	SignInIPLimit    int           `envconfig:"YARIGA_RATE_LIMIT_SIGNIN_IP_LIMIT" default:"20"`
	SignInEmailLimit int           `envconfig:"YARIGA_RATE_LIMIT_SIGNIN_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"YARIGA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"YARIGA_AUTO_MIGRATE" default:"false"`
}

// CloudinaryConfig holds the image hosting credentials. Injected into the
// upload gateway at startup, never read from ambient globals.
type CloudinaryConfig struct {
	CloudName    string        `envconfig:"YARIGA_CLOUDINARY_CLOUD_NAME" required:"true"`
	APIKey       string        `envconfig:"YARIGA_CLOUDINARY_API_KEY" required:"true"`
	APISecret    string        `envconfig:"YARIGA_CLOUDINARY_API_SECRET" required:"true"`
	UploadFolder string        `envconfig:"YARIGA_CLOUDINARY_UPLOAD_FOLDER"`
	Timeout      time.Duration `envconfig:"YARIGA_CLOUDINARY_TIMEOUT" default:"30s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if strings.EqualFold(db.Driver, DriverSQLite) {
		db.DSN = "file:yariga.db?_fk=1"
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
