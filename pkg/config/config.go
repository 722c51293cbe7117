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
	JWT          JWTConfig
	Admin        AdminConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	WhatsApp     WhatsAppConfig
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
	Env          string `envconfig:"CRAFTROOTS_APP_ENV" required:"true"`
	Port         string `envconfig:"CRAFTROOTS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CRAFTROOTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CRAFTROOTS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CRAFTROOTS_DB_DSN"`
	Driver string `envconfig:"CRAFTROOTS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CRAFTROOTS_DB_HOST"`
	LegacyPort     int    `envconfig:"CRAFTROOTS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CRAFTROOTS_DB_USER"`
	LegacyPassword string `envconfig:"CRAFTROOTS_DB_PASSWORD"`
	LegacyName     string `envconfig:"CRAFTROOTS_DB_NAME"`
	LegacySSLMode  string `envconfig:"CRAFTROOTS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CRAFTROOTS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CRAFTROOTS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CRAFTROOTS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CRAFTROOTS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CRAFTROOTS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CRAFTROOTS_REDIS_ADDR"`
	Password     string        `envconfig:"CRAFTROOTS_REDIS_PASSWORD"`
	DB           int           `envconfig:"CRAFTROOTS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CRAFTROOTS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CRAFTROOTS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CRAFTROOTS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CRAFTROOTS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CRAFTROOTS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"CRAFTROOTS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CRAFTROOTS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CRAFTROOTS_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// Expiration returns the access token TTL configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AdminConfig struct {
	PasswordHash string `envconfig:"CRAFTROOTS_ADMIN_PASSWORD_HASH" required:"true"`
	DisplayName  string `envconfig:"CRAFTROOTS_ADMIN_DISPLAY_NAME" default:"Admin"`
}

type RateLimitConfig struct {
	InquiryWindow     time.Duration `envconfig:"CRAFTROOTS_RATE_LIMIT_INQUIRY_WINDOW" default:"1m"`
	InquiryIPLimit    int           `envconfig:"CRAFTROOTS_RATE_LIMIT_INQUIRY_IP_LIMIT" default:"10"`
	InquiryPhoneLimit int           `envconfig:"CRAFTROOTS_RATE_LIMIT_INQUIRY_PHONE_LIMIT" default:"3"`
	LoginWindow       time.Duration `envconfig:"CRAFTROOTS_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit      int           `envconfig:"CRAFTROOTS_RATE_LIMIT_LOGIN_IP_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CRAFTROOTS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CRAFTROOTS_AUTO_MIGRATE" default:"false"`
}

type WhatsAppConfig struct {
	Enabled          bool          `envconfig:"CRAFTROOTS_WHATSAPP_ENABLED" default:"false"`
	BaseURL          string        `envconfig:"CRAFTROOTS_WHATSAPP_BASE_URL" default:"https://api.msg91.com/api/v5/whatsapp/whatsapp-outbound-message/bulk/"`
	AuthKey          string        `envconfig:"CRAFTROOTS_WHATSAPP_AUTH_KEY"`
	IntegratedNumber string        `envconfig:"CRAFTROOTS_WHATSAPP_INTEGRATED_NUMBER"`
	TemplateName     string        `envconfig:"CRAFTROOTS_WHATSAPP_TEMPLATE_NAME"`
	Namespace        string        `envconfig:"CRAFTROOTS_WHATSAPP_NAMESPACE"`
	UPIID            string        `envconfig:"CRAFTROOTS_WHATSAPP_UPI_ID"`
	Timeout          time.Duration `envconfig:"CRAFTROOTS_WHATSAPP_TIMEOUT" default:"10s"`
}

// Configured reports whether the credentials needed to send messages are present.
func (w WhatsAppConfig) Configured() bool {
	return w.Enabled &&
		strings.TrimSpace(w.AuthKey) != "" &&
		strings.TrimSpace(w.IntegratedNumber) != "" &&
		strings.TrimSpace(w.TemplateName) != ""
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
