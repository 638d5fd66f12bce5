package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, windows, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Loyalty LoyaltyConfig
	Janitor JanitorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	// Empty disables startup migrations.
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
}

// JWTConfig describes tokens minted by the external identity provider.
// This service only validates; it never issues tokens.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"punchcard-identity"`
}

type LoyaltyConfig struct {
	// How long a redeemed coupon stays verifiable, measured from redemption.
	// Zero disables the window.
	VerifyWindow time.Duration `envconfig:"COUPON_VERIFY_WINDOW" default:"5m"`
}

type JanitorConfig struct {
	// Consumed QR codes older than this are purged.
	QRRetention time.Duration `envconfig:"QR_CODE_RETENTION" default:"720h"`
	Interval    time.Duration `envconfig:"JANITOR_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02T15:04:05.000Z07:00",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key",
			Issuer: "punchcard-identity",
		},
		Loyalty: LoyaltyConfig{
			VerifyWindow: 5 * time.Minute,
		},
		Janitor: JanitorConfig{
			QRRetention: 720 * time.Hour,
			Interval:    time.Hour,
		},
	}
}
