package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	SignedURL SignedURLConfig `mapstructure:"signedurl"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig contains connection options for Redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig contains S3 settings.
type StorageConfig struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// AuthConfig contains access-token validation settings.
type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	Issuer         string `mapstructure:"issuer"`
	AccessTokenTTL int    `mapstructure:"access_token_ttl_minutes"`
}

// SignedURLConfig controls signed-URL issuance and caching.
type SignedURLConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// DSN builds a lib/pq compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// TokenTTL returns the access-token lifetime as a duration.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenTTL) * time.Minute
}

// TTL returns the signed-URL lifetime as a duration.
func (s SignedURLConfig) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "careerlane")
	v.SetDefault("database.user", "careerlane")
	v.SetDefault("database.password", "careerlane")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.prefix", "uploads")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "careerlane")
	v.SetDefault("auth.access_token_ttl_minutes", 60)
	// 300s matches the lifetime of the URLs handed to browsers; the cache
	// re-validates expiry on every read so a short TTL stays safe.
	v.SetDefault("signedurl.ttl_seconds", 300)
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"api.port":                      "PORT",
		"database.host":                 "DB_HOST",
		"database.port":                 "DB_PORT",
		"database.name":                 "DB_NAME",
		"database.user":                 "DB_USER",
		"database.password":             "DB_PASS",
		"database.sslmode":              "DB_SSLMODE",
		"redis.addr":                    "REDIS_ADDR",
		"redis.password":                "REDIS_PASS",
		"redis.db":                      "REDIS_DB",
		"storage.region":                "AWS_REGION",
		"storage.bucket":                "AWS_BUCKET",
		"storage.prefix":                "AWS_PREFIX",
		"auth.jwt_secret":               "JWT_SECRET",
		"auth.issuer":                   "JWT_ISSUER",
		"auth.access_token_ttl_minutes": "JWT_TTL_MINUTES",
		"signedurl.ttl_seconds":         "SIGNED_URL_TTL_SECONDS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
		return errors.New("config: api.port out of range")
	}
	if cfg.SignedURL.TTLSeconds <= 0 {
		return errors.New("config: signedurl.ttl_seconds must be positive")
	}
	return nil
}
