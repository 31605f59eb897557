package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultConfigPath = "config.toml"
	DefaultHTTPAddr   = ":8080"
	DefaultDSN        = "host=localhost user=user password=password dbname=chatsettingsdb port=5432 sslmode=disable"
	DefaultRedisAddr  = "localhost:6380"
	DefaultCacheTTL   = 24 * time.Hour
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultJWTIssuer  = "chatsettings-service"
	DefaultJWTTTL     = 72 * time.Hour
)

type Config struct {
	Log      LogConfig      `toml:"log"`
	Server   ServerConfig   `toml:"server"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
	Telegram TelegramConfig `toml:"telegram"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type PostgresConfig struct {
	DSN string `toml:"dsn"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// CacheTTL bounds how long a raw settings document stays cached.
	CacheTTL Duration `toml:"cache_ttl"`
}

type AuthConfig struct {
	JWTSecret string   `toml:"jwt_secret"`
	Issuer    string   `toml:"issuer"`
	TokenTTL  Duration `toml:"token_ttl"`
}

// TelegramConfig enables the pinned-message mirror when both fields are set.
type TelegramConfig struct {
	BotToken     string `toml:"bot_token"`
	MirrorChatID int64  `toml:"mirror_chat_id"`
}

// MirrorEnabled reports whether pinned messages should be mirrored.
func (c TelegramConfig) MirrorEnabled() bool {
	return c.BotToken != "" && c.MirrorChatID != 0
}

// Duration is a time.Duration read from a TOML string such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Server:   ServerConfig{Addr: DefaultHTTPAddr},
		Postgres: PostgresConfig{DSN: DefaultDSN},
		Redis:    RedisConfig{Addr: DefaultRedisAddr, CacheTTL: Duration{DefaultCacheTTL}},
		Auth:     AuthConfig{Issuer: DefaultJWTIssuer, TokenTTL: Duration{DefaultJWTTTL}},
	}
}

// Load builds the configuration in layers: defaults, then the TOML file at
// path (skipped when it does not exist), then variables from .env, then the
// process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", slog.Any("error", err))
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("HTTP_ADDR", &cfg.Server.Addr)
	str("DATABASE_DSN", &cfg.Postgres.DSN)
	str("REDIS_ADDR", &cfg.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Redis.Password)
	str("JWT_SECRET", &cfg.Auth.JWTSecret)
	str("TELEGRAM_BOT_TOKEN", &cfg.Telegram.BotToken)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	if v, ok := lookup("REDIS_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v, ok := lookup("TELEGRAM_MIRROR_CHAT_ID"); ok && v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TELEGRAM_MIRROR_CHAT_ID: %w", err)
		}
		cfg.Telegram.MirrorChatID = id
	}
	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
		cfg.Redis.CacheTTL = Duration{ttl}
	}
	return nil
}
