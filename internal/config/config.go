package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PRINTER_SYNC"

// DevSigningKey is used when auth.signing_key is not configured.
const DevSigningKey = "printer-sync-dev-key"

type Config struct {
	Port    string
	Log     LogConfig
	DB      DBConfig
	Backend BackendConfig
	Poll    PollConfig
	Auth    AuthConfig
}

type LogConfig struct {
	Level    string
	Encoding string
}

type DBConfig struct {
	Path string
}

// BackendConfig points at the OctoPrint-compatible printer backend.
type BackendConfig struct {
	BaseURL    string
	StatusPath string
	SensorPath string
	APIKey     string
	Timeout    time.Duration
}

type PollConfig struct {
	Interval time.Duration
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("backend.base_url", "http://localhost:5000")
	v.SetDefault("backend.status_path", "/api/status")
	v.SetDefault("backend.sensor_path", "/api/sensor")
	v.SetDefault("backend.api_key", "")
	v.SetDefault("backend.timeout", 5*time.Second)
	v.SetDefault("poll.interval", 2*time.Second)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
}

// Load reads dir/.env (optional), dir/configs/config.yml (optional) and
// PRINTER_SYNC_* environment variables, in increasing priority.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(filepath.Join(dir, "configs"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Encoding: v.GetString("log.encoding"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		Backend: BackendConfig{
			BaseURL:    v.GetString("backend.base_url"),
			StatusPath: v.GetString("backend.status_path"),
			SensorPath: v.GetString("backend.sensor_path"),
			APIKey:     v.GetString("backend.api_key"),
			Timeout:    v.GetDuration("backend.timeout"),
		},
		Poll: PollConfig{Interval: v.GetDuration("poll.interval")},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("backend.base_url is required")
	}
	if c.Poll.Interval <= 0 {
		return fmt.Errorf("poll.interval must be positive, got %s", c.Poll.Interval)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	return nil
}

// UsesDevSigningKey reports whether no signing key was configured.
func (c *Config) UsesDevSigningKey() bool {
	return c.Auth.SigningKey == ""
}

// SigningKey returns the configured key or DevSigningKey.
func (c *Config) SigningKey() string {
	if c.UsesDevSigningKey() {
		return DevSigningKey
	}
	return c.Auth.SigningKey
}
