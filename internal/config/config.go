package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the client needs to talk to the backend. It is
// loaded once and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	BaseURL         string        `mapstructure:"BASE_URL"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RefreshInterval time.Duration `mapstructure:"TOKEN_REFRESH_INTERVAL"`
	CallbackAddr    string        `mapstructure:"CALLBACK_ADDR"`
}

// Load reads configuration from an optional .env file and the environment.
// A missing file is fine; a missing BASE_URL is not.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("TOKEN_REFRESH_INTERVAL", 10*time.Minute)
	v.SetDefault("CALLBACK_ADDR", "localhost:8765")
	v.AutomaticEnv()
	// Unmarshal only sees env-backed keys that are bound or defaulted.
	for _, key := range []string{"BASE_URL", "REDIS_ADDR"} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BASE_URL is required")
	}
	return cfg, nil
}
