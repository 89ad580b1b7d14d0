// Package config loads runtime settings from the environment.
package config

import "github.com/spf13/viper"

type Config struct {
	Addr           string
	DatabaseURL    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables (ADDR,
// DATABASE_URL, RATE_LIMIT_RPS, RATE_LIMIT_BURST) with defaults for
// everything except the database URL.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("rate_limit_burst", 20)
	v.AutomaticEnv()

	return &Config{
		Addr:           v.GetString("addr"),
		DatabaseURL:    v.GetString("database_url"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
	}, nil
}
