package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from a .env file next
// to the binary or from the environment; environment wins.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Persistence
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DataPath    string `mapstructure:"DATA_PATH"`

	// Optional advisor backend (OpenAI-compatible)
	AIAPIKey      string `mapstructure:"AI_API_KEY"`
	AIAPIEndpoint string `mapstructure:"AI_API_ENDPOINT"`
	AIModel       string `mapstructure:"AI_MODEL"`

	LogPath string `mapstructure:"LOG_PATH"`
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Load reads configuration from path/.env and the environment.
// A missing file is fine; everything has a default or comes from env.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SERVER_PORT", "8088")
	v.SetDefault("STORE_DRIVER", DriverJSON)
	v.SetDefault("DATA_PATH", "")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_API_ENDPOINT", "")
	v.SetDefault("AI_MODEL", "gpt-4o-mini")
	v.SetDefault("LOG_PATH", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
