// Package ioconfig provides I/O operations for loading configuration
// from files and the environment. This is an impure package that
// handles file system and env access.
package ioconfig

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/livingcost/lccollect/pkg/config"
)

// Load reads configuration for the given home directory and returns a
// valid Config. Sources, lowest to highest precedence: built-in
// defaults, ~/.config/lccollect/config.yaml, LCCOLLECT_* environment
// variables, and finally the platform-injected DATABASE_URL and
// CANOPY_API_KEY variables.
func Load(homeDir string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Precedence: env vars > config file > defaults
	v.SetEnvPrefix("LCCOLLECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults are set BEFORE reading config so viper knows which keys
	// to check for env vars even when the file omits them.
	defaults := config.New()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("pricing.endpoint", defaults.Pricing.Endpoint)
	v.SetDefault("pricing.api_key", defaults.Pricing.APIKey)
	v.SetDefault("pricing.source_id", defaults.Pricing.SourceID)
	v.SetDefault("wages.endpoint", defaults.Wages.Endpoint)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)

	configPath := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, ConfigLoadError(configPath, err)
		}
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, ConfigLoadError(configPath, err)
	}

	// Start from defaults and apply the loaded values through Option
	// functions, so invalid values are rejected with warnings instead
	// of corrupting the config.
	cfg := config.New()
	cfg.Update(fileCfg.ToOptions())

	// Platform-injected variables win over everything else.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		opts, err := config.ParseDatabaseURL(dbURL)
		if err != nil {
			return nil, DatabaseURLError(err)
		}
		cfg.Update(opts)
	}
	if key := os.Getenv("CANOPY_API_KEY"); key != "" {
		cfg.Update([]config.Option{config.OptPricingAPIKey(key)})
	}

	return cfg, nil
}
