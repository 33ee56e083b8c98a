// Package config provides configuration management for lccollect.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use LCCOLLECT_ prefix with underscores for nesting:
//
//	LCCOLLECT_DATABASE_HOST=localhost
//	LCCOLLECT_DATABASE_PORT=5432
//	LCCOLLECT_PRICING_API_KEY=xxx
//	LCCOLLECT_LOG_LEVEL=info
//
// Two variables are honored without the prefix because deployment
// platforms inject them under fixed names: DATABASE_URL (overrides all
// discrete database fields, password is percent-decoded) and
// CANOPY_API_KEY (overrides pricing.api_key).
package config

// Config represents the complete lccollect configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Pricing contains settings for the product-price GraphQL API.
	Pricing PricingConfig `mapstructure:"pricing" yaml:"pricing"`

	// Wages contains settings for the labor-statistics REST API.
	Wages WagesConfig `mapstructure:"wages" yaml:"wages"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk loads
	// into the staging table.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PricingConfig contains settings for the product-price GraphQL service.
type PricingConfig struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// APIKey authenticates requests to the pricing service.
	// Secret; normally supplied via CANOPY_API_KEY, not config.yaml.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// SourceID is the internal id of the pricing source in the
	// sources reference table.
	SourceID int `mapstructure:"source_id" yaml:"source_id"`
}

// WagesConfig contains settings for the labor-statistics REST service.
type WagesConfig struct {
	// Endpoint is the base URL of the indicator endpoint. The indicator
	// code is passed as the id query parameter.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "livingcost",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Pricing: PricingConfig{
			Endpoint: "https://graphql.canopyapi.co/",
			SourceID: 2,
		},
		Wages: WagesConfig{
			Endpoint: "https://rplumber.ilo.org/data/indicator/",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now the file is rewritten every time the service starts
			Destination: "file",
		},
	}

	return res
}
