// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"

	"github.com/livingcost/lccollect/internal/ioconfig"
	"github.com/livingcost/lccollect/pkg/config"
)

// TestDatabaseName is the database name used for all integration
// tests. This ensures tests never accidentally run against production
// databases.
const TestDatabaseName = "lccollect_test"

// GetTestConfig returns a configuration suitable for integration
// tests. It loads the standard config (from file, env or defaults) and
// overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("skipping integration test in short mode")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	cfg, err := ioconfig.Load(homeDir)
	if err != nil {
		cfg = config.New()
	}
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Always use the test database for safety.
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for
// tests that do not need the full Config struct.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
