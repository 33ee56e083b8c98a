package config

import (
	"os"
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "lccollect"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/lccollect by default. The LCCOLLECT_CONFIG_DIR
// environment variable overrides the default (used by tests).
func ConfigDir(homeDir string) string {
	if dir := os.Getenv("LCCOLLECT_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/lccollect/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RegionsFilePath returns the full path to the regions.yaml file with
// market/region reference configuration.
func RegionsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "regions.yaml")
}

// IndicatorsFilePath returns the full path to the indicators.yaml file
// with wage-indicator reference configuration.
func IndicatorsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "indicators.yaml")
}
