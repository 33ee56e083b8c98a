// Package iofs prepares the file system for the service: config and
// log directories plus default configuration files on first run.
package iofs

import (
	"os"

	"github.com/livingcost/lccollect/pkg/config"
	"github.com/livingcost/lccollect/pkg/templates"
)

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFiles writes the embedded default config.yaml,
// regions.yaml and indicators.yaml to the config directory, keeping
// any files that already exist.
func EnsureConfigFiles(homeDir string) error {
	files := []struct {
		path    string
		content string
	}{
		{config.ConfigFilePath(homeDir), templates.ConfigYAML},
		{config.RegionsFilePath(homeDir), templates.RegionsYAML},
		{config.IndicatorsFilePath(homeDir), templates.IndicatorsYAML},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return WriteFileError(f.path, err)
		}
	}

	return nil
}
