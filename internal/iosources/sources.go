// Package iosources loads region and indicator reference
// configuration from YAML files in the config directory.
package iosources

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/config"
)

type iosources struct {
	cfg *config.Config
}

// New creates a References loader bound to the config directory
// derived from cfg.HomeDir.
func New(cfg *config.Config) collect.References {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Regions() ([]collect.Region, error) {
	path := config.RegionsFilePath(s.cfg.HomeDir)

	var doc struct {
		Regions []collect.Region `yaml:"regions"`
	}
	if err := readYAML(path, &doc); err != nil {
		return nil, RegionsConfigError(path, err)
	}
	if err := collect.ValidateRegions(doc.Regions); err != nil {
		return nil, RegionsConfigError(path, err)
	}
	return doc.Regions, nil
}

func (s *iosources) Indicators() ([]collect.Indicator, error) {
	path := config.IndicatorsFilePath(s.cfg.HomeDir)

	var doc struct {
		Indicators []collect.Indicator `yaml:"indicators"`
	}
	if err := readYAML(path, &doc); err != nil {
		return nil, IndicatorsConfigError(path, err)
	}
	if err := collect.ValidateIndicators(doc.Indicators); err != nil {
		return nil, IndicatorsConfigError(path, err)
	}
	return doc.Indicators, nil
}

func readYAML(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dest)
}
