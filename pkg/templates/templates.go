// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application
// configuration.
//
//go:embed config.yaml
var ConfigYAML string

// RegionsYAML contains the default regions.yaml template with the
// markets prices are collected for.
//
//go:embed regions.yaml
var RegionsYAML string

// IndicatorsYAML contains the default indicators.yaml template with
// the wage indicators to collect.
//
//go:embed indicators.yaml
var IndicatorsYAML string
