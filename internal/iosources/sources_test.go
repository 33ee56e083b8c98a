package iosources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/livingcost/lccollect/internal/iosources"
	"github.com/livingcost/lccollect/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *config.Config {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv("LCCOLLECT_CONFIG_DIR", configDir)

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(configDir)})
	return cfg
}

func writeFile(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	path := filepath.Join(config.ConfigDir(cfg.HomeDir), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRegions(t *testing.T) {
	cfg := setup(t)
	writeFile(t, cfg, "regions.yaml", `
regions:
  - country_id: 1
    domain: AMAZON_COM_BR
    default_currency: BRL
  - country_id: 2
    domain: AMAZON_COM
    default_currency: USD
`)

	regions, err := iosources.New(cfg).Regions()
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "AMAZON_COM_BR", regions[0].Domain)
	assert.Equal(t, "BRL", regions[0].DefaultCurrency)
	assert.Equal(t, 2, regions[1].CountryID)
}

func TestRegionsMissingFile(t *testing.T) {
	cfg := setup(t)

	_, err := iosources.New(cfg).Regions()
	assert.Error(t, err)
}

func TestRegionsInvalid(t *testing.T) {
	cfg := setup(t)
	writeFile(t, cfg, "regions.yaml", `
regions:
  - country_id: 1
    domain: AMAZON_COM
    default_currency: dollars
`)

	_, err := iosources.New(cfg).Regions()
	assert.Error(t, err)
}

func TestIndicators(t *testing.T) {
	cfg := setup(t)
	writeFile(t, cfg, "indicators.yaml", `
indicators:
  - code: EAR_XEES_SEX_ECO_NB_M
    source_id: 1
    description: Average monthly earnings
`)

	indicators, err := iosources.New(cfg).Indicators()
	require.NoError(t, err)
	require.Len(t, indicators, 1)
	assert.Equal(t, "EAR_XEES_SEX_ECO_NB_M", indicators[0].Code)
	assert.Equal(t, 1, indicators[0].SourceID)
}

func TestIndicatorsInvalid(t *testing.T) {
	cfg := setup(t)
	writeFile(t, cfg, "indicators.yaml", `
indicators:
  - code: ""
    source_id: 1
`)

	_, err := iosources.New(cfg).Indicators()
	assert.Error(t, err)
}
