package iosources

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// RegionsConfigError creates an error for when regions.yaml cannot be
// loaded or fails validation.
func RegionsConfigError(path string, err error) error {
	msg := `Cannot load regions configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Missing country_id, domain or default_currency

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to regenerate the default on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.RegionsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load regions config: %w", err),
	}
}

// IndicatorsConfigError creates an error for when indicators.yaml
// cannot be loaded or fails validation.
func IndicatorsConfigError(path string, err error) error {
	msg := `Cannot load indicators configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Missing code or source_id

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to regenerate the default on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.IndicatorsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load indicators config: %w", err),
	}
}
