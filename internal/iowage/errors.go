package iowage

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// ErrBadYear marks a record whose time field cannot be read as a year.
var ErrBadYear = errors.New("time field is not a year")

// FetchError creates an error for a failed indicator download.
func FetchError(indicator string, err error) error {
	msg := `Cannot reach the labor-statistics service for
indicator <em>%s</em>

<em>Possible causes:</em>
  - Service is down or unreachable
  - Request timed out (30s)

The indicator's cycle is skipped; the next scheduled run retries.`

	vars := []any{indicator}

	return &gn.Error{
		Code: errcode.WageFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to fetch indicator %s: %w",
			indicator, err),
	}
}

// FetchStatusError creates an error for a non-2xx response.
func FetchStatusError(indicator string, status int) error {
	msg := `The labor-statistics service rejected the request for
indicator <em>%s</em> with HTTP status %d`

	vars := []any{indicator, status}

	return &gn.Error{
		Code: errcode.WageFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("indicator %s: unexpected HTTP status %d",
			indicator, status),
	}
}

// DecodeError creates an error for an unparseable payload.
func DecodeError(indicator string, err error) error {
	msg := `Cannot decode the payload for indicator <em>%s</em>

The service may have changed its response format.`

	vars := []any{indicator}

	return &gn.Error{
		Code: errcode.WageDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to decode indicator %s: %w",
			indicator, err),
	}
}
