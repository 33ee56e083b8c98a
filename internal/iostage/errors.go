package iostage

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// TruncateError creates an error for a failed staging truncate.
func TruncateError(err error) error {
	msg := `Cannot truncate the wage staging table

<em>Possible causes:</em>
  - Table does not exist (run <em>lccollect migrate</em>)
  - Insufficient database privileges`

	return &gn.Error{
		Code: errcode.StagingTruncateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to truncate staging_wages: %w", err),
	}
}

// LoadError creates an error for a failed staging bulk load.
func LoadError(err error) error {
	msg := `Cannot bulk-load wage rows into the staging table

The whole batch was rolled back; the staging table is unchanged.`

	return &gn.Error{
		Code: errcode.StagingLoadError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to load staging_wages: %w", err),
	}
}

// ReconcileError creates an error for a failed history merge.
func ReconcileError(err error) error {
	msg := `Cannot reconcile staged wage rows into history

<em>Possible causes:</em>
  - Reference tables are missing (run <em>lccollect migrate</em>)
  - Insufficient database privileges

No history rows were written.`

	return &gn.Error{
		Code: errcode.ReconcileError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to reconcile wage_history: %w", err),
	}
}

// ProductListError creates an error for a failed mapping query.
func ProductListError(err error) error {
	msg := `Cannot list product mappings

<em>Possible causes:</em>
  - Reference tables are missing (run <em>lccollect migrate</em>)
  - Database connection was lost`

	return &gn.Error{
		Code: errcode.ProductListError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to list product mappings: %w", err),
	}
}

// PriceInsertError creates an error for a failed price insert.
func PriceInsertError(productID int, err error) error {
	msg := `Cannot insert a price row for product <em>%d</em>`

	vars := []any{productID}

	return &gn.Error{
		Code: errcode.PriceInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to insert price for product %d: %w",
			productID, err),
	}
}
