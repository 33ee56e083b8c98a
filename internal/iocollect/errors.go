package iocollect

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// AllIndicatorsFailedError creates an error for a wage cycle in which
// no indicator could be collected.
func AllIndicatorsFailedError(count int) error {
	msg := `All <em>%d</em> wage indicators failed to collect

<em>Possible causes:</em>
  - Labor-statistics service is down
  - Database is unreachable

The next scheduled run retries the whole cycle.`

	vars := []any{count}

	return &gn.Error{
		Code: errcode.WageFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d indicators failed", count),
	}
}
