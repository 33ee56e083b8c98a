/*
Copyright © 2026 The lccollect authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// MissingTableError creates an error for a collection attempted
// against a database without its schema.
func MissingTableError(table string) error {
	msg := `Required table <em>%s</em> does not exist

Run <em>lccollect migrate</em> to create the database schema.`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBMissingTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("required table %q does not exist", table),
	}
}

// UnknownJobError creates an error for an unrecognized --jobs value.
func UnknownJobError(name string) error {
	msg := `Unknown job <em>%s</em>

Valid jobs are <em>prices</em> and <em>wages</em>.`

	vars := []any{name}

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown job %q", name),
	}
}
