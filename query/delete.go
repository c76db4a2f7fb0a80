// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"

	"github.com/patrickascher/tablekit/query/condition"
)

// DeleteBase is used by every provider.
type DeleteBase struct {
	Provider Provider

	DTable     string
	DCondition condition.Condition
}

// Where - please see the condition.SetWhere documentation.
// A delete without condition removes all rows.
func (d *DeleteBase) Where(c string, args ...interface{}) Delete {
	if d.DCondition == nil {
		d.DCondition = condition.New()
	}
	d.DCondition.SetWhere(c, args...)
	return d
}

// String returns the rendered statement and arguments.
func (d *DeleteBase) String() (string, []interface{}, error) {
	return d.Render()
}

// Exec the statement.
func (d *DeleteBase) Exec() (sql.Result, error) {
	stmt, args, err := d.Render()
	if err != nil {
		return nil, err
	}
	res, err := d.Provider.Exec([]string{stmt}, [][]interface{}{args})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// Render the sql query.
func (d *DeleteBase) Render() (string, []interface{}, error) {
	stmt := "DELETE FROM " + d.Provider.QuoteIdentifier(d.DTable)
	if d.DCondition == nil {
		return stmt, nil, nil
	}

	c, args, err := d.DCondition.Render(d.Provider.Placeholder())
	if err != nil {
		return "", nil, err
	}
	if c != "" {
		stmt += " " + c
	}
	return stmt, args, nil
}
