// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/patrickascher/tablekit/query/condition"
)

// UpdateBase is used by every provider.
type UpdateBase struct {
	Provider Provider

	UTable     string
	UColumns   []string
	UValues    map[string]interface{}
	UCondition condition.Condition
}

// Set the values.
func (u *UpdateBase) Set(values map[string]interface{}) Update {
	u.UValues = values
	return u
}

// Columns define a fixed column order for the update.
// If the columns are not set manually, the sorted keys of the values will be used.
func (u *UpdateBase) Columns(cols ...string) Update {
	u.UColumns = cols
	return u
}

// Where - please see the condition.SetWhere documentation.
func (u *UpdateBase) Where(c string, args ...interface{}) Update {
	if u.UCondition == nil {
		u.UCondition = condition.New()
	}
	u.UCondition.SetWhere(c, args...)
	return u
}

// String returns the rendered statement and arguments.
func (u *UpdateBase) String() (string, []interface{}, error) {
	return u.Render()
}

// Exec the statement.
func (u *UpdateBase) Exec() (sql.Result, error) {
	stmt, args, err := u.Render()
	if err != nil {
		return nil, err
	}
	res, err := u.Provider.Exec([]string{stmt}, [][]interface{}{args})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// Render the sql query.
func (u *UpdateBase) Render() (string, []interface{}, error) {
	if len(u.UValues) == 0 {
		return "", nil, fmt.Errorf(ErrValueMissing, "update", u.UTable)
	}

	columns := addColumns(u.UColumns, u.UValues)
	set := make([]string, len(columns))
	args := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		val, ok := u.UValues[column]
		if !ok {
			return "", nil, fmt.Errorf(ErrColumn, column, u.UTable)
		}
		set[i] = u.Provider.QuoteIdentifier(column) + " = " + condition.PLACEHOLDER
		args = append(args, val)
	}

	stmt := "UPDATE " + u.Provider.QuoteIdentifier(u.UTable) + " SET " + strings.Join(set, ", ")
	if u.UCondition != nil {
		c, cArgs, err := u.UCondition.Render(condition.Placeholder{Char: condition.PLACEHOLDER})
		if err != nil {
			return "", nil, err
		}
		if c != "" {
			stmt += " " + c
			args = append(args, cArgs...)
		}
	}

	p := u.Provider.Placeholder()
	return condition.ReplacePlaceholders(stmt, &p), args, nil
}
