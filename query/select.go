// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"

	"github.com/patrickascher/tablekit/query/condition"
)

// SelectBase is used by every provider.
type SelectBase struct {
	Provider Provider

	STable     string
	SColumns   []string
	SCondition condition.Condition
}

// Columns of the select. If none are set, * will be used.
// Columns are quoted, use DbExpr for functions like COUNT(*).
func (s *SelectBase) Columns(columns ...string) Select {
	s.SColumns = columns
	return s
}

// First will return a sql.Row.
// The limit is set to 1, an offset is kept.
func (s *SelectBase) First() (*sql.Row, error) {
	s.condition().SetLimit(1)
	stmt, args, err := s.Render()
	if err != nil {
		return nil, err
	}
	return s.Provider.First(stmt, args)
}

// All will return sql.Rows.
func (s *SelectBase) All() (*sql.Rows, error) {
	stmt, args, err := s.Render()
	if err != nil {
		return nil, err
	}
	return s.Provider.All(stmt, args)
}

// Render the sql query.
func (s *SelectBase) Render() (string, []interface{}, error) {
	columns := s.SColumns
	if len(columns) == 0 {
		columns = []string{DbExpr("*")}
	}

	stmt := "SELECT " + s.Provider.QuoteIdentifier(columns...) + " FROM " + s.Provider.QuoteIdentifier(s.STable)
	if s.SCondition == nil {
		return stmt, nil, nil
	}

	c, args, err := s.SCondition.Render(s.Provider.Placeholder())
	if err != nil {
		return "", nil, err
	}
	if c != "" {
		stmt += " " + c
	}
	return stmt, args, nil
}

// String returns the rendered statement and arguments.
func (s *SelectBase) String() (string, []interface{}, error) {
	return s.Render()
}

// Join - please see the condition.SetJoin documentation.
func (s *SelectBase) Join(joinType int, table string, condition string, args ...interface{}) Select {
	s.condition().SetJoin(joinType, s.Provider.QuoteIdentifier(table), condition, args...)
	return s
}

// Where - please see the condition.SetWhere documentation.
func (s *SelectBase) Where(condition string, args ...interface{}) Select {
	s.condition().SetWhere(condition, args...)
	return s
}

// Order - please see the condition.SetOrder documentation.
func (s *SelectBase) Order(order ...string) Select {
	s.condition().SetOrder(order...)
	return s
}

// Limit - please see the condition.SetLimit documentation.
func (s *SelectBase) Limit(limit int) Select {
	s.condition().SetLimit(limit)
	return s
}

// Offset - please see the condition.SetOffset documentation.
func (s *SelectBase) Offset(offset int) Select {
	s.condition().SetOffset(offset)
	return s
}

// condition returns the condition and creates it if none was set yet.
func (s *SelectBase) condition() condition.Condition {
	if s.SCondition == nil {
		s.SCondition = condition.New()
	}
	return s.SCondition
}
