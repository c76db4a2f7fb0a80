// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package condition provides the sql condition part of a statement.
// It renders JOIN, WHERE, ORDER, LIMIT and OFFSET and expands slice arguments into placeholder groups.
package condition

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Error messages.
var (
	ErrValue               = "condition: %s was called with no value(s)"
	ErrJoinType            = "condition: join type %d is not allowed"
	ErrJoinTable           = errors.New("condition: join table is mandatory")
	ErrPlaceholderMismatch = "condition: %v placeholder(%d) and arguments(%d) does not fit"
	ErrEmptySlice          = "condition: %v slice argument %d is empty"
)

// Clause interface.
type Clause interface {
	Arguments() []interface{}
	Condition() string
}

// Condition interface.
type Condition interface {
	SetWhere(condition string, args ...interface{}) Condition
	Where() []Clause
	SetJoin(joinType int, table string, condition string, args ...interface{}) Condition
	Join() []Clause
	SetLimit(limit int) Condition
	Limit() int
	SetOffset(offset int) Condition
	Offset() int
	SetOrder(order ...string) Condition
	Order() []string

	Reset(...int)
	Error() error
	Render(p Placeholder) (string, []interface{}, error)
}

// Condition parts.
const (
	WHERE = iota + 1
	LIMIT
	ORDER
	OFFSET
	JOIN
)

// Allowed join types.
const (
	LEFT = iota + 1
	RIGHT
	INNER
)

// clause is a helper struct for WHERE and JOIN.
type clause struct {
	condition string
	arguments []interface{}
}

// Condition will return the defined condition.
func (c *clause) Condition() string {
	return c.condition
}

// Arguments of the condition.
func (c *clause) Arguments() []interface{} {
	return c.arguments
}

type condition struct {
	where  []Clause
	join   []Clause
	limit  int
	order  []string
	offset int
	err    error
}

// New creates a new Condition instance.
func New() Condition {
	return &condition{}
}

// Error returns the first error which happened while the condition was built.
func (c *condition) Error() error {
	return c.err
}

// setErr keeps the first error.
func (c *condition) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// SetWhere adds a sql WHERE condition.
// When called multiple times, its getting chained by AND.
// Arrays and slices are expanded.
//		c.SetWhere("id = ?", 1)
//		c.SetWhere("id IN (?)", []int{10, 11, 12})
func (c *condition) SetWhere(condition string, args ...interface{}) Condition {
	condition, args, err := expand(condition, args)
	if err != nil {
		c.setErr(err)
		return c
	}
	c.where = append(c.where, &clause{condition: condition, arguments: args})
	return c
}

// Where returns the where clauses.
func (c *condition) Where() []Clause {
	return c.where
}

// SetJoin adds a LEFT, RIGHT or INNER join.
// If the join type is unknown or the table is empty, an error will be set.
func (c *condition) SetJoin(joinType int, table string, condition string, args ...interface{}) Condition {
	if table == "" {
		c.setErr(ErrJoinTable)
		return c
	}

	var kw string
	switch joinType {
	case LEFT:
		kw = "LEFT JOIN "
	case RIGHT:
		kw = "RIGHT JOIN "
	case INNER:
		kw = "INNER JOIN "
	default:
		c.setErr(fmt.Errorf(ErrJoinType, joinType))
		return c
	}

	condition, args, err := expand(kw+table+" ON "+strings.TrimSpace(condition), args)
	if err != nil {
		c.setErr(err)
		return c
	}
	c.join = append(c.join, &clause{condition: condition, arguments: args})
	return c
}

// Join returns the join clauses.
func (c *condition) Join() []Clause {
	return c.join
}

// SetLimit for the condition.
func (c *condition) SetLimit(limit int) Condition {
	c.limit = limit
	return c
}

// Limit of the condition.
func (c *condition) Limit() int {
	return c.limit
}

// SetOffset for the condition.
// The offset is only rendered together with a limit.
func (c *condition) SetOffset(offset int) Condition {
	c.offset = offset
	return c
}

// Offset of the condition.
func (c *condition) Offset() int {
	return c.offset
}

// SetOrder replaces the order.
// A `-` prefix is a shortcut for DESC, without direction ASC is added.
func (c *condition) SetOrder(order ...string) Condition {
	c.order = nil
	if len(order) == 0 || (len(order) == 1 && order[0] == "") {
		c.setErr(fmt.Errorf(ErrValue, "SetOrder"))
		return c
	}

	for _, o := range order {
		o = strings.TrimSpace(o)
		upper := strings.ToUpper(o)
		switch {
		case strings.HasPrefix(o, "-"):
			o = o[1:] + " DESC"
		case strings.HasSuffix(upper, " DESC"):
			o = o[:len(o)-5] + " DESC"
		case strings.HasSuffix(upper, " ASC"):
			o = o[:len(o)-4] + " ASC"
		default:
			o += " ASC"
		}
		c.order = append(c.order, o)
	}
	return c
}

// Order returns the order columns.
func (c *condition) Order() []string {
	return c.order
}

// Reset the complete condition or only single parts.
func (c *condition) Reset(parts ...int) {
	if len(parts) == 0 {
		parts = []int{WHERE, LIMIT, ORDER, OFFSET, JOIN}
	}
	for _, p := range parts {
		switch p {
		case WHERE:
			c.where = nil
		case JOIN:
			c.join = nil
		case LIMIT:
			c.limit = 0
		case OFFSET:
			c.offset = 0
		case ORDER:
			c.order = nil
		}
	}
}

// Render the condition as sql string and arguments.
func (c *condition) Render(p Placeholder) (string, []interface{}, error) {
	if c.err != nil {
		return "", nil, c.err
	}

	var sql []string
	var args []interface{}

	for _, j := range c.join {
		sql = append(sql, j.Condition())
		args = append(args, j.Arguments()...)
	}

	if len(c.where) > 0 {
		where := make([]string, len(c.where))
		for i, w := range c.where {
			where[i] = w.Condition()
			args = append(args, w.Arguments()...)
		}
		sql = append(sql, "WHERE "+strings.Join(where, " AND "))
	}

	if len(c.order) > 0 {
		sql = append(sql, "ORDER BY "+strings.Join(c.order, ", "))
	}

	if c.limit > 0 {
		sql = append(sql, "LIMIT "+strconv.Itoa(c.limit))
		if c.offset > 0 {
			sql = append(sql, "OFFSET "+strconv.Itoa(c.offset))
		}
	}

	return ReplacePlaceholders(strings.Join(sql, " "), &p), args, nil
}

// expand checks the placeholder count and replaces every slice argument by a placeholder group.
func expand(stmt string, args []interface{}) (string, []interface{}, error) {
	stmt = strings.TrimSpace(stmt)
	parts := strings.Split(stmt, PLACEHOLDER)
	if len(parts)-1 != len(args) {
		return "", nil, fmt.Errorf(ErrPlaceholderMismatch, stmt, len(parts)-1, len(args))
	}
	if len(args) == 0 {
		return stmt, nil, nil
	}

	var b strings.Builder
	var rv []interface{}
	for i, arg := range args {
		b.WriteString(parts[i])

		v := reflect.ValueOf(arg)
		// []byte is a single value.
		if (v.Kind() == reflect.Slice && v.Type().Elem().Kind() != reflect.Uint8) || v.Kind() == reflect.Array {
			if v.Len() == 0 {
				return "", nil, fmt.Errorf(ErrEmptySlice, stmt, i)
			}
			b.WriteString(PLACEHOLDER + strings.Repeat(", "+PLACEHOLDER, v.Len()-1))
			for n := 0; n < v.Len(); n++ {
				rv = append(rv, v.Index(n).Interface())
			}
			continue
		}
		b.WriteString(PLACEHOLDER)
		rv = append(rv, arg)
	}
	b.WriteString(parts[len(parts)-1])

	return b.String(), rv, nil
}
