// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/mapper"
	"github.com/patrickascher/tablekit/query"
)

type deleteOptions struct {
	column string
	where  string
	args   []interface{}
}

// DeleteOption configures a Delete call.
type DeleteOption func(*deleteOptions)

// ByColumn deletes by the given column instead of the primary key.
func ByColumn(name string) DeleteOption {
	return func(o *deleteOptions) {
		o.column = name
	}
}

// AndWhere appends the raw condition with AND.
func AndWhere(stmt string, args ...interface{}) DeleteOption {
	return func(o *deleteOptions) {
		o.where = stmt
		o.args = args
	}
}

// Insert the row and return the last inserted id.
// The auto increment column and unknown fields are skipped.
// The id is 0 if the table has no auto increment column.
func (t *Table) Insert(row Row) (int64, error) {
	skip := map[string]bool{}
	ai, hasAI := t.schema.AutoIncrementColumn()
	if hasAI {
		skip[ai.Name()] = true
	}

	values, err := t.values(row, skip)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrNoValues
	}

	var id int64
	ins := t.builder.Query().Insert(t.Name()).Values([]map[string]interface{}{values})
	if hasAI {
		ins.LastInsertedID(&id)
	}
	if err = t.execInsert(ins, row); err != nil {
		return 0, err
	}
	return id, nil
}

// InsertMany inserts all rows with a single statement.
// All rows must contain the same fields.
func (t *Table) InsertMany(rows []Row) error {
	if len(rows) == 0 {
		return ErrNoValues
	}

	skip := map[string]bool{}
	if ai, ok := t.schema.AutoIncrementColumn(); ok {
		skip[ai.Name()] = true
	}

	var fields string
	values := make([]map[string]interface{}, 0, len(rows))
	for i, row := range rows {
		v, err := t.values(row, skip)
		if err != nil {
			return err
		}
		if len(v) == 0 {
			return ErrNoValues
		}
		keys := strings.Join(mapper.KeysAsString(v), ",")
		if i > 0 && keys != fields {
			return ErrInsertColumns
		}
		fields = keys
		values = append(values, v)
	}

	return t.execInsert(t.builder.Query().Insert(t.Name()).Values(values).Batch(len(values)), rows)
}

// Update the row by its primary key and return the number of affected rows.
// Unknown fields are skipped.
func (t *Table) Update(row Row) (int64, error) {
	return t.update(t.builder.Query(), row)
}

// UpdateMany updates all rows in one transaction.
// If any update fails, all are rolled back.
func (t *Table) UpdateMany(rows []Row) error {
	tx, err := t.builder.Query().Tx()
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}

	for _, row := range rows {
		if _, err = t.update(tx, row); err != nil {
			break
		}
	}
	return tx.Finish(err)
}

// Upsert updates the row if all primary key fields are set and not empty, otherwise the row is inserted.
// The inserted id returns, 0 on update.
func (t *Table) Upsert(row Row) (int64, error) {
	pk := t.schema.PrimaryColumns()
	if len(pk) == 0 {
		return 0, ErrPrimaryKeyMissing
	}

	for _, name := range pk {
		if empty(row[name]) {
			return t.Insert(row)
		}
	}
	_, err := t.Update(row)
	return 0, err
}

// Delete the rows where the primary key, or the ByColumn column, matches the value.
// A list value deletes all matching rows. The number of deleted rows returns.
func (t *Table) Delete(value interface{}, opts ...DeleteOption) (int64, error) {
	o := deleteOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.column == "" {
		pk, err := t.primaryColumn()
		if err != nil {
			return 0, err
		}
		o.column = pk
	}

	c, err := t.column(o.column)
	if err != nil {
		return 0, err
	}

	var where string
	var args []interface{}
	switch {
	case value == nil:
		return 0, ErrNoValues
	case isList(value):
		items := list(value)
		if len(items) == 0 {
			return 0, ErrNoValues
		}
		for _, item := range items {
			v, err := coerce(c, item)
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		where = o.column + " " + query.IN + " (" + placeholders(len(args)) + ")"
	default:
		v, err := coerce(c, value)
		if err != nil {
			return 0, err
		}
		where, args = o.column+" "+query.EQ+" ?", []interface{}{v}
	}

	if o.where != "" {
		where += " " + query.AND + " " + o.where
		args = append(args, o.args...)
	}

	del := t.builder.Query().Delete(t.Name()).Where(where, args...)
	stmt, stmtArgs, err := del.String()
	if err != nil {
		return 0, err
	}
	p := hook.Payload{Schema: t.schema, Query: stmt, Args: stmtArgs, Where: where, WhereArgs: args, Input: value}
	t.hooks.Fire(hook.BeforeQuery, t.Name(), p)

	res, err := del.Exec()
	if err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	t.hooks.Fire(hook.AfterQuery, t.Name(), p)
	return affected(res)
}

// DeleteMany deletes all rows matching one of the values.
func (t *Table) DeleteMany(values []interface{}, opts ...DeleteOption) (int64, error) {
	return t.Delete(values, opts...)
}

// update the row by its primary key with the given query.
func (t *Table) update(q query.Tx, row Row) (int64, error) {
	pk := t.schema.PrimaryColumns()
	if len(pk) == 0 {
		return 0, ErrPrimaryKeyMissing
	}

	skip := make(map[string]bool, len(pk))
	var parts []string
	var args []interface{}
	for _, name := range pk {
		skip[name] = true
		v, ok := row[name]
		if !ok || v == nil {
			return 0, ErrPrimaryKeyMissing
		}
		c, err := t.column(name)
		if err != nil {
			return 0, err
		}
		if v, err = coerce(c, v); err != nil {
			return 0, err
		}
		parts = append(parts, name+" "+query.EQ+" ?")
		args = append(args, v)
	}

	values, err := t.values(row, skip)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrNoValues
	}

	where := strings.Join(parts, " "+query.AND+" ")
	upd := q.Update(t.Name()).Set(values).Where(where, args...)
	stmt, stmtArgs, err := upd.String()
	if err != nil {
		return 0, err
	}
	p := hook.Payload{Schema: t.schema, Query: stmt, Args: stmtArgs, Where: where, WhereArgs: args, Input: row}
	t.hooks.Fire(hook.BeforeQuery, t.Name(), p)

	res, err := upd.Exec()
	if err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	t.hooks.Fire(hook.AfterQuery, t.Name(), p)
	return affected(res)
}

// execInsert executes the insert between the query hooks.
func (t *Table) execInsert(ins query.Insert, input interface{}) error {
	stmts, stmtArgs, err := ins.String()
	if err != nil {
		return err
	}
	var args []interface{}
	for _, a := range stmtArgs {
		args = append(args, a...)
	}
	p := hook.Payload{Schema: t.schema, Query: strings.Join(stmts, "; "), Args: args, Input: input}
	t.hooks.Fire(hook.BeforeQuery, t.Name(), p)

	if _, err = ins.Exec(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	t.hooks.Fire(hook.AfterQuery, t.Name(), p)
	return nil
}

// values returns the coerced row values of all schema columns which are not skipped.
func (t *Table) values(row Row, skip map[string]bool) (map[string]interface{}, error) {
	rv := make(map[string]interface{}, len(row))
	for _, name := range mapper.KeysAsString(row) {
		if skip[name] {
			continue
		}
		c, err := t.column(name)
		if err != nil {
			t.warn("unknown field skipped", logger.Fields{"column": name})
			continue
		}
		v, err := coerce(c, row[name])
		if err != nil {
			return nil, err
		}
		rv[name] = v
	}
	return rv, nil
}

// affected returns the number of affected rows.
func affected(res interface{ RowsAffected() (int64, error) }) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	return n, nil
}

// empty reports if the value is nil or the zero value of its type.
func empty(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.IsZero()
}
