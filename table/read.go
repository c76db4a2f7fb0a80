// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/mapper"
	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/query/condition"
	"github.com/patrickascher/tablekit/slicer"
	"github.com/patrickascher/tablekit/stringer"
)

// Page is a single result page.
type Page struct {
	Rows       []Row
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Join describes a LEFT JOIN of a second table.
// Condition must be of the form column = column, columns can be prefixed by the aliases a and b.
// Columns maps the result alias to the column of the joined table.
type Join struct {
	Table     string
	Condition string
	Columns   map[string]string
}

type paginate struct {
	columns []string
	join    *Join
}

// PaginateOption configures a Paginate call.
type PaginateOption func(*paginate)

// WithColumns restricts the selected columns of the main table.
func WithColumns(columns ...string) PaginateOption {
	return func(p *paginate) {
		p.columns = columns
	}
}

// WithJoin adds a LEFT JOIN.
func WithJoin(j Join) PaginateOption {
	return func(p *paginate) {
		p.join = &j
	}
}

// Get returns the row by its primary key.
// sql.ErrNoRows returns if no row exists.
func (t *Table) Get(id interface{}) (Row, error) {
	pk, err := t.primaryColumn()
	if err != nil {
		return nil, err
	}
	return t.GetBy(pk, id)
}

// GetBy returns the first row where the column equals the value.
// sql.ErrNoRows returns if no row exists.
func (t *Table) GetBy(column string, value interface{}) (Row, error) {
	sel, where, args, err := t.by(column, value)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, sql.ErrNoRows
	}
	rows, _, err := t.fetch(sel.Limit(1), where, args, Row{column: value})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

// AllBy returns all rows where the column equals the value.
func (t *Table) AllBy(column string, value interface{}) ([]Row, error) {
	sel, where, args, err := t.by(column, value)
	if err != nil || sel == nil {
		return nil, err
	}
	rows, _, err := t.fetch(sel, where, args, Row{column: value})
	return rows, err
}

// Count returns the number of rows matching the args.
func (t *Table) Count(args Args) (int, error) {
	where, values := t.Where(args)
	return t.count(nil, where, values)
}

// Paginate returns a single page of the rows matching the args.
// perPage is clamped to 1..MaxPerPage.
// A page smaller than 1 is treated as the first page.
// The args offset is only used on the first page.
// Without a valid orderby, the rows are ordered by the primary key.
func (t *Table) Paginate(args Args, perPage int, page int, opts ...PaginateOption) (*Page, error) {
	p := paginate{}
	for _, opt := range opts {
		opt(&p)
	}

	switch {
	case perPage < 1:
		perPage = 1
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage
	if page == 1 && args.Offset > 0 {
		offset = args.Offset
	}

	columns, err := t.selectColumns(p.columns)
	if err != nil {
		return nil, err
	}

	var join *joinClause
	if p.join != nil {
		join, err = t.join(*p.join)
		if err != nil {
			return nil, err
		}
		columns = append(columns, join.columns...)
	}

	where, values := t.Where(args)

	total, err := t.count(join, where, values)
	if err != nil {
		return nil, err
	}

	sel := t.builder.Query().Select(t.from()).Columns(columns...).Limit(perPage).Offset(offset)
	if order := t.order(args); len(order) > 0 {
		sel.Order(order...)
	}
	if join != nil {
		sel.Join(condition.LEFT, join.table, join.condition)
	}
	if where != "" {
		sel.Where(where, values...)
	}

	rows, _, err := t.fetch(sel, where, values, args)
	if err != nil {
		return nil, err
	}

	return &Page{
		Rows:       rows,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

// Decode the row into the given struct pointer.
// The snake case column names are matched against the camel case field names.
func Decode(row Row, dst interface{}) error {
	input := make(map[string]interface{}, len(row))
	for k, v := range row {
		input[stringer.FieldName(k)] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: dst})
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if err = dec.Decode(input); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	return nil
}

// by returns the select of all columns where the column equals the value, ordered by the primary key.
// A nil value matches NULL. If the value can not match any row (an empty list or a value
// which can not be converted to the column type), the select is nil.
func (t *Table) by(column string, value interface{}) (query.Select, string, []interface{}, error) {
	c, err := t.column(column)
	if err != nil {
		return nil, "", nil, err
	}
	columns, err := t.selectColumns(nil)
	if err != nil {
		return nil, "", nil, err
	}

	var where string
	var args []interface{}
	if value == nil {
		where = Alias + "." + c.Name() + " " + query.NULL
	} else {
		where, args = t.leaf(Leaf{Column: column, Value: value, Operator: query.EQ})
	}
	if where == "" {
		return nil, "", nil, nil
	}

	sel := t.builder.Query().Select(t.from()).Columns(columns...).Where(where, args...)
	if order := t.primaryOrder("ASC"); len(order) > 0 {
		sel.Order(order...)
	}
	return sel, where, args, nil
}

// selectColumns returns the unique aliased columns. All schema columns are used if none is given.
func (t *Table) selectColumns(columns []string) ([]string, error) {
	columns = slicer.StringUnique(columns)
	if len(columns) == 0 {
		for _, c := range t.schema.Columns().Items() {
			columns = append(columns, c.Name())
		}
	}

	rv := make([]string, 0, len(columns))
	for _, name := range columns {
		if _, err := t.column(name); err != nil {
			return nil, err
		}
		rv = append(rv, Alias+"."+name)
	}
	return rv, nil
}

// order returns the order by of the args.
func (t *Table) order(args Args) []string {
	dir := normalizeOrder(args.Order)
	if args.OrderBy != "" {
		if _, err := t.column(args.OrderBy); err == nil {
			return []string{Alias + "." + args.OrderBy + " " + dir}
		}
		t.warn("unknown order column ignored", logger.Fields{"column": args.OrderBy})
	}
	return t.primaryOrder(dir)
}

// primaryOrder orders by all primary key columns.
func (t *Table) primaryOrder(dir string) []string {
	var rv []string
	for _, name := range t.schema.PrimaryColumns() {
		rv = append(rv, Alias+"."+name+" "+dir)
	}
	return rv
}

// count returns the number of rows for the where condition.
func (t *Table) count(join *joinClause, where string, args []interface{}) (int, error) {
	sel := t.builder.Query().Select(t.from()).Columns(query.DbExpr("COUNT(*)"))
	if join != nil {
		sel.Join(condition.LEFT, join.table, join.condition)
	}
	if where != "" {
		sel.Where(where, args...)
	}

	row, err := sel.First()
	if err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	return n, nil
}

// fetch executes the select between the query hooks, decodes all rows and applies the row filters.
// The number of scanned rows before filtering is returned as well.
func (t *Table) fetch(sel query.Select, where string, whereArgs []interface{}, input interface{}) ([]Row, int, error) {
	stmt, args, err := sel.String()
	if err != nil {
		return nil, 0, err
	}
	p := hook.Payload{Schema: t.schema, Query: stmt, Args: args, Where: where, WhereArgs: whereArgs, Input: input}
	t.hooks.Fire(hook.BeforeQuery, t.Name(), p)

	res, err := sel.All()
	if err != nil {
		return nil, 0, fmt.Errorf("table: %w", err)
	}
	rows, err := t.scan(res)
	if err != nil {
		return nil, 0, err
	}

	t.hooks.Fire(hook.AfterQuery, t.Name(), p)
	return t.hooks.ApplyFilters(t.Name(), rows), len(rows), nil
}

// scan reads and closes all rows. The values are decoded by their column types.
func (t *Table) scan(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	var rv []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("table: %w", err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			if c, err := t.column(name); err == nil {
				row[name] = decode(c, values[i])
				continue
			}
			row[name] = raw(values[i])
		}
		rv = append(rv, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return rv, nil
}

type joinClause struct {
	table     string
	condition string
	columns   []string
}

// join validates the join and returns the rendered clause parts.
func (t *Table) join(j Join) (*joinClause, error) {
	if j.Table == "" {
		return nil, ErrJoinCondition
	}
	info := t.builder.Query().Information(j.Table)

	sides := strings.Split(j.Condition, "=")
	if len(sides) != 2 {
		return nil, fmt.Errorf("%w: %s", ErrJoinCondition, j.Condition)
	}
	for i := range sides {
		side, err := t.joinColumn(info, strings.TrimSpace(sides[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, j.Condition)
		}
		sides[i] = side
	}

	rv := &joinClause{table: j.Table + " " + JoinAlias, condition: sides[0] + " = " + sides[1]}
	for _, alias := range mapper.KeysAsString(j.Columns) {
		column := j.Columns[alias]
		ok, err := info.HasColumn(column)
		if err != nil {
			return nil, fmt.Errorf("table: %w", err)
		}
		if !ok || !identifier(alias) {
			return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotFound, j.Table, column)
		}
		rv.columns = append(rv.columns, JoinAlias+"."+column+" "+alias)
	}
	return rv, nil
}

// joinColumn resolves a single side of the join condition.
// A column without alias is searched in the main table first.
func (t *Table) joinColumn(info query.Information, s string) (string, error) {
	alias, column := "", s
	if i := strings.Index(s, "."); i >= 0 {
		alias, column = s[:i], s[i+1:]
	}
	if !identifier(column) {
		return "", ErrJoinCondition
	}

	if alias == "" || alias == Alias {
		if t.schema.HasColumn(column) {
			return Alias + "." + column, nil
		}
		if alias == Alias {
			return "", ErrJoinCondition
		}
	}
	if alias != "" && alias != JoinAlias {
		return "", ErrJoinCondition
	}

	ok, err := info.HasColumn(column)
	if err != nil {
		return "", fmt.Errorf("table: %w", err)
	}
	if !ok {
		return "", ErrJoinCondition
	}
	return JoinAlias + "." + column, nil
}

// identifier reports if the string only contains letters, digits and underscores.
func identifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
