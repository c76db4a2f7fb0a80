// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

// Iterator walks all rows matching the args in batches, ordered by the primary key.
//
//	it := t.All(args)
//	for it.Next() {
//		row := it.Row()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	table     *Table
	args      Args
	where     string
	whereArgs []interface{}

	offset int
	total  int
	buf    []Row
	pos    int
	row    Row
	done   bool
	err    error
}

// All returns an Iterator over all rows matching the args.
// The args order, orderby and offset are ignored.
func (t *Table) All(args Args) *Iterator {
	where, values := t.Where(args)
	return &Iterator{table: t, args: args, where: where, whereArgs: values, total: -1}
}

// Next advances to the next row. False returns if no more rows exist or an error occurred.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	for it.pos >= len(it.buf) {
		if it.done {
			return false
		}
		if err := it.fetch(); err != nil {
			it.err = err
			return false
		}
	}
	it.row = it.buf[it.pos]
	it.pos++
	return true
}

// Row returns the current row.
func (it *Iterator) Row() Row {
	return it.row
}

// Err returns the first error which occurred.
func (it *Iterator) Err() error {
	return it.err
}

// Collect returns all remaining rows.
func (it *Iterator) Collect() ([]Row, error) {
	var rows []Row
	for it.Next() {
		rows = append(rows, it.Row())
	}
	return rows, it.Err()
}

// fetch loads the next batch. The batch is fully read before the rows are handed out.
// The total is counted once, after the first batch.
func (it *Iterator) fetch() error {
	t := it.table
	columns, err := t.selectColumns(nil)
	if err != nil {
		return err
	}

	sel := t.builder.Query().Select(t.from()).Columns(columns...).Limit(t.batchSize).Offset(it.offset)
	if order := t.primaryOrder("ASC"); len(order) > 0 {
		sel.Order(order...)
	}
	if it.where != "" {
		sel.Where(it.where, it.whereArgs...)
	}

	rows, n, err := t.fetch(sel, it.where, it.whereArgs, it.args)
	if err != nil {
		return err
	}
	it.offset += n

	if it.total < 0 {
		if it.total, err = t.count(nil, it.where, it.whereArgs); err != nil {
			return err
		}
	}
	if n < t.batchSize || it.offset >= it.total {
		it.done = true
	}

	it.buf, it.pos = rows, 0
	return nil
}
