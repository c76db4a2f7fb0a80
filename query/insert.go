// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/patrickascher/tablekit/query/condition"
)

const defaultBatchSize = 50

// Error messages.
var (
	ErrValueMissing = "query: no %s value is set (%s)"
	ErrColumn       = "query: column (%s) does not exist in (%s)"
	ErrLastID       = errors.New("query: last id must be a ptr to an int")
)

// InsertBase is used by every provider.
type InsertBase struct {
	Provider Provider

	ITable     string
	IValues    []map[string]interface{}
	IColumns   []string
	IBatchSize int
	ILastID    interface{}
}

// Batch sets the batching size.
// Default batching size is 50.
func (i *InsertBase) Batch(size int) Insert {
	i.IBatchSize = size
	return i
}

// Columns define a fixed column order for the insert.
// If the columns are not set manually, the sorted keys of the first value set will be used.
// Every value set must contain all columns.
func (i *InsertBase) Columns(c ...string) Insert {
	i.IColumns = c
	return i
}

// Values sets the insert data.
func (i *InsertBase) Values(values []map[string]interface{}) Insert {
	i.IValues = values
	return i
}

// LastInsertedID sets the last inserted id to the given ptr.
// It is only set for a single, not batched statement.
func (i *InsertBase) LastInsertedID(id interface{}) Insert {
	i.ILastID = id
	return i
}

// String returns the rendered statements and arguments.
func (i *InsertBase) String() ([]string, [][]interface{}, error) {
	return i.Render()
}

// Exec the statements.
func (i *InsertBase) Exec() ([]sql.Result, error) {
	var id reflect.Value
	if i.ILastID != nil {
		id = reflect.ValueOf(i.ILastID)
		if id.Kind() != reflect.Ptr || !id.Elem().CanSet() {
			return nil, ErrLastID
		}
		switch id.Elem().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return nil, ErrLastID
		}
	}

	stmt, args, err := i.Render()
	if err != nil {
		return nil, err
	}

	res, err := i.Provider.Exec(stmt, args)
	if err != nil {
		return nil, err
	}

	if i.ILastID != nil && len(res) == 1 {
		lastID, err := res[0].LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		id.Elem().SetInt(lastID)
	}

	return res, nil
}

// Render the statements, one per batch.
func (i *InsertBase) Render() ([]string, [][]interface{}, error) {
	if len(i.IValues) == 0 {
		return nil, nil, fmt.Errorf(ErrValueMissing, "insert", i.ITable)
	}

	columns := addColumns(i.IColumns, i.IValues[0])
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf(ErrValueMissing, "insert", i.ITable)
	}

	size := i.IBatchSize
	if size <= 0 {
		size = defaultBatchSize
	}

	head := "INSERT INTO " + i.Provider.QuoteIdentifier(i.ITable) + " (" + i.Provider.QuoteIdentifier(columns...) + ") VALUES "
	row := "(" + condition.PLACEHOLDER + strings.Repeat(", "+condition.PLACEHOLDER, len(columns)-1) + ")"

	var stmts []string
	var args [][]interface{}
	for start := 0; start < len(i.IValues); start += size {
		end := start + size
		if end > len(i.IValues) {
			end = len(i.IValues)
		}

		var batch []interface{}
		for _, values := range i.IValues[start:end] {
			for _, column := range columns {
				val, ok := values[column]
				if !ok {
					return nil, nil, fmt.Errorf(ErrColumn, column, i.ITable)
				}
				batch = append(batch, val)
			}
		}

		p := i.Provider.Placeholder()
		stmts = append(stmts, condition.ReplacePlaceholders(head+strings.TrimSuffix(strings.Repeat(row+", ", end-start), ", "), &p))
		args = append(args, batch)
	}

	return stmts, args, nil
}
