// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"

	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/query/condition"
)

// Builder is the entry point of a configured database connection.
type Builder interface {
	SetLogger(logger.Manager)
	Query(...Tx) Query
	Config() Config
	Dialect() string
	QuoteIdentifier(string) string
	Close() error
}

// Provider must be implemented by every database driver.
// The Base struct implements most of it.
type Provider interface {
	Open() error
	Close() error
	Config() Config
	Dialect() string
	Placeholder() condition.Placeholder
	QuoteIdentifier(...string) string
	QuoteIdentifierChar() string
	SetLogger(logger.Manager)
	DB() *sql.DB

	// Query creates a new instance without a transaction.
	Query() Query
	// Information returns the structural introspection of a table.
	Information(table string) Information

	Exec([]string, [][]interface{}) ([]sql.Result, error)
	First(string, []interface{}) (*sql.Row, error)
	All(string, []interface{}) (*sql.Rows, error)
}

// Query is a single unit of work.
// It can be turned into a transaction by calling Tx.
type Query interface {
	Tx
	Tx() (Tx, error)
}

// Tx is a query which may run inside a transaction.
type Tx interface {
	HasTx() bool
	Commit() error
	Rollback() error
	// Finish commits on a nil error and rolls back otherwise.
	Finish(error) error

	Select(string) Select
	Insert(string) Insert
	Update(string) Update
	Delete(string) Delete
	Information(string) Information
	// Raw executes a statement which is not covered by the builder, like ddl.
	Raw(stmt string, args ...interface{}) (sql.Result, error)
}

// Insert statement.
type Insert interface {
	Batch(int) Insert
	Columns(...string) Insert
	Values([]map[string]interface{}) Insert
	LastInsertedID(interface{}) Insert

	String() ([]string, [][]interface{}, error)
	Exec() ([]sql.Result, error)
}

// Update statement.
type Update interface {
	Set(map[string]interface{}) Update
	Columns(...string) Update
	Where(string, ...interface{}) Update

	String() (string, []interface{}, error)
	Exec() (sql.Result, error)
}

// Delete statement.
type Delete interface {
	Where(string, ...interface{}) Delete

	String() (string, []interface{}, error)
	Exec() (sql.Result, error)
}

// Select statement.
type Select interface {
	Columns(...string) Select
	First() (*sql.Row, error)
	All() (*sql.Rows, error)
	String() (string, []interface{}, error)

	Join(joinType int, table string, condition string, args ...interface{}) Select
	Where(condition string, args ...interface{}) Select
	Order(order ...string) Select
	Limit(limit int) Select
	Offset(offset int) Select
}

// Information provides the structural introspection of a table.
type Information interface {
	// Exists reports if the table exists.
	Exists() (bool, error)
	// HasColumn reports if the column exists.
	HasColumn(column string) (bool, error)
	// HasIndex reports if the index exists. The primary key is named PRIMARY.
	HasIndex(index string) (bool, error)
	// Describe returns the table columns. If no column is given, all are returned.
	Describe(columns ...string) ([]Column, error)
}
