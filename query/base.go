// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/mapper"
)

// Error messages.
var (
	ErrDbNotSet = errors.New("query: DB is not set")
)

// Base struct includes the configuration, logger and transaction logic.
// Providers embed it and set the Provider field to themselves.
type Base struct {
	db       *sql.DB
	Config   Config
	Logger   logger.Manager
	Provider Provider

	TransactionBase
}

// SetDB sets the *sql.DB.
func (b *Base) SetDB(db *sql.DB) {
	b.db = db
}

// DB returns the *sql.DB.
func (b *Base) DB() *sql.DB {
	return b.db
}

// QuoteIdentifier quotes every string with the providers quote character.
// If query.DbExpr was used, the string will not be quoted.
// "go.users AS u" or "go.users u" will be converted to `go`.`users` `u`
func (b *Base) QuoteIdentifier(columns ...string) string {
	q := b.Provider.QuoteIdentifierChar()
	rv := make([]string, 0, len(columns))
	for _, c := range columns {
		if strings.HasPrefix(c, dbExpr) {
			rv = append(rv, c[1:])
			continue
		}

		c = strings.ReplaceAll(strings.TrimSpace(c), q, "")
		fields := strings.Fields(c)
		if len(fields) == 0 {
			continue
		}

		parts := strings.Split(fields[0], ".")
		for i := range parts {
			parts[i] = q + parts[i] + q
		}
		quoted := strings.Join(parts, ".")
		if len(fields) > 1 {
			quoted += " " + q + fields[len(fields)-1] + q
		}
		rv = append(rv, quoted)
	}
	return strings.Join(rv, ", ")
}

// Tx starts a transaction on this query instance and returns it.
// Error will return if a transaction is already running or the driver returns one.
func (b *Base) Tx() (Tx, error) {
	if b.HasTx() {
		return nil, ErrTxExists
	}
	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	b.TransactionBase.Tx = tx
	return b.Provider.(Tx), nil
}

// log returns a logger with a timer or nil.
func (b *Base) log() logger.Manager {
	if b.Logger == nil {
		return nil
	}
	return b.Logger.WithTimer()
}

// debug logs the statement.
func debug(l logger.Manager, stmt string, args int, tx bool) {
	if l != nil {
		l.WithFields(logger.Fields{"args": args, "tx": tx}).Debug(stmt)
	}
}

// First will return a sql.Row.
// If a logger is defined, the query will be logged on DEBUG with a duration.
// If a transaction is set, it will run in the transaction.
func (b *Base) First(stmt string, args []interface{}) (*sql.Row, error) {
	l := b.log()
	defer debug(l, stmt, len(args), b.HasTx())

	if b.HasTx() {
		return b.TransactionBase.Tx.QueryRow(stmt, args...), nil
	}
	return b.db.QueryRow(stmt, args...), nil
}

// All will return the sql.Rows.
// If a logger is defined, the query will be logged on DEBUG with a duration.
// If a transaction is set, it will run in the transaction.
func (b *Base) All(stmt string, args []interface{}) (*sql.Rows, error) {
	l := b.log()
	defer debug(l, stmt, len(args), b.HasTx())

	if b.HasTx() {
		return b.TransactionBase.Tx.Query(stmt, args...)
	}
	return b.db.Query(stmt, args...)
}

// Exec will execute the statements.
// Because of the Insert.Batch, multiple statements and arguments can be added and therefore a slice of sql.Result returns.
// If a transaction is set, it will run in the transaction and the caller decides about commit or rollback.
// If its a batch exec and no transaction is set, one will be created and committed or rolled back.
func (b *Base) Exec(stmt []string, args [][]interface{}) ([]sql.Result, error) {
	l := b.log()
	defer debug(l, strings.Join(stmt, "; "), len(args), b.HasTx())

	var autoCommit bool
	if !b.HasTx() && len(stmt) > 1 {
		if _, err := b.Tx(); err != nil {
			return nil, err
		}
		autoCommit = true
	}

	results := make([]sql.Result, 0, len(stmt))
	for i := range stmt {
		var res sql.Result
		var err error
		if b.HasTx() {
			res, err = b.TransactionBase.Tx.Exec(stmt[i], args[i]...)
		} else {
			res, err = b.db.Exec(stmt[i], args[i]...)
		}
		if err != nil {
			if autoCommit {
				return nil, b.Finish(err)
			}
			return nil, err
		}
		results = append(results, res)
	}

	if autoCommit {
		return results, b.Finish(nil)
	}
	return results, nil
}

// Raw executes a single statement.
func (b *Base) Raw(stmt string, args ...interface{}) (sql.Result, error) {
	res, err := b.Exec([]string{stmt}, [][]interface{}{args})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// Select will return a query.Select.
func (b *Base) Select(table string) Select {
	return &SelectBase{STable: table, Provider: b.Provider}
}

// Insert will return a query.Insert.
func (b *Base) Insert(table string) Insert {
	return &InsertBase{ITable: table, Provider: b.Provider}
}

// Update will return a query.Update.
func (b *Base) Update(table string) Update {
	return &UpdateBase{UTable: table, Provider: b.Provider}
}

// Delete will return a query.Delete.
func (b *Base) Delete(table string) Delete {
	return &DeleteBase{DTable: table, Provider: b.Provider}
}

// Open will set the connection settings and check the connection.
// All defined config.PreQuery statements will run here.
func (b *Base) Open() error {
	if b.db == nil {
		return ErrDbNotSet
	}

	b.db.SetMaxIdleConns(b.Config.MaxIdleConnections)
	b.db.SetMaxOpenConns(b.Config.MaxOpenConnections)
	b.db.SetConnMaxLifetime(b.Config.MaxConnLifetime)

	if err := b.db.Ping(); err != nil {
		return err
	}

	for _, v := range b.Config.PreQuery {
		if _, err := b.db.Exec(v); err != nil {
			return fmt.Errorf("query: %w", err)
		}
	}

	return nil
}

// Close the database.
func (b *Base) Close() error {
	if b.db == nil {
		return ErrDbNotSet
	}
	return b.db.Close()
}

// SetLogger for the statements.
func (b *Base) SetLogger(l logger.Manager) {
	b.Logger = l
}

// addColumns is a helper to create a sorted column list out of the value map.
func addColumns(columns []string, values map[string]interface{}) []string {
	if len(columns) == 0 {
		columns = mapper.KeysAsString(values)
	}
	return columns
}
