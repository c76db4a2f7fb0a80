// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql"
	"errors"
	"fmt"
)

// Error messages.
var (
	ErrNoTx     = errors.New("query: no tx exists")
	ErrTxExists = errors.New("query: tx already exists")
)

// TransactionBase holds the sql.Tx of a query instance.
// The tx is released after commit or rollback, the query instance can start a new one afterwards.
type TransactionBase struct {
	Tx *sql.Tx
}

// HasTx reports if a transaction is running.
func (t *TransactionBase) HasTx() bool {
	return t.Tx != nil
}

// Commit the running transaction.
func (t *TransactionBase) Commit() error {
	return t.end((*sql.Tx).Commit)
}

// Rollback the running transaction.
func (t *TransactionBase) Rollback() error {
	return t.end((*sql.Tx).Rollback)
}

// Finish commits the transaction if err is nil, otherwise it is rolled back.
// The given err returns unchanged, a failed rollback is added to its message.
func (t *TransactionBase) Finish(err error) error {
	if err == nil {
		return t.Commit()
	}
	if rErr := t.Rollback(); rErr != nil {
		return fmt.Errorf("%w (rollback: %s)", err, rErr)
	}
	return err
}

// end calls fn on the tx and releases it.
func (t *TransactionBase) end(fn func(*sql.Tx) error) error {
	if t.Tx == nil {
		return ErrNoTx
	}
	tx := t.Tx
	t.Tx = nil
	if err := fn(tx); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
