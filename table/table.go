// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package table compiles CRUD intents and predicate trees into parameterized sql for a schema.Table.
//
// All values are coerced by the native type of their column before they reach the driver,
// and all read rows are decoded by it. The main table is always aliased with a, a joined
// table with b.
//
// Malformed predicate input never fails: unknown columns are dropped with a warning,
// unknown operators are normalized to = and a leaf without value becomes an existence check.
package table

import (
	"errors"

	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/schema"
)

// Aliases of the main and the joined table.
const (
	Alias     = "a"
	JoinAlias = "b"
)

// Defaults and limits.
const (
	DefaultPerPage   = 20
	MaxPerPage       = 200
	DefaultBatchSize = 100
)

// Error messages.
var (
	ErrSchema            = errors.New("table: schema and builder are mandatory")
	ErrColumnNotFound    = schema.ErrColumnNotFound
	ErrPrimaryKeyMissing = errors.New("table: primary key value is missing")
	ErrNoValues          = errors.New("table: no values to write")
	ErrJoinCondition     = errors.New("table: join condition must be of the form column = column")
	ErrInsertColumns     = errors.New("table: all rows must have the same columns")
)

// Row is a single table row by column name.
type Row = map[string]interface{}

// Table is the query compiler of a single schema.
type Table struct {
	schema    *schema.Table
	builder   query.Builder
	hooks     *hook.Hooks
	logger    logger.Manager
	batchSize int
	perPage   int
}

// Option configures the Table.
type Option func(*Table)

// WithHooks sets the hooks.
func WithHooks(h *hook.Hooks) Option {
	return func(t *Table) {
		t.hooks = h
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Manager) Option {
	return func(t *Table) {
		t.logger = l
	}
}

// WithBatchSize sets the batch size of the Iterator.
func WithBatchSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.batchSize = n
		}
	}
}

// WithPerPage sets the page size returned by PerPage.
func WithPerPage(n int) Option {
	return func(t *Table) {
		if n > 0 && n <= MaxPerPage {
			t.perPage = n
		}
	}
}

// New creates a Table.
func New(s *schema.Table, b query.Builder, opts ...Option) (*Table, error) {
	if s == nil || b == nil {
		return nil, ErrSchema
	}
	t := &Table{schema: s, builder: b, logger: logger.Discard(), batchSize: DefaultBatchSize, perPage: DefaultPerPage}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// PerPage returns the configured page size.
// Paginate does not fall back to it, callers pass it explicitly.
func (t *Table) PerPage() int {
	return t.perPage
}

// Schema returns the schema.
func (t *Table) Schema() *schema.Table {
	return t.schema
}

// Name of the table.
func (t *Table) Name() string {
	return t.schema.Name()
}

// column returns the schema column or an ErrColumnNotFound error.
func (t *Table) column(name string) (schema.Column, error) {
	return t.schema.Column(name)
}

// from returns the aliased table name.
func (t *Table) from() string {
	return t.Name() + " " + Alias
}

// warn logs the message and fires the hook.Warning action.
func (t *Table) warn(msg string, fields logger.Fields) {
	fields["table"] = t.Name()
	t.logger.WithFields(fields).Warning(msg)
	t.hooks.Fire(hook.Warning, t.Name(), hook.Payload{Schema: t.schema, Message: msg})
}

// primaryColumn returns the single primary key column.
func (t *Table) primaryColumn() (string, error) {
	pk := t.schema.PrimaryColumns()
	if len(pk) != 1 {
		return "", ErrPrimaryKeyMissing
	}
	return pk[0], nil
}
