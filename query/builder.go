// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package query provides a simple programmatically sql query builder.
// It is the low level executor used by the migration engine and the table compiler.
//
// Features: unique placeholder for all database drivers, batching for large inserts,
// quoted identifiers, structural introspection and statement logging with durations.
package query

import (
	"fmt"

	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/registry"
)

// internals
const (
	registryPrefix = "tablekit:query:"
	dbExpr         = "!"
)

// All predefined providers are listed here.
const (
	MYSQL   = "mysql"
	SQLITE3 = "sqlite3"
)

type providerFn func(interface{}) (Provider, error)

type builder struct {
	provider Provider
}

// Register the query provider.
func Register(name string, p providerFn) error {
	return registry.Set(registryPrefix+name, p)
}

// New creates a new builder instance with the given query provider and configuration.
// Error will return if the query provider was not registered, the provider factory or the provider Open function returns one.
func New(name string, config interface{}) (Builder, error) {
	r, err := registry.Get(registryPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	p, err := r.(providerFn)(config)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	if err = p.Open(); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return &builder{provider: p}, nil
}

// SetLogger to the query provider.
func (b *builder) SetLogger(l logger.Manager) {
	b.provider.SetLogger(l)
}

// Query will return a new query instance.
// If a Tx is given, it will be returned instead.
func (b *builder) Query(tx ...Tx) Query {
	if len(tx) == 1 && tx[0] != nil {
		if q, ok := tx[0].(Query); ok {
			return q
		}
	}
	return b.provider.Query()
}

// Config will return the builder config.
func (b *builder) Config() Config {
	return b.provider.Config()
}

// Dialect returns the provider name.
func (b *builder) Dialect() string {
	return b.provider.Dialect()
}

// QuoteIdentifier quotes the name with the providers quote character.
func (b *builder) QuoteIdentifier(name string) string {
	return b.provider.QuoteIdentifier(name)
}

// Close the database connection.
func (b *builder) Close() error {
	return b.provider.Close()
}

// DbExpr expressions will not get quoted.
func DbExpr(s string) string {
	return dbExpr + s
}
