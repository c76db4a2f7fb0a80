// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/patrickascher/tablekit/cache"
	"github.com/patrickascher/tablekit/query"
)

// Options is the key value store of the persisted versions.
type Options interface {
	// Get returns the value and false if the name does not exist.
	Get(name string) (string, bool, error)
	// Set creates or replaces the value.
	Set(name string, value string) error
	// Delete the value. A not existing name is no error.
	Delete(name string) error
}

// cachePrefix of the memory options.
const cachePrefix = "options"

// NewMemoryOptions returns an Options store which lives in the given cache.
func NewMemoryOptions(c cache.Manager) Options {
	return &memoryOptions{cache: c}
}

type memoryOptions struct {
	cache cache.Manager
}

// Get returns the value and false if the name does not exist.
func (o *memoryOptions) Get(name string) (string, bool, error) {
	if !o.cache.Exist(cachePrefix, name) {
		return "", false, nil
	}
	item, err := o.cache.Get(cachePrefix, name)
	if err != nil {
		return "", false, fmt.Errorf("migration: %w", err)
	}
	v, _ := item.Value().(string)
	return v, true, nil
}

// Set creates or replaces the value.
func (o *memoryOptions) Set(name string, value string) error {
	return o.cache.Set(cachePrefix, name, value, cache.NoExpiration)
}

// Delete the value.
func (o *memoryOptions) Delete(name string) error {
	if !o.cache.Exist(cachePrefix, name) {
		return nil
	}
	return o.cache.Delete(cachePrefix, name)
}

// DefaultOptionsTable is the table name of the database options.
const DefaultOptionsTable = "options"

// NewDBOptions returns an Options store which is persisted in a name/value table.
// The table is created if it does not exist.
func NewDBOptions(b query.Builder, table string) (Options, error) {
	if table == "" {
		table = DefaultOptionsTable
	}
	o := &dbOptions{builder: b, table: table}

	stmt := "CREATE TABLE IF NOT EXISTS " + b.QuoteIdentifier(table) + " (" +
		b.QuoteIdentifier("name") + " varchar(191) NOT NULL, " +
		b.QuoteIdentifier("value") + " longtext NULL, " +
		"PRIMARY KEY (" + b.QuoteIdentifier("name") + "))"
	if _, err := b.Query().Raw(stmt); err != nil {
		return nil, fmt.Errorf("migration: %w", err)
	}
	return o, nil
}

type dbOptions struct {
	builder query.Builder
	table   string
}

// Get returns the value and false if the name does not exist.
func (o *dbOptions) Get(name string) (string, bool, error) {
	row, err := o.builder.Query().Select(o.table).Columns("value").Where("name = ?", name).First()
	if err != nil {
		return "", false, fmt.Errorf("migration: %w", err)
	}

	var v query.NullString
	if err = row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("migration: %w", err)
	}
	return v.String, true, nil
}

// Set creates or replaces the value.
func (o *dbOptions) Set(name string, value string) error {
	_, exists, err := o.Get(name)
	if err != nil {
		return err
	}

	if exists {
		_, err = o.builder.Query().Update(o.table).Set(map[string]interface{}{"value": value}).Where("name = ?", name).Exec()
	} else {
		_, err = o.builder.Query().Insert(o.table).Values([]map[string]interface{}{{"name": name, "value": value}}).Exec()
	}
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}
	return nil
}

// Delete the value.
func (o *dbOptions) Delete(name string) error {
	if _, err := o.builder.Query().Delete(o.table).Where("name = ?", name).Exec(); err != nil {
		return fmt.Errorf("migration: %w", err)
	}
	return nil
}
