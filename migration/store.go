// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"fmt"

	"github.com/patrickascher/tablekit/query"
)

// Store executes the structural statements and answers the existence checks.
type Store interface {
	// Exec a ddl statement.
	Exec(stmt string) error
	// TableExists reports if the table exists.
	TableExists(table string) (bool, error)
	// ColumnExists reports if the column exists.
	ColumnExists(table string, column string) (bool, error)
	// IndexExists reports if the index exists. The primary key is named PRIMARY.
	IndexExists(table string, index string) (bool, error)
	// Columns returns the live columns of the table.
	Columns(table string) ([]query.Column, error)
	// Quote the identifier.
	Quote(name string) string
}

// NewStore returns a Store which uses the query builder.
func NewStore(b query.Builder) Store {
	return &builderStore{builder: b}
}

type builderStore struct {
	builder query.Builder
}

// Exec a ddl statement.
func (s *builderStore) Exec(stmt string) error {
	if _, err := s.builder.Query().Raw(stmt); err != nil {
		return fmt.Errorf("migration: %w", err)
	}
	return nil
}

// TableExists reports if the table exists.
func (s *builderStore) TableExists(table string) (bool, error) {
	return s.builder.Query().Information(table).Exists()
}

// ColumnExists reports if the column exists.
func (s *builderStore) ColumnExists(table string, column string) (bool, error) {
	return s.builder.Query().Information(table).HasColumn(column)
}

// IndexExists reports if the index exists.
func (s *builderStore) IndexExists(table string, index string) (bool, error) {
	return s.builder.Query().Information(table).HasIndex(index)
}

// Columns returns the live columns of the table.
func (s *builderStore) Columns(table string) ([]query.Column, error) {
	return s.builder.Query().Information(table).Describe()
}

// Quote the identifier.
func (s *builderStore) Quote(name string) string {
	return s.builder.QuoteIdentifier(name)
}
