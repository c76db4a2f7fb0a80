// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schema provides the typed table definition.
// Columns are built from kinds with orthogonal capabilities, indexes are derived from column flags or declared explicitly.
// A Table validates all of it on creation and is read-only afterwards.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickascher/tablekit/container"
)

// DefaultVersion is used if a Definition has no version.
const DefaultVersion = "1"

// Definition of a table.
// Indexes only need to contain indexes which are not already declared by column flags.
type Definition struct {
	Name    string
	Version string
	Columns []Column
	Indexes []*Index
	Groups  []*Group
}

// Table is the validated table schema.
type Table struct {
	name    string
	version string

	columns  *container.Container[Column]
	explicit *container.Container[*Index]
	indexes  []*Index
	primary  *Index
	groups   []*Group

	signature string
}

// New validates the definition and creates a Table.
// Every explicit index is bound to the table.
func New(def Definition) (*Table, error) {
	if def.Name == "" {
		return nil, ErrTableName
	}

	t := &Table{name: def.Name, version: def.Version, groups: def.Groups, explicit: &container.Container[*Index]{}}
	if t.version == "" {
		t.version = DefaultVersion
	}

	columns := make([]Column, 0, len(def.Columns))
	columns = append(columns, def.Columns...)
	for _, g := range def.Groups {
		columns = append(columns, g.Columns...)
	}
	if err := t.validateColumns(columns); err != nil {
		return nil, err
	}

	for _, i := range def.Indexes {
		i.bind(t.name)
	}
	if err := t.validateIndexes(def.Indexes); err != nil {
		return nil, err
	}

	t.signature = t.checksum()
	return t, nil
}

// validateColumns fails on the first misconfigured or duplicate column.
func (t *Table) validateColumns(columns []Column) error {
	t.columns = &container.Container[Column]{}
	for _, c := range columns {
		if err := c.Error(); err != nil {
			return fmt.Errorf("schema: column %s: %w", c.Name(), err)
		}
		if err := t.columns.Add(c); err != nil {
			if errors.Is(err, container.ErrDuplicateKey) {
				return fmt.Errorf("%w: %s.%s", ErrDuplicateColumn, t.name, c.Name())
			}
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// validateIndexes derives the column indexes and merges the explicit ones.
// It fails on duplicate names, a second primary key or an already covered column set.
func (t *Table) validateIndexes(explicit []*Index) error {
	sets := make(map[string]string)

	add := func(i *Index) error {
		if i.Kind() == PrimaryIndex && t.primary != nil {
			return fmt.Errorf("%w: %s", ErrPrimaryKey, t.name)
		}
		if _, exists := sets[i.Key()]; exists {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateIndex, t.name, i.Key())
		}
		set := strings.Join(i.Columns(), ",")
		for name, other := range sets {
			if other == set {
				return fmt.Errorf("%w: %s.%s (%s) by %s", ErrIndexOverlap, t.name, i.Key(), set, name)
			}
		}
		sets[i.Key()] = set
		if i.Kind() == PrimaryIndex {
			t.primary = i
		}
		t.indexes = append(t.indexes, i)
		return nil
	}

	// column flags
	for _, c := range t.columns.Items() {
		ix, ok := c.(Indexable)
		if !ok {
			continue
		}
		var i *Index
		switch {
		case ix.IsPrimary():
			i = NewPrimaryKey(c.Name())
		case ix.IsUnique():
			i = NewUniqueIndex(c.Name())
		case ix.IsIndex():
			i = NewPlainIndex(c.Name())
		default:
			continue
		}
		i.bind(t.name)
		if err := add(i); err != nil {
			return err
		}
	}

	// explicit indexes
	for _, i := range explicit {
		if i.Key() == "" {
			return fmt.Errorf("%w: %s (%s)", ErrIndexName, t.name, i.Kind())
		}
		if _, err := i.Definition(); err != nil {
			return err
		}
		for _, col := range i.Columns() {
			if !t.columns.Has(col) {
				return fmt.Errorf("%w: %s.%s (index %s)", ErrColumnNotFound, t.name, col, i.Key())
			}
		}
		if err := add(i); err != nil {
			return err
		}
		// name uniqueness was checked by add.
		_ = t.explicit.Add(i)
	}

	return nil
}

// Name of the table.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the column container.
func (t *Table) Columns() *container.Container[Column] {
	return t.columns
}

// Column returns the column by name.
// Error will return if the column does not exist.
func (t *Table) Column(name string) (Column, error) {
	c, ok := t.columns.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotFound, t.name, name)
	}
	return c, nil
}

// HasColumn reports if the column exists.
func (t *Table) HasColumn(name string) bool {
	return t.columns.Has(name)
}

// Indexes returns all indexes, column derived first.
func (t *Table) Indexes() []*Index {
	rv := make([]*Index, len(t.indexes))
	copy(rv, t.indexes)
	return rv
}

// ExplicitIndexes returns the indexes which were declared explicitly.
func (t *Table) ExplicitIndexes() []*Index {
	return t.explicit.Items()
}

// PrimaryKey returns the primary key or nil if none was declared.
func (t *Table) PrimaryKey() *Index {
	return t.primary
}

// PrimaryColumns returns the primary key columns.
func (t *Table) PrimaryColumns() []string {
	if t.primary == nil {
		return nil
	}
	return t.primary.Columns()
}

// SearchableColumns returns all columns flagged as searchable.
func (t *Table) SearchableColumns() []Column {
	return t.columns.Filter(func(c Column) bool { return c.Searchable() }).Items()
}

// AutoIncrementColumn returns the auto increment primary key column, if any.
func (t *Table) AutoIncrementColumn() (Column, bool) {
	for _, name := range t.PrimaryColumns() {
		if c, ok := t.columns.Get(name); ok && IsAutoIncrement(c) {
			return c, true
		}
	}
	return nil, false
}

// Groups returns the attached column groups.
func (t *Table) Groups() []*Group {
	return t.groups
}

// CreateDefinition returns the CREATE TABLE statement.
// Column indexes and an explicit primary key are rendered inline, all other explicit indexes are added afterwards by the migration.
func (t *Table) CreateDefinition() string {
	var lines, keys []string
	for _, c := range t.columns.Items() {
		col, idx := c.Definition()
		lines = append(lines, col)
		if idx != "" {
			keys = append(keys, idx)
		}
	}
	for _, i := range t.explicit.Items() {
		if i.Kind() == PrimaryIndex {
			// validated on creation.
			def, _ := i.Definition()
			keys = append(keys, def)
		}
	}
	lines = append(lines, keys...)
	return "CREATE TABLE IF NOT EXISTS " + quoteIdentifier(t.name) + " (\n\t" + strings.Join(lines, ",\n\t") + "\n)"
}
