// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import "fmt"

// PrimaryKeyName is the store name of every primary key.
const PrimaryKeyName = "PRIMARY"

// IndexKind defines the index type.
type IndexKind int

// Allowed index kinds.
const (
	PlainIndex IndexKind = iota + 1
	UniqueIndex
	PrimaryIndex
	FulltextIndex
)

// String returns the sql keyword of the kind.
func (k IndexKind) String() string {
	switch k {
	case PlainIndex:
		return "INDEX"
	case UniqueIndex:
		return "UNIQUE KEY"
	case PrimaryIndex:
		return "PRIMARY KEY"
	case FulltextIndex:
		return "FULLTEXT INDEX"
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

// Index describes a single table index.
type Index struct {
	name    string
	columns []string
	kind    IndexKind
	table   string
}

// NewIndex creates an index of any kind.
// If no columns are given, the index name is used as column.
func NewIndex(kind IndexKind, name string, columns ...string) *Index {
	return &Index{kind: kind, name: name, columns: columns}
}

// NewPlainIndex creates an INDEX.
func NewPlainIndex(name string, columns ...string) *Index {
	return NewIndex(PlainIndex, name, columns...)
}

// NewUniqueIndex creates a UNIQUE KEY.
func NewUniqueIndex(name string, columns ...string) *Index {
	return NewIndex(UniqueIndex, name, columns...)
}

// NewPrimaryKey creates a PRIMARY KEY over the columns.
func NewPrimaryKey(columns ...string) *Index {
	return NewIndex(PrimaryIndex, "", columns...)
}

// NewFulltextIndex creates a FULLTEXT INDEX.
func NewFulltextIndex(name string, columns ...string) *Index {
	return NewIndex(FulltextIndex, name, columns...)
}

// Name of the index. It is empty for a primary key unless set.
func (i *Index) Name() string {
	return i.name
}

// Key returns the store name of the index.
// Primary keys are always named PRIMARY.
func (i *Index) Key() string {
	if i.kind == PrimaryIndex {
		return PrimaryKeyName
	}
	return i.name
}

// Columns returns the ordered index columns.
// If none were set, the index name is returned as single column.
func (i *Index) Columns() []string {
	if len(i.columns) == 0 {
		return []string{i.name}
	}
	rv := make([]string, len(i.columns))
	copy(rv, i.columns)
	return rv
}

// Kind of the index.
func (i *Index) Kind() IndexKind {
	return i.kind
}

// Table returns the owning table name.
func (i *Index) Table() string {
	return i.table
}

// bind sets the owning table.
func (i *Index) bind(table string) {
	i.table = table
}

// keyword returns the kind keyword including the quoted name.
func (i *Index) keyword() (string, error) {
	switch i.kind {
	case PrimaryIndex:
		return i.kind.String(), nil
	case PlainIndex, UniqueIndex, FulltextIndex:
		return i.kind.String() + " " + quoteIdentifier(i.name), nil
	}
	return "", fmt.Errorf("%w: %s", ErrIndexKind, i.kind)
}

// AlterTableDefinition returns the statement to add the index to its table.
func (i *Index) AlterTableDefinition() (string, error) {
	kw, err := i.keyword()
	if err != nil {
		return "", err
	}
	return "ALTER TABLE " + quoteIdentifier(i.table) + " ADD " + kw + " (" + quoteIdentifiers(i.Columns()) + ")", nil
}

// Definition returns the inline fragment for a CREATE TABLE statement.
func (i *Index) Definition() (string, error) {
	kw, err := i.keyword()
	if err != nil {
		return "", err
	}
	return kw + " (" + quoteIdentifiers(i.Columns()) + ")", nil
}
