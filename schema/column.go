// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Column interface.
// Every column kind embeds Base and adds the capabilities it supports.
type Column interface {
	Key() string
	Name() string
	Kind() string

	SQLType() string
	SetSQLType(string) error
	NativeType() NativeType
	SetNativeType(NativeType) error

	Nullable() bool
	SetNullable(bool)
	Default() (string, bool)
	SetDefault(string)
	UnsetDefault()
	OnUpdate() string
	SetOnUpdate(string)
	Searchable() bool
	SetSearchable(bool)

	Definition() (string, string)
	Error() error

	base() *Base
}

// Base holds the attributes every column kind shares.
// Custom column kinds must embed it and create it with NewBase.
type Base struct {
	self Column
	kind string

	name       string
	sqlType    string
	nativeType NativeType
	nullable   bool
	def        *string
	onUpdate   string
	searchable bool

	allowedSQL    []string
	allowedNative []NativeType

	err error
}

// NewBase creates the shared column part.
// self must be the embedding column, kind is used in error messages.
// The first allowed sql and native type are the defaults.
func NewBase(self Column, kind string, name string, sqlTypes []string, nativeTypes []NativeType) Base {
	b := Base{self: self, kind: kind, name: name, allowedSQL: sqlTypes, allowedNative: nativeTypes}
	if len(sqlTypes) > 0 {
		b.sqlType = sqlTypes[0]
	}
	if len(nativeTypes) > 0 {
		b.nativeType = nativeTypes[0]
	}
	return b
}

func (b *Base) base() *Base {
	return b
}

// Key returns the column name. It is used by the container.
func (b *Base) Key() string {
	return b.name
}

// Name of the column.
func (b *Base) Name() string {
	return b.name
}

// Kind returns the column kind name.
func (b *Base) Kind() string {
	return b.kind
}

// SQLType of the column.
func (b *Base) SQLType() string {
	return b.sqlType
}

// SetSQLType sets the sql type.
// Error will return if the type is not allowed for the column kind.
func (b *Base) SetSQLType(t string) error {
	t = strings.ToLower(strings.TrimSpace(t))
	for _, allowed := range b.allowedSQL {
		if t == allowed {
			b.sqlType = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q (%s)", ErrSQLType, t, b.kind)
}

// NativeType of the column.
func (b *Base) NativeType() NativeType {
	return b.nativeType
}

// SetNativeType sets the native type.
// Error will return if the type is not allowed for the column kind.
func (b *Base) SetNativeType(t NativeType) error {
	for _, allowed := range b.allowedNative {
		if t == allowed {
			b.nativeType = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q (%s)", ErrNativeType, t, b.kind)
}

// Nullable reports if NULL is allowed.
func (b *Base) Nullable() bool {
	return b.nullable
}

// SetNullable allows NULL values.
func (b *Base) SetNullable(n bool) {
	b.nullable = n
}

// Default returns the default value and if one was set.
func (b *Base) Default() (string, bool) {
	if b.def == nil {
		return "", false
	}
	return *b.def, true
}

// SetDefault sets the default value.
// Keywords like CURRENT_TIMESTAMP are rendered unquoted.
func (b *Base) SetDefault(d string) {
	b.def = &d
}

// UnsetDefault removes the default value.
func (b *Base) UnsetDefault() {
	b.def = nil
}

// OnUpdate returns the ON UPDATE clause.
func (b *Base) OnUpdate() string {
	return b.onUpdate
}

// SetOnUpdate sets the ON UPDATE clause.
func (b *Base) SetOnUpdate(s string) {
	b.onUpdate = s
}

// Searchable reports if the column is used for term searches.
func (b *Base) Searchable() bool {
	return b.searchable
}

// SetSearchable marks the column for term searches.
func (b *Base) SetSearchable(s bool) {
	b.searchable = s
}

// Error returns the first error which happened while the column was configured by options.
func (b *Base) Error() error {
	return b.err
}

// addError keeps the first error.
func (b *Base) addError(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Definition returns the column ddl fragment and the index fragment.
// The index fragment is empty if the column declares no index.
func (b *Base) Definition() (string, string) {
	c := b.self
	if c == nil {
		c = &plain{Base: b}
	}

	def := quoteIdentifier(b.name) + " " + b.sqlType

	// length and precision
	l, hasLength := c.(Lengthable)
	p, hasPrecision := c.(Precisionable)
	switch {
	case hasLength && hasPrecision && l.Length() > 0 && p.Precision() > 0:
		def += "(" + strconv.Itoa(l.Length()) + "," + strconv.Itoa(p.Precision()) + ")"
	case hasLength && l.Length() > 0:
		def += "(" + strconv.Itoa(l.Length()) + ")"
	case hasPrecision && p.Precision() > 0:
		def += "(" + strconv.Itoa(p.Precision()) + ")"
	}

	if s, ok := c.(Signable); ok && s.Unsigned() {
		def += " UNSIGNED"
	}

	if b.nullable {
		def += " NULL"
	} else {
		def += " NOT NULL"
	}

	if IsAutoIncrement(c) {
		def += " AUTO_INCREMENT"
	}

	if v, ok := b.Default(); ok {
		def += " DEFAULT " + b.defaultValue(v)
	}

	if b.onUpdate != "" {
		def += " ON UPDATE " + b.onUpdate
	}

	return def, indexDefinition(c)
}

// defaultValue quotes the value unless it is a keyword or a numeric native type.
func (b *Base) defaultValue(v string) string {
	if IsKeyword(v) {
		return strings.ToUpper(strings.TrimSpace(v))
	}
	switch b.nativeType {
	case Int, Bool, Float:
		return v
	}
	return quoteValue(v)
}

// indexDefinition renders the column index. Primary wins over unique, unique over a plain index.
func indexDefinition(c Column) string {
	i, ok := c.(Indexable)
	if !ok {
		return ""
	}
	name := quoteIdentifier(c.Name())
	switch {
	case i.IsPrimary():
		return "PRIMARY KEY (" + name + ")"
	case i.IsUnique():
		return "UNIQUE KEY " + name + " (" + name + ")"
	case i.IsIndex():
		return "KEY " + name + " (" + name + ")"
	}
	return ""
}

// plain wraps a Base without self reference.
type plain struct {
	*Base
}
