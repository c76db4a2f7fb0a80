// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

// Default names of the timestamp columns.
const (
	CreatedAtName  = "date_created"
	ModifiedAtName = "date_modified"
)

// IntegerColumn represents tinyint, smallint, mediumint, int and bigint.
type IntegerColumn struct {
	Base
	length
	sign
	autoIncrement
	index
}

// NewInteger creates a bigint(20) column.
func NewInteger(name string, opts ...Option) *IntegerColumn {
	c := &IntegerColumn{}
	c.Base = NewBase(c, "IntegerColumn", name,
		[]string{"bigint", "tinyint", "smallint", "mediumint", "int"},
		[]NativeType{Int})
	c.SetLength(20)
	return apply(c, opts)
}

// FloatColumn represents float, double and decimal.
type FloatColumn struct {
	Base
	length
	precision
	sign
	index
}

// NewFloat creates a double column.
func NewFloat(name string, opts ...Option) *FloatColumn {
	c := &FloatColumn{}
	c.Base = NewBase(c, "FloatColumn", name,
		[]string{"double", "float", "decimal"},
		[]NativeType{Float})
	return apply(c, opts)
}

// StringColumn represents char and varchar.
type StringColumn struct {
	Base
	length
	index
}

// NewString creates a varchar(255) column.
func NewString(name string, opts ...Option) *StringColumn {
	c := &StringColumn{}
	c.Base = NewBase(c, "StringColumn", name,
		[]string{"varchar", "char"},
		[]NativeType{String, JSON, DateTime})
	c.SetLength(255)
	return apply(c, opts)
}

// TextColumn represents tinytext, text, mediumtext and longtext.
// Text columns can only be indexed by an explicit fulltext index.
type TextColumn struct {
	Base
}

// NewText creates a longtext column.
func NewText(name string, opts ...Option) *TextColumn {
	c := &TextColumn{}
	c.Base = NewBase(c, "TextColumn", name,
		[]string{"longtext", "tinytext", "text", "mediumtext"},
		[]NativeType{String, JSON})
	return apply(c, opts)
}

// BlobColumn represents tinyblob, blob, mediumblob and longblob.
type BlobColumn struct {
	Base
}

// NewBlob creates a longblob column.
func NewBlob(name string, opts ...Option) *BlobColumn {
	c := &BlobColumn{}
	c.Base = NewBase(c, "BlobColumn", name,
		[]string{"longblob", "tinyblob", "blob", "mediumblob"},
		[]NativeType{Blob})
	return apply(c, opts)
}

// BinaryColumn represents binary and varbinary.
type BinaryColumn struct {
	Base
	length
	index
}

// NewBinary creates a varbinary(255) column.
func NewBinary(name string, opts ...Option) *BinaryColumn {
	c := &BinaryColumn{}
	c.Base = NewBase(c, "BinaryColumn", name,
		[]string{"varbinary", "binary"},
		[]NativeType{Blob, String})
	c.SetLength(255)
	return apply(c, opts)
}

// BooleanColumn is a tinyint(1) with the native bool type.
type BooleanColumn struct {
	Base
	length
	index
}

// NewBoolean creates a tinyint(1) column with the default 0.
func NewBoolean(name string, opts ...Option) *BooleanColumn {
	c := &BooleanColumn{}
	c.Base = NewBase(c, "BooleanColumn", name,
		[]string{"tinyint"},
		[]NativeType{Bool})
	c.SetLength(1)
	c.SetDefault("0")
	return apply(c, opts)
}

// DateTimeColumn represents datetime, timestamp and date.
type DateTimeColumn struct {
	Base
	index
}

// NewDateTime creates a datetime column.
func NewDateTime(name string, opts ...Option) *DateTimeColumn {
	c := &DateTimeColumn{}
	c.Base = NewBase(c, "DateTimeColumn", name,
		[]string{"datetime", "timestamp", "date"},
		[]NativeType{DateTime})
	return apply(c, opts)
}

// NewCreatedAt creates a not nullable datetime with the default CURRENT_TIMESTAMP.
// If name is empty, CreatedAtName is used.
func NewCreatedAt(name string, opts ...Option) *DateTimeColumn {
	if name == "" {
		name = CreatedAtName
	}
	c := NewDateTime(name)
	c.SetDefault(CurrentTimestamp)
	return apply(c, opts)
}

// NewModifiedAt creates a not nullable datetime which is set to CURRENT_TIMESTAMP on every update.
// If name is empty, ModifiedAtName is used.
func NewModifiedAt(name string, opts ...Option) *DateTimeColumn {
	if name == "" {
		name = ModifiedAtName
	}
	c := NewDateTime(name)
	c.SetDefault(CurrentTimestamp)
	c.SetOnUpdate(CurrentTimestamp)
	return apply(c, opts)
}
