// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package types sanitizes raw database column types over multiple database drivers.
package types

import (
	"strconv"
	"strings"
)

// sanitized types over multiple databases.
const (
	BOOL     = "Bool"
	INTEGER  = "Integer"
	FLOAT    = "Float"
	TEXT     = "Text"
	TEXTAREA = "TextArea"
	BLOB     = "Blob"
	BINARY   = "Binary"
	TIME     = "Time"
	DATE     = "Date"
	DATETIME = "DateTime"
	SELECT   = "Select"
	UNKNOWN  = "Unknown"
)

// Interface of the types to access the sanitized kind and the raw sql data.
type Interface interface {
	Kind() string
	Raw() string
	Base() string
	Length() int
	Precision() int
	Unsigned() bool
	Equal(Interface) bool
}

// Type is the parsed raw column type.
type Type struct {
	kind      string
	raw       string
	base      string
	length    int
	precision int
	unsigned  bool
}

// Kind returns the sanitized kind.
func (t *Type) Kind() string {
	return t.kind
}

// Raw returns the unmodified database type.
func (t *Type) Raw() string {
	return t.raw
}

// Base returns the lower case type name without length or sign, like varchar.
func (t *Type) Base() string {
	return t.base
}

// Length of the type or 0 if none was defined.
func (t *Type) Length() int {
	return t.length
}

// Precision of the type or 0 if none was defined.
func (t *Type) Precision() int {
	return t.precision
}

// Unsigned reports if the type is unsigned.
func (t *Type) Unsigned() bool {
	return t.unsigned
}

// Equal reports if both types describe the same column type.
// A length is only compared if both types define one, because some databases
// drop display widths (int(11) vs int).
func (t *Type) Equal(o Interface) bool {
	if o == nil {
		return false
	}
	if t.base != o.Base() || t.unsigned != o.Unsigned() {
		return false
	}
	if t.length > 0 && o.Length() > 0 && t.length != o.Length() {
		return false
	}
	if t.precision > 0 && o.Precision() > 0 && t.precision != o.Precision() {
		return false
	}
	return true
}

// Parse a raw database type like "int(10) unsigned", "decimal(8,2)" or "varchar(191)".
func Parse(raw string) Interface {
	t := &Type{raw: raw}
	s := strings.ToLower(strings.TrimSpace(raw))

	if strings.HasSuffix(s, " unsigned") {
		t.unsigned = true
		s = strings.TrimSpace(strings.TrimSuffix(s, " unsigned"))
	}

	if i := strings.Index(s, "("); i != -1 && strings.HasSuffix(s, ")") {
		args := s[i+1 : len(s)-1]
		t.base = strings.TrimSpace(s[:i])
		if t.base != "enum" && t.base != "set" {
			parts := strings.Split(args, ",")
			t.length, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
			if len(parts) > 1 {
				t.precision, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
			}
		}
	} else {
		t.base = s
	}

	t.kind = kind(t.base, t.length)
	return t
}

// kind maps the base type to the sanitized kind.
func kind(base string, length int) string {
	switch base {
	case "bool", "boolean":
		return BOOL
	case "tinyint":
		if length == 1 {
			return BOOL
		}
		return INTEGER
	case "smallint", "mediumint", "int", "integer", "bigint":
		return INTEGER
	case "decimal", "numeric", "float", "double", "real":
		return FLOAT
	case "char", "varchar":
		return TEXT
	case "tinytext", "text", "mediumtext", "longtext", "json":
		return TEXTAREA
	case "tinyblob", "blob", "mediumblob", "longblob":
		return BLOB
	case "binary", "varbinary":
		return BINARY
	case "time":
		return TIME
	case "date":
		return DATE
	case "datetime", "timestamp":
		return DATETIME
	case "enum", "set":
		return SELECT
	}
	return UNKNOWN
}
