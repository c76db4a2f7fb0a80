// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import "strings"

// NativeType is the semantic type of a column value.
// It decides how values are coerced on write and decoded on read.
type NativeType string

// All native types.
const (
	Int      NativeType = "int"
	String   NativeType = "string"
	Float    NativeType = "float"
	Bool     NativeType = "bool"
	DateTime NativeType = "datetime"
	JSON     NativeType = "json"
	Blob     NativeType = "blob"
)

// DateTimeFormat is the canonical datetime layout of the store.
const DateTimeFormat = "2006-01-02 15:04:05"

// CurrentTimestamp is the most used keyword default.
const CurrentTimestamp = "CURRENT_TIMESTAMP"

// keywords are defaults which must not be quoted.
var keywords = []string{
	"NULL",
	"CURRENT_TIMESTAMP",
	"CURRENT_TIMESTAMP()",
	"CURRENT_DATE",
	"CURRENT_DATE()",
	"CURRENT_TIME",
	"CURRENT_TIME()",
	"LOCALTIME",
	"LOCALTIME()",
	"LOCALTIMESTAMP",
	"LOCALTIMESTAMP()",
	"NOW()",
	"UTC_TIMESTAMP()",
}

// IsKeyword reports whether the default value is a reserved keyword.
func IsKeyword(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, k := range keywords {
		if s == k {
			return true
		}
	}
	return false
}

// quoteIdentifier quotes a table, column or index name.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "") + "`"
}

// quoteIdentifiers quotes and joins the names.
func quoteIdentifiers(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = quoteIdentifier(n)
	}
	return strings.Join(q, ", ")
}

// quoteValue quotes a default value.
func quoteValue(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
