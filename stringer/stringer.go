// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stringer converts between go identifiers and sql identifiers.
package stringer

import (
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/serenize/snaker"
)

// ColumnName returns the snake case column name of a struct field.
// Common initialisms are kept together, ID becomes id and AuthorID becomes author_id.
func ColumnName(field string) string {
	return snaker.CamelToSnake(field)
}

// FieldName returns the camel case struct field of a column name.
// A table alias like a.author_id is removed.
func FieldName(column string) string {
	if i := strings.LastIndex(column, "."); i != -1 {
		column = column[i+1:]
	}
	return snaker.SnakeToCamel(column)
}

// TableName returns the plural snake case table name of a type name.
func TableName(typeName string) string {
	return inflection.Plural(snaker.CamelToSnake(typeName))
}
