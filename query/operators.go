// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import "strings"

// all allowed comparison operators.
const (
	EQ      = "="
	NEQ     = "!="
	GT      = ">"
	GTE     = ">="
	LT      = "<"
	LTE     = "<="
	IN      = "IN"
	NOTIN   = "NOT IN"
	LIKE    = "LIKE"
	NULL    = "IS NULL"
	NOTNULL = "IS NOT NULL"
)

// logical operators.
const (
	AND = "AND"
	OR  = "OR"
)

// IsOperatorAllowed will return false if the comparison operator is not implemented.
// LIKE and the NULL checks are only used internally and are not allowed as user input.
func IsOperatorAllowed(s string) bool {
	switch s {
	case EQ, NEQ, GT, GTE, LT, LTE, IN, NOTIN:
		return true
	default:
		return false
	}
}

// NormalizeOperator trims and upper cases the operator.
// Whitespace between NOT and IN is collapsed and <> is mapped to !=.
// Any not allowed operator is normalized to =.
func NormalizeOperator(s string) string {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if s == "<>" {
		s = NEQ
	}
	if !IsOperatorAllowed(s) {
		return EQ
	}
	return s
}

// NormalizeLogical returns OR for a case insensitive "or", everything else is AND.
func NormalizeLogical(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), OR) {
		return OR
	}
	return AND
}
