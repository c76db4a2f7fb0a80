// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package condition

import (
	"strconv"
	"strings"
)

// PLACEHOLDER character.
const PLACEHOLDER = "?"

// Placeholder is used to ensure an unique placeholder for different database drivers.
type Placeholder struct {
	Numeric bool   // must be true if the database uses something like $1,$2,...
	Char    string // database placeholder character
	counter int
}

// next returns the placeholder.
// If the placeholder is numeric, the counter will be added as well.
func (p *Placeholder) next() string {
	if p.Numeric {
		p.counter++
		return p.Char + strconv.Itoa(p.counter)
	}
	return p.Char
}

// ReplacePlaceholders will replace the ? placeholder with the driver placeholder.
func ReplacePlaceholders(stmt string, p *Placeholder) string {
	if p.Char == "" || (!p.Numeric && p.Char == PLACEHOLDER) {
		return stmt
	}
	parts := strings.Split(stmt, PLACEHOLDER)
	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(parts)-1 {
			b.WriteString(p.next())
		}
	}
	return b.String()
}
