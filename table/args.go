// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Control keys of the loose input.
const (
	KeyOrder    = "order"
	KeyOrderBy  = "orderby"
	KeyOperator = "query_operator"
	KeyOffset   = "offset"
	KeyTerm     = "term"
	KeyColumn   = "column"
	KeyValue    = "value"
	KeyCompare  = "operator"
	KeyClauses  = "clauses"
)

// Clause is a Leaf or a Group.
type Clause interface {
	clause()
}

// Leaf compares a single column.
// A nil value is compiled to an existence check.
type Leaf struct {
	Column   string
	Value    interface{}
	Operator string
}

func (Leaf) clause() {}

// Group joins its clauses with AND or OR.
type Group struct {
	Operator string
	Clauses  []Clause
}

func (Group) clause() {}

// Args of a read.
type Args struct {
	Where []Clause
	// Operator joins the top level clauses, AND or OR.
	Operator string
	OrderBy  string
	// Order is ASC or DESC, DESC is default.
	Order string
	// Offset replaces the computed offset of the first page.
	Offset int
	// Term searches all searchable columns with LIKE.
	Term string
}

// Parse the loose input of decoded json or form values.
//
// Every entry is a map or a list. A map with a column key is a Leaf
// ({"column": "status", "value": 1, "operator": "="}), a map with a clauses key
// is a Group ({"query_operator": "OR", "clauses": [...]}) and a list is a Group as well.
// Maps without column or clauses carry control keys (order, orderby, query_operator,
// offset and term). Inside a list, only the query_operator control key is used.
// Unknown entries are ignored.
func Parse(raw []interface{}) Args {
	var a Args
	a.Where, a.Operator = parseEntries(raw, &a)
	return a
}

// parseEntries returns the clauses and the query_operator of the entries.
// Control keys are set on args, if not nil.
func parseEntries(raw []interface{}, args *Args) ([]Clause, string) {
	var clauses []Clause
	var operator string

	for _, entry := range raw {
		switch e := entry.(type) {
		case Clause:
			clauses = append(clauses, e)
		case []interface{}:
			c, op := parseEntries(e, nil)
			clauses = append(clauses, Group{Operator: op, Clauses: c})
		case map[string]interface{}:
			_, column := e[KeyColumn]
			_, value := e[KeyValue]
			_, compare := e[KeyCompare]
			if column || value || compare {
				// a leaf without a column is kept, so the compiler reports it.
				clauses = append(clauses, Leaf{Column: toString(e[KeyColumn]), Value: e[KeyValue], Operator: toString(e[KeyCompare])})
				continue
			}
			if sub, ok := e[KeyClauses].([]interface{}); ok {
				c, op := parseEntries(sub, nil)
				if v, ok := e[KeyOperator]; ok {
					op = toString(v)
				}
				clauses = append(clauses, Group{Operator: op, Clauses: c})
				continue
			}
			if v, ok := e[KeyOperator]; ok {
				operator = toString(v)
			}
			if args != nil {
				parseControls(e, args)
			}
		}
	}

	return clauses, operator
}

// parseControls sets the order, orderby, offset and term keys.
func parseControls(e map[string]interface{}, args *Args) {
	if v, ok := e[KeyOrder]; ok {
		args.Order = toString(v)
	}
	if v, ok := e[KeyOrderBy]; ok {
		args.OrderBy = toString(v)
	}
	if v, ok := e[KeyOffset]; ok {
		args.Offset = int(toInt64(v))
	}
	if v, ok := e[KeyTerm]; ok {
		args.Term = toString(v)
	}
}

// normalizeOrder returns ASC for a case insensitive asc, everything else is DESC.
func normalizeOrder(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "ASC") {
		return "ASC"
	}
	return "DESC"
}

// toString converts the value to a string, nil is empty.
func toString(v interface{}) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}
