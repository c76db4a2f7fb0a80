// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"strings"

	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/query"
)

// Where compiles the predicate tree and the search term of the args.
// All surviving top level fragments are joined with the args operator.
// An empty string returns if nothing survived.
func (t *Table) Where(args Args) (string, []interface{}) {
	var fragments []string
	var values []interface{}

	add := func(f string, v []interface{}) {
		if f != "" {
			fragments = append(fragments, f)
			values = append(values, v...)
		}
	}

	for _, c := range args.Where {
		add(t.compile(c))
	}
	if args.Term != "" {
		add(t.term(args.Term))
	}

	return strings.Join(fragments, " "+query.NormalizeLogical(args.Operator)+" "), values
}

// compile a single clause.
func (t *Table) compile(c Clause) (string, []interface{}) {
	switch v := c.(type) {
	case Leaf:
		return t.leaf(v)
	case *Leaf:
		if v != nil {
			return t.leaf(*v)
		}
	case Group:
		return t.group(v)
	case *Group:
		if v != nil {
			return t.group(*v)
		}
	}
	return "", nil
}

// group renders (child1 op child2 ...). An empty group contributes nothing,
// a group with a single child renders the child only.
func (t *Table) group(g Group) (string, []interface{}) {
	var parts []string
	var values []interface{}
	for _, c := range g.Clauses {
		f, v := t.compile(c)
		if f == "" {
			continue
		}
		parts = append(parts, f)
		values = append(values, v...)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], values
	}
	return "(" + strings.Join(parts, " "+query.NormalizeLogical(g.Operator)+" ") + ")", values
}

// leaf renders column operator placeholder.
func (t *Table) leaf(l Leaf) (string, []interface{}) {
	if l.Column == "" {
		t.warn("predicate without column dropped", logger.Fields{})
		return "", nil
	}
	c, err := t.column(l.Column)
	if err != nil {
		t.warn("predicate with unknown column dropped", logger.Fields{"column": l.Column})
		return "", nil
	}
	name := Alias + "." + c.Name()

	if l.Value == nil {
		return name + " " + query.NEQ + " ''", nil
	}

	op := query.NormalizeOperator(l.Operator)

	if isList(l.Value) {
		items := list(l.Value)
		switch op {
		case query.EQ, query.IN:
			op = query.IN
		case query.NEQ, query.NOTIN:
			op = query.NOTIN
		default:
			if len(items) == 0 {
				t.warn("predicate with empty list dropped", logger.Fields{"column": l.Column})
				return "", nil
			}
			return t.leaf(Leaf{Column: l.Column, Value: items[0], Operator: op})
		}
		if len(items) == 0 {
			t.warn("predicate with empty list dropped", logger.Fields{"column": l.Column})
			return "", nil
		}

		values := make([]interface{}, 0, len(items))
		for _, item := range items {
			v, err := coerce(c, item)
			if err != nil {
				t.warn("predicate with invalid value dropped", logger.Fields{"column": l.Column, "error": err.Error()})
				return "", nil
			}
			values = append(values, v)
		}
		return name + " " + op + " (" + placeholders(len(values)) + ")", values
	}

	v, err := coerce(c, l.Value)
	if err != nil {
		t.warn("predicate with invalid value dropped", logger.Fields{"column": l.Column, "error": err.Error()})
		return "", nil
	}

	switch {
	case v == nil && (op == query.EQ || op == query.IN):
		return name + " " + query.NULL, nil
	case v == nil && (op == query.NEQ || op == query.NOTIN):
		return name + " " + query.NOTNULL, nil
	case v == nil:
		t.warn("predicate with null value dropped", logger.Fields{"column": l.Column, "operator": op})
		return "", nil
	case op == query.IN || op == query.NOTIN:
		return name + " " + op + " (?)", []interface{}{v}
	}
	return name + " " + op + " ?", []interface{}{v}
}

// likeEscape is the escape character of the term search.
// A backslash is not used, mysql treats it as escape inside the string literal itself.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// term renders an OR group of LIKE comparisons over all searchable columns.
// Wildcards in the term are matched literally.
func (t *Table) term(term string) (string, []interface{}) {
	var parts []string
	var values []interface{}
	pattern := "%" + likeReplacer.Replace(term) + "%"
	for _, c := range t.schema.SearchableColumns() {
		parts = append(parts, Alias+"."+c.Name()+" "+query.LIKE+" ? ESCAPE '"+likeEscape+"'")
		values = append(values, pattern)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " "+query.OR+" ") + ")", values
}

// placeholders returns n comma separated placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
