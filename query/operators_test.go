// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/patrickascher/tablekit/query"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOperator(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		in  string
		out string
	}{
		{in: "=", out: query.EQ},
		{in: " != ", out: query.NEQ},
		{in: "<>", out: query.NEQ},
		{in: ">=", out: query.GTE},
		{in: "in", out: query.IN},
		{in: "not   in", out: query.NOTIN},
		{in: "LIKE", out: query.EQ},
		{in: "IS NULL", out: query.EQ},
		{in: "; DROP TABLE", out: query.EQ},
		{in: "", out: query.EQ},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			asserts.Equal(test.out, query.NormalizeOperator(test.in))
		})
	}
}

func TestNormalizeLogical(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal(query.OR, query.NormalizeLogical(" or"))
	asserts.Equal(query.AND, query.NormalizeLogical("and"))
	asserts.Equal(query.AND, query.NormalizeLogical("XOR"))
	asserts.Equal(query.AND, query.NormalizeLogical(""))
}

// TestNormalizeOperator_Property checks that any input results in an allowed operator.
func TestNormalizeOperator_Property(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("always allowed", prop.ForAll(
		func(s string) bool {
			return query.IsOperatorAllowed(query.NormalizeOperator(s))
		},
		gen.AnyString(),
	))

	properties.Property("idempotent", prop.ForAll(
		func(s string) bool {
			n := query.NormalizeOperator(s)
			return query.NormalizeOperator(n) == n
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
