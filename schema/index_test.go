// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema_test

import (
	"errors"
	"testing"

	"github.com/patrickascher/tablekit/schema"
	"github.com/stretchr/testify/assert"
)

// TestIndex tests the index columns, keys and statements.
func TestIndex(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		index  *schema.Index
		key    string
		cols   []string
		alter  string
		inline string
	}{
		{index: schema.NewPlainIndex("slug"), key: "slug", cols: []string{"slug"}, alter: "ALTER TABLE `posts` ADD INDEX `slug` (`slug`)", inline: "INDEX `slug` (`slug`)"},
		{index: schema.NewUniqueIndex("uniq_author_slug", "author_id", "slug"), key: "uniq_author_slug", cols: []string{"author_id", "slug"}, alter: "ALTER TABLE `posts` ADD UNIQUE KEY `uniq_author_slug` (`author_id`, `slug`)", inline: "UNIQUE KEY `uniq_author_slug` (`author_id`, `slug`)"},
		{index: schema.NewPrimaryKey("id", "lang"), key: "PRIMARY", cols: []string{"id", "lang"}, alter: "ALTER TABLE `posts` ADD PRIMARY KEY (`id`, `lang`)", inline: "PRIMARY KEY (`id`, `lang`)"},
		{index: schema.NewFulltextIndex("ft_body", "body"), key: "ft_body", cols: []string{"body"}, alter: "ALTER TABLE `posts` ADD FULLTEXT INDEX `ft_body` (`body`)", inline: "FULLTEXT INDEX `ft_body` (`body`)"},
	}

	for _, test := range tests {
		t.Run(test.index.Kind().String(), func(t *testing.T) {
			tbl, err := schema.New(schema.Definition{
				Name:    "posts",
				Columns: []schema.Column{schema.NewInteger("id"), schema.NewString("lang"), schema.NewInteger("author_id"), schema.NewString("slug"), schema.NewText("body")},
				Indexes: []*schema.Index{test.index},
			})
			asserts.NoError(err)
			asserts.Equal("posts", test.index.Table())
			asserts.Equal(test.key, test.index.Key())
			asserts.Equal(test.cols, test.index.Columns())
			alter, err := test.index.AlterTableDefinition()
			asserts.NoError(err)
			asserts.Equal(test.alter, alter)
			inline, err := test.index.Definition()
			asserts.NoError(err)
			asserts.Equal(test.inline, inline)
			asserts.Equal([]*schema.Index{test.index}, tbl.ExplicitIndexes())
		})
	}

	// error: invalid kind
	_, err := schema.NewIndex(schema.IndexKind(42), "x").AlterTableDefinition()
	asserts.True(errors.Is(err, schema.ErrIndexKind))
	asserts.Equal("IndexKind(42)", schema.IndexKind(42).String())
}
