// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/patrickascher/tablekit/schema"
	"github.com/stretchr/testify/assert"
)

func postDefinition() schema.Definition {
	return schema.Definition{
		Name:    "posts",
		Version: "2",
		Columns: []schema.Column{
			schema.NewInteger("id", schema.ID()),
			schema.NewInteger("author_id", schema.Unsigned(), schema.Indexed()),
			schema.NewString("slug", schema.WithLength(120), schema.Unique()),
			schema.NewString("title", schema.Searchable()),
			schema.NewText("body", schema.Searchable()),
			schema.NewBoolean("published"),
		},
		Indexes: []*schema.Index{
			schema.NewPlainIndex("idx_author_published", "author_id", "published"),
		},
	}
}

// TestNew tests a valid table.
func TestNew(t *testing.T) {
	asserts := assert.New(t)

	tbl, err := schema.New(postDefinition())
	asserts.NoError(err)
	asserts.Equal("posts", tbl.Name())
	asserts.Equal([]string{"id", "author_id", "slug", "title", "body", "published"}, tbl.Columns().Keys())
	asserts.True(tbl.HasColumn("slug"))
	asserts.False(tbl.HasColumn("missing"))

	c, err := tbl.Column("title")
	asserts.NoError(err)
	asserts.Equal("title", c.Name())
	_, err = tbl.Column("missing")
	asserts.True(errors.Is(err, schema.ErrColumnNotFound))

	// indexes
	asserts.Equal(schema.PrimaryIndex, tbl.PrimaryKey().Kind())
	asserts.Equal([]string{"id"}, tbl.PrimaryColumns())
	var keys []string
	for _, i := range tbl.Indexes() {
		keys = append(keys, i.Key())
		asserts.Equal("posts", i.Table())
	}
	asserts.Equal([]string{"PRIMARY", "author_id", "slug", "idx_author_published"}, keys)
	asserts.Equal(1, len(tbl.ExplicitIndexes()))

	// searchable
	var searchable []string
	for _, c := range tbl.SearchableColumns() {
		searchable = append(searchable, c.Name())
	}
	asserts.Equal([]string{"title", "body"}, searchable)

	ai, ok := tbl.AutoIncrementColumn()
	asserts.True(ok)
	asserts.Equal("id", ai.Name())

	// create statement
	asserts.Equal("CREATE TABLE IF NOT EXISTS `posts` (\n"+
		"\t`id` bigint(20) UNSIGNED NOT NULL AUTO_INCREMENT,\n"+
		"\t`author_id` bigint(20) UNSIGNED NOT NULL,\n"+
		"\t`slug` varchar(120) NOT NULL,\n"+
		"\t`title` varchar(255) NOT NULL,\n"+
		"\t`body` longtext NOT NULL,\n"+
		"\t`published` tinyint(1) NOT NULL DEFAULT 0,\n"+
		"\tPRIMARY KEY (`id`),\n"+
		"\tKEY `author_id` (`author_id`),\n"+
		"\tUNIQUE KEY `slug` (`slug`)\n"+
		")", tbl.CreateDefinition())
}

// TestNew_Validation tests the structural validation.
func TestNew_Validation(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		name string
		def  schema.Definition
		err  error
	}{
		{name: "table name", def: schema.Definition{}, err: schema.ErrTableName},
		{name: "duplicate column", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewInteger("id"), schema.NewString("id")}}, err: schema.ErrDuplicateColumn},
		{name: "two primary columns", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewInteger("id", schema.Primary()), schema.NewInteger("id2", schema.Primary())}}, err: schema.ErrPrimaryKey},
		{name: "primary column and explicit primary", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewInteger("id", schema.Primary()), schema.NewString("lang")}, Indexes: []*schema.Index{schema.NewPrimaryKey("id", "lang")}}, err: schema.ErrPrimaryKey},
		{name: "overlap with column index", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("slug", schema.Unique())}, Indexes: []*schema.Index{schema.NewPlainIndex("idx_slug", "slug")}}, err: schema.ErrIndexOverlap},
		{name: "overlap explicit", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a"), schema.NewString("b")}, Indexes: []*schema.Index{schema.NewPlainIndex("i1", "a", "b"), schema.NewUniqueIndex("i2", "a", "b")}}, err: schema.ErrIndexOverlap},
		{name: "duplicate index name", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("slug", schema.Indexed()), schema.NewString("b")}, Indexes: []*schema.Index{schema.NewPlainIndex("slug", "b")}}, err: schema.ErrDuplicateIndex},
		{name: "index column missing", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a")}, Indexes: []*schema.Index{schema.NewPlainIndex("i", "missing")}}, err: schema.ErrColumnNotFound},
		{name: "index name missing", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a")}, Indexes: []*schema.Index{schema.NewPlainIndex("", "a")}}, err: schema.ErrIndexName},
		{name: "index kind", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a")}, Indexes: []*schema.Index{schema.NewIndex(schema.IndexKind(9), "i", "a")}}, err: schema.ErrIndexKind},
		{name: "column option error", def: schema.Definition{Name: "t", Columns: []schema.Column{schema.NewText("a", schema.Unique())}}, err: schema.ErrCapability},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tbl, err := schema.New(test.def)
			asserts.Nil(tbl)
			asserts.True(errors.Is(err, test.err), err)
		})
	}

	// ok: same columns in a different order are not overlapping.
	_, err := schema.New(schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a"), schema.NewString("b")}, Indexes: []*schema.Index{schema.NewPlainIndex("i1", "a", "b"), schema.NewPlainIndex("i2", "b", "a")}})
	asserts.NoError(err)
}

// TestTable_Version tests the version signature.
func TestTable_Version(t *testing.T) {
	asserts := assert.New(t)

	tbl, err := schema.New(postDefinition())
	asserts.NoError(err)
	v := tbl.Version()
	asserts.True(strings.HasPrefix(v, "2-"))

	// same definition, same version.
	again, err := schema.New(postDefinition())
	asserts.NoError(err)
	asserts.Equal(v, again.Version())

	// added column
	def := postDefinition()
	def.Columns = append(def.Columns, schema.NewString("subtitle"))
	changed, err := schema.New(def)
	asserts.NoError(err)
	asserts.NotEqual(v, changed.Version())
	asserts.True(strings.HasPrefix(changed.Version(), "2-"))

	// removed column
	def = postDefinition()
	def.Columns = append(def.Columns[:4:4], def.Columns[5])
	changed, err = schema.New(def)
	asserts.NoError(err)
	asserts.NotEqual(v, changed.Version())

	// groups
	def = postDefinition()
	def.Groups = []*schema.Group{schema.TimestampGroup(), schema.NewGroup("audit", "3", schema.NewString("changed_by"))}
	grouped, err := schema.New(def)
	asserts.NoError(err)
	asserts.True(strings.HasPrefix(grouped.Version(), "2.1.3-"))
	asserts.True(grouped.HasColumn(schema.CreatedAtName))
	asserts.True(grouped.HasColumn("changed_by"))
	asserts.Equal(2, len(grouped.Groups()))

	// default version
	plain, err := schema.New(schema.Definition{Name: "t", Columns: []schema.Column{schema.NewString("a")}})
	asserts.NoError(err)
	asserts.True(strings.HasPrefix(plain.Version(), schema.DefaultVersion+"-"))
}

// TestNew_GroupColumns tests that group columns are not written into the definition.
func TestNew_GroupColumns(t *testing.T) {
	asserts := assert.New(t)

	columns := make([]schema.Column, 1, 4)
	columns[0] = schema.NewInteger("id", schema.ID())
	def := schema.Definition{Name: "t", Columns: columns, Groups: []*schema.Group{schema.TimestampGroup()}}

	tbl, err := schema.New(def)
	asserts.NoError(err)
	asserts.True(tbl.HasColumn(schema.CreatedAtName))
	asserts.Equal(1, len(def.Columns))
	for _, c := range columns[1:cap(columns)] {
		asserts.Nil(c)
	}

	// the same definition can be used twice.
	again, err := schema.New(def)
	asserts.NoError(err)
	asserts.Equal(tbl.Columns().Keys(), again.Columns().Keys())
}
