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

// TestColumn_SQLType tests if every kind accepts only its own sql types.
func TestColumn_SQLType(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		column  schema.Column
		allowed []string
		denied  []string
	}{
		{column: schema.NewInteger("c"), allowed: []string{"tinyint", "smallint", "mediumint", "int", "bigint"}, denied: []string{"varchar", "double", "text"}},
		{column: schema.NewFloat("c"), allowed: []string{"float", "double", "decimal"}, denied: []string{"int", "varchar"}},
		{column: schema.NewString("c"), allowed: []string{"char", "varchar"}, denied: []string{"text", "int"}},
		{column: schema.NewText("c"), allowed: []string{"tinytext", "text", "mediumtext", "longtext"}, denied: []string{"varchar", "blob"}},
		{column: schema.NewBlob("c"), allowed: []string{"tinyblob", "blob", "mediumblob", "longblob"}, denied: []string{"text", "varbinary"}},
		{column: schema.NewBinary("c"), allowed: []string{"binary", "varbinary"}, denied: []string{"blob", "char"}},
		{column: schema.NewBoolean("c"), allowed: []string{"tinyint"}, denied: []string{"int", "bit"}},
		{column: schema.NewDateTime("c"), allowed: []string{"datetime", "timestamp", "date"}, denied: []string{"time", "varchar"}},
	}

	for _, test := range tests {
		t.Run(test.column.Kind(), func(t *testing.T) {
			for _, typ := range test.allowed {
				asserts.NoError(test.column.SetSQLType(typ))
				asserts.Equal(typ, test.column.SQLType())
			}
			for _, typ := range test.denied {
				err := test.column.SetSQLType(typ)
				asserts.True(errors.Is(err, schema.ErrSQLType))
				asserts.Contains(err.Error(), typ)
				asserts.Contains(err.Error(), test.column.Kind())
			}
		})
	}
}

// TestColumn_NativeType tests if every kind accepts only its own native types.
func TestColumn_NativeType(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		column  schema.Column
		def     schema.NativeType
		allowed []schema.NativeType
		denied  []schema.NativeType
	}{
		{column: schema.NewInteger("c"), def: schema.Int, denied: []schema.NativeType{schema.String, schema.Bool}},
		{column: schema.NewFloat("c"), def: schema.Float, denied: []schema.NativeType{schema.Int}},
		{column: schema.NewString("c"), def: schema.String, allowed: []schema.NativeType{schema.JSON, schema.DateTime}, denied: []schema.NativeType{schema.Blob}},
		{column: schema.NewText("c"), def: schema.String, allowed: []schema.NativeType{schema.JSON}, denied: []schema.NativeType{schema.Int}},
		{column: schema.NewBlob("c"), def: schema.Blob, denied: []schema.NativeType{schema.String}},
		{column: schema.NewBinary("c"), def: schema.Blob, allowed: []schema.NativeType{schema.String}, denied: []schema.NativeType{schema.JSON}},
		{column: schema.NewBoolean("c"), def: schema.Bool, denied: []schema.NativeType{schema.Int}},
		{column: schema.NewDateTime("c"), def: schema.DateTime, denied: []schema.NativeType{schema.String}},
	}

	for _, test := range tests {
		t.Run(test.column.Kind(), func(t *testing.T) {
			asserts.Equal(test.def, test.column.NativeType())
			for _, typ := range test.allowed {
				asserts.NoError(test.column.SetNativeType(typ))
				asserts.Equal(typ, test.column.NativeType())
			}
			for _, typ := range test.denied {
				err := test.column.SetNativeType(typ)
				asserts.True(errors.Is(err, schema.ErrNativeType))
				asserts.Contains(err.Error(), string(typ))
			}
		})
	}
}

// TestColumn_Definition tests the rendered ddl fragments.
func TestColumn_Definition(t *testing.T) {
	asserts := assert.New(t)

	var tests = []struct {
		name   string
		column schema.Column
		def    string
		index  string
	}{
		{name: "id", column: schema.NewInteger("id", schema.ID()), def: "`id` bigint(20) UNSIGNED NOT NULL AUTO_INCREMENT", index: "PRIMARY KEY (`id`)"},
		{name: "int", column: schema.NewInteger("status", schema.WithSQLType("int"), schema.WithLength(11), schema.WithDefault("1")), def: "`status` int(11) NOT NULL DEFAULT 1"},
		{name: "decimal", column: schema.NewFloat("price", schema.WithSQLType("decimal"), schema.WithLength(10), schema.WithPrecision(2), schema.Unsigned()), def: "`price` decimal(10,2) UNSIGNED NOT NULL"},
		{name: "precision only", column: schema.NewFloat("ratio", schema.WithPrecision(4)), def: "`ratio` double(4) NOT NULL"},
		{name: "string", column: schema.NewString("slug", schema.WithLength(120), schema.Unique()), def: "`slug` varchar(120) NOT NULL", index: "UNIQUE KEY `slug` (`slug`)"},
		{name: "quoted default", column: schema.NewString("state", schema.WithDefault("it's new"), schema.Nullable()), def: "`state` varchar(255) NULL DEFAULT 'it''s new'"},
		{name: "plain index", column: schema.NewString("email", schema.Indexed()), def: "`email` varchar(255) NOT NULL", index: "KEY `email` (`email`)"},
		{name: "primary wins", column: schema.NewString("code", schema.Indexed(), schema.Unique(), schema.Primary()), def: "`code` varchar(255) NOT NULL", index: "PRIMARY KEY (`code`)"},
		{name: "text", column: schema.NewText("body"), def: "`body` longtext NOT NULL"},
		{name: "bool", column: schema.NewBoolean("active"), def: "`active` tinyint(1) NOT NULL DEFAULT 0"},
		{name: "created", column: schema.NewCreatedAt(""), def: "`date_created` datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"},
		{name: "modified", column: schema.NewModifiedAt(""), def: "`date_modified` datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"},
		{name: "keyword lower", column: schema.NewDateTime("seen", schema.WithDefault("current_timestamp")), def: "`seen` datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"},
		{name: "without default", column: schema.NewBoolean("flag", schema.WithoutDefault()), def: "`flag` tinyint(1) NOT NULL"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			asserts.NoError(test.column.Error())
			def, index := test.column.Definition()
			asserts.Equal(test.def, def)
			asserts.Equal(test.index, index)
		})
	}
}

// TestColumn_Capability tests if capability setters fail on columns without the capability.
func TestColumn_Capability(t *testing.T) {
	asserts := assert.New(t)

	// error: text has no length
	err := schema.SetLength(schema.NewText("body"), 10)
	asserts.True(errors.Is(err, schema.ErrCapability))
	asserts.Contains(err.Error(), "TextColumn")

	// error: string is not signable
	asserts.True(errors.Is(schema.SetUnsigned(schema.NewString("s"), true), schema.ErrCapability))
	// error: blob can not be unique
	asserts.True(errors.Is(schema.SetIsUnique(schema.NewBlob("b"), true), schema.ErrCapability))
	// error: float has no auto increment
	asserts.True(errors.Is(schema.SetAutoIncrement(schema.NewFloat("f"), true), schema.ErrCapability))

	// error: recorded by options
	c := schema.NewText("body", schema.Unique(), schema.WithSQLType("varchar"))
	asserts.True(errors.Is(c.Error(), schema.ErrCapability))

	// ok
	i := schema.NewInteger("id", schema.ID())
	asserts.NoError(i.Error())
	asserts.True(schema.IsPrimary(i))
	asserts.True(schema.IsAutoIncrement(i))
	asserts.True(i.Unsigned())
	asserts.False(schema.IsPrimary(schema.NewText("t")))
}

// TestColumn_Default tests the default handling.
func TestColumn_Default(t *testing.T) {
	asserts := assert.New(t)

	c := schema.NewString("name")
	_, ok := c.Default()
	asserts.False(ok)

	c.SetDefault("")
	v, ok := c.Default()
	asserts.True(ok)
	asserts.Equal("", v)
	def, _ := c.Definition()
	asserts.Equal("`name` varchar(255) NOT NULL DEFAULT ''", def)

	c.UnsetDefault()
	_, ok = c.Default()
	asserts.False(ok)

	asserts.True(schema.IsKeyword(" now() "))
	asserts.False(schema.IsKeyword("now"))
}
