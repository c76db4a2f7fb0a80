// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table_test

import (
	"sync"
	"testing"

	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/query"
	_ "github.com/patrickascher/tablekit/query/sqlite3"
	"github.com/patrickascher/tablekit/schema"
	"github.com/patrickascher/tablekit/table"
	"github.com/stretchr/testify/assert"
)

const postsDDL = `CREATE TABLE "posts" (
	"id" INTEGER PRIMARY KEY AUTOINCREMENT,
	"slug" varchar(120) NOT NULL UNIQUE,
	"title" varchar(255) NOT NULL DEFAULT '',
	"body" text NULL,
	"status" int NOT NULL DEFAULT 0,
	"published" tinyint(1) NOT NULL DEFAULT 0,
	"meta" text NULL,
	"created" datetime NULL,
	"author_id" int NULL,
	"avatar" blob NULL
)`

const authorsDDL = `CREATE TABLE "authors" (
	"id" INTEGER PRIMARY KEY,
	"name" varchar(100) NOT NULL
)`

// postDefinition mirrors postsDDL.
func postDefinition() schema.Definition {
	return schema.Definition{
		Name: "posts",
		Columns: []schema.Column{
			schema.NewInteger("id", schema.ID()),
			schema.NewString("slug", schema.WithLength(120), schema.Unique()),
			schema.NewString("title", schema.Searchable()),
			schema.NewText("body", schema.Nullable(), schema.Searchable()),
			schema.NewInteger("status"),
			schema.NewBoolean("published"),
			schema.NewText("meta", schema.WithNativeType(schema.JSON), schema.Nullable()),
			schema.NewDateTime("created", schema.Nullable()),
			schema.NewInteger("author_id", schema.Nullable()),
			schema.NewBlob("avatar", schema.Nullable()),
		},
	}
}

// recorder collects the payloads of the query hooks.
type recorder struct {
	mutex  sync.Mutex
	before []hook.Payload
	after  []hook.Payload
	warn   []string
}

func (r *recorder) last() hook.Payload {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.before) == 0 {
		return hook.Payload{}
	}
	return r.before[len(r.before)-1]
}

func (r *recorder) reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.before, r.after, r.warn = nil, nil, nil
}

func (r *recorder) hooks() *hook.Hooks {
	h := hook.New()
	h.On(hook.BeforeQuery, "posts", func(p hook.Payload) {
		r.mutex.Lock()
		defer r.mutex.Unlock()
		r.before = append(r.before, p)
	})
	h.On(hook.AfterQuery, "posts", func(p hook.Payload) {
		r.mutex.Lock()
		defer r.mutex.Unlock()
		r.after = append(r.after, p)
	})
	h.On(hook.Warning, hook.Global, func(p hook.Payload) {
		r.mutex.Lock()
		defer r.mutex.Unlock()
		r.warn = append(r.warn, p.Message)
	})
	return h
}

// newTable opens a fresh in-memory database with the posts and authors tables.
func newTable(t *testing.T, opts ...table.Option) (*table.Table, query.Builder, *recorder) {
	b, err := query.New(query.SQLITE3, query.Config{Provider: query.SQLITE3})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = b.Close() })

	for _, ddl := range []string{postsDDL, authorsDDL} {
		if _, err = b.Query().Raw(ddl); err != nil {
			t.Fatal(err)
		}
	}

	s, err := schema.New(postDefinition())
	if err != nil {
		t.Fatal(err)
	}

	r := &recorder{}
	tbl, err := table.New(s, b, append([]table.Option{table.WithHooks(r.hooks())}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return tbl, b, r
}

// seed inserts the posts a, b and c with the status 1, 2 and 1.
func seed(t *testing.T, tbl *table.Table) {
	err := tbl.InsertMany([]table.Row{
		{"slug": "a", "title": "Alpha", "status": 1},
		{"slug": "b", "title": "Beta", "status": 2},
		{"slug": "c", "title": "Gamma", "status": 1},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNew(t *testing.T) {
	asserts := assert.New(t)

	tbl, err := table.New(nil, nil)
	asserts.Nil(tbl)
	asserts.Equal(table.ErrSchema, err)

	tbl, _, _ = newTable(t)
	asserts.Equal("posts", tbl.Name())
	asserts.Equal("posts", tbl.Schema().Name())
}
