// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/patrickascher/tablekit/table"
	"github.com/stretchr/testify/assert"
)

func TestTable_Insert(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, r := newTable(t)

	id, err := tbl.Insert(table.Row{"slug": "a", "title": "Alpha", "unknown": 1})
	asserts.NoError(err)
	asserts.Equal(int64(1), id)
	asserts.Equal([]string{"unknown field skipped"}, r.warn)

	// the auto increment value is ignored.
	id, err = tbl.Insert(table.Row{"id": 10, "slug": "b", "title": "Beta"})
	asserts.NoError(err)
	asserts.Equal(int64(2), id)

	p := r.last()
	asserts.Equal(`INSERT INTO "posts" ("slug", "title") VALUES (?, ?)`, p.Query)
	asserts.Equal([]interface{}{"b", "Beta"}, p.Args)

	// no known field
	_, err = tbl.Insert(table.Row{"unknown": 1})
	asserts.Equal(table.ErrNoValues, err)

	// unique violation
	_, err = tbl.Insert(table.Row{"slug": "a", "title": "Alpha"})
	asserts.Error(err)
}

func TestTable_InsertMany(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, r := newTable(t)

	seed(t, tbl)
	p := r.last()
	asserts.Equal(`INSERT INTO "posts" ("slug", "status", "title") VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)`, p.Query)

	n, err := tbl.Count(table.Args{})
	asserts.NoError(err)
	asserts.Equal(3, n)

	err = tbl.InsertMany([]table.Row{{"slug": "d", "title": "D"}, {"slug": "e"}})
	asserts.Equal(table.ErrInsertColumns, err)

	asserts.Equal(table.ErrNoValues, tbl.InsertMany(nil))
}

func TestTable_Update(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, r := newTable(t)
	seed(t, tbl)

	n, err := tbl.Update(table.Row{"id": 2, "title": "Bravo", "unknown": true})
	asserts.NoError(err)
	asserts.Equal(int64(1), n)

	p := r.last()
	asserts.Equal(`UPDATE "posts" SET "title" = ? WHERE id = ?`, p.Query)
	asserts.Equal("id = ?", p.Where)

	row, err := tbl.Get(2)
	asserts.NoError(err)
	asserts.Equal("Bravo", row["title"])

	// not existing
	n, err = tbl.Update(table.Row{"id": 99, "title": "x"})
	asserts.NoError(err)
	asserts.Equal(int64(0), n)

	_, err = tbl.Update(table.Row{"title": "x"})
	asserts.Equal(table.ErrPrimaryKeyMissing, err)

	_, err = tbl.Update(table.Row{"id": 1})
	asserts.Equal(table.ErrNoValues, err)
}

func TestTable_UpdateMany(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, _ := newTable(t)
	seed(t, tbl)

	// the second update violates the not null constraint.
	err := tbl.UpdateMany([]table.Row{
		{"id": 1, "title": "x"},
		{"id": 2, "title": nil},
		{"id": 3, "title": "z"},
	})
	asserts.Error(err)

	rows, err := tbl.All(table.Args{}).Collect()
	asserts.NoError(err)
	if asserts.Equal(3, len(rows)) {
		asserts.Equal("Alpha", rows[0]["title"])
		asserts.Equal("Beta", rows[1]["title"])
		asserts.Equal("Gamma", rows[2]["title"])
	}

	// missing key rolls back as well.
	err = tbl.UpdateMany([]table.Row{{"id": 1, "title": "x"}, {"title": "y"}})
	asserts.Equal(table.ErrPrimaryKeyMissing, err)
	row, err := tbl.Get(1)
	asserts.NoError(err)
	asserts.Equal("Alpha", row["title"])

	err = tbl.UpdateMany([]table.Row{{"id": 1, "title": "x"}, {"id": 3, "title": "z"}})
	asserts.NoError(err)
	rows, err = tbl.AllBy("slug", []string{"a", "c"})
	asserts.NoError(err)
	if asserts.Equal(2, len(rows)) {
		asserts.Equal("x", rows[0]["title"])
		asserts.Equal("z", rows[1]["title"])
	}
}

func TestTable_Upsert(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, _ := newTable(t)

	id, err := tbl.Upsert(table.Row{"slug": "a", "title": "Alpha"})
	asserts.NoError(err)
	asserts.Equal(int64(1), id)

	// empty key inserts
	id, err = tbl.Upsert(table.Row{"id": 0, "slug": "b", "title": "Beta"})
	asserts.NoError(err)
	asserts.Equal(int64(2), id)

	id, err = tbl.Upsert(table.Row{"id": "", "slug": "c", "title": "Gamma"})
	asserts.NoError(err)
	asserts.Equal(int64(3), id)

	// update
	id, err = tbl.Upsert(table.Row{"id": 1, "title": "Alpha 2"})
	asserts.NoError(err)
	asserts.Equal(int64(0), id)

	row, err := tbl.Get(1)
	asserts.NoError(err)
	asserts.Equal("Alpha 2", row["title"])
	asserts.Equal("a", row["slug"])
}

func TestTable_Delete(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, r := newTable(t)
	seed(t, tbl)
	_, err := tbl.Insert(table.Row{"slug": "d", "title": "Delta", "status": 2})
	asserts.NoError(err)

	n, err := tbl.Delete(1)
	asserts.NoError(err)
	asserts.Equal(int64(1), n)
	asserts.Equal(`DELETE FROM "posts" WHERE id = ?`, r.last().Query)

	n, err = tbl.Delete("b", table.ByColumn("slug"), table.AndWhere("status = ?", 1))
	asserts.NoError(err)
	asserts.Equal(int64(0), n)
	asserts.Equal(`DELETE FROM "posts" WHERE slug = ? AND status = ?`, r.last().Query)

	n, err = tbl.DeleteMany([]interface{}{2, 3})
	asserts.NoError(err)
	asserts.Equal(int64(2), n)
	asserts.Equal(`DELETE FROM "posts" WHERE id IN (?, ?)`, r.last().Query)

	_, err = tbl.Delete(nil)
	asserts.Equal(table.ErrNoValues, err)

	_, err = tbl.Delete([]int{})
	asserts.Equal(table.ErrNoValues, err)

	_, err = tbl.Delete(1, table.ByColumn("missing"))
	asserts.True(errors.Is(err, table.ErrColumnNotFound))

	count, err := tbl.Count(table.Args{})
	asserts.NoError(err)
	asserts.Equal(1, count)
}

func TestTable_RoundTrip(t *testing.T) {
	asserts := assert.New(t)
	tbl, _, _ := newTable(t)

	created := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	id, err := tbl.Insert(table.Row{
		"slug":      "a",
		"title":     "Alpha",
		"status":    "3",
		"published": true,
		"meta":      map[string]interface{}{"tags": []string{"go"}, "rank": 1},
		"created":   created,
		"avatar":    []byte{0x00, 0xff, 0x10},
		"body":      nil,
	})
	asserts.NoError(err)

	row, err := tbl.Get(id)
	asserts.NoError(err)
	asserts.Equal(id, row["id"])
	asserts.Equal(int64(3), row["status"])
	asserts.Equal(true, row["published"])
	asserts.Equal(map[string]interface{}{"tags": []interface{}{"go"}, "rank": float64(1)}, row["meta"])
	if tm, ok := row["created"].(time.Time); asserts.True(ok) {
		asserts.True(created.Equal(tm))
	}
	asserts.Equal([]byte{0x00, 0xff, 0x10}, row["avatar"])
	asserts.Nil(row["body"])
	asserts.Nil(row["author_id"])

	// raw json and string dates
	_, err = tbl.Update(table.Row{"id": id, "meta": json.RawMessage(`[1,2]`), "created": "2022-01-02", "published": "0"})
	asserts.NoError(err)

	row, err = tbl.Get(id)
	asserts.NoError(err)
	asserts.Equal([]interface{}{float64(1), float64(2)}, row["meta"])
	asserts.Equal(false, row["published"])
	if tm, ok := row["created"].(time.Time); asserts.True(ok) {
		asserts.True(time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC).Equal(tm))
	}
}
