// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sqlite3_test

import (
	"errors"
	"testing"

	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/query/condition"
	_ "github.com/patrickascher/tablekit/query/sqlite3"
	"github.com/patrickascher/tablekit/query/types"
	"github.com/stretchr/testify/assert"
)

const ddl = `CREATE TABLE "robots" (
	"id" INTEGER PRIMARY KEY,
	"name" varchar(100) NOT NULL,
	"serial" varchar(20) NOT NULL UNIQUE,
	"speed" int(10) NULL DEFAULT 1
)`

// newBuilder opens a fresh in-memory database and creates the test table.
func newBuilder(t *testing.T) query.Builder {
	b, err := query.New(query.SQLITE3, query.Config{Provider: query.SQLITE3})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = b.Close() })

	q := b.Query()
	if _, err = q.Raw(ddl); err != nil {
		t.Fatal(err)
	}
	if _, err = q.Raw(`CREATE INDEX "idx_speed" ON "robots" ("speed")`); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSqlite3_Config(t *testing.T) {
	asserts := assert.New(t)
	b := newBuilder(t)

	asserts.Equal(query.SQLITE3, b.Dialect())
	asserts.Equal(":memory:", b.Config().Database)
	asserts.Equal(1, b.Config().MaxOpenConnections)
	asserts.Equal(`"robots"`, b.QuoteIdentifier("robots"))
	asserts.Equal(`"a"."id"`, b.QuoteIdentifier("a.id"))
	asserts.Equal(`"robots" "a"`, b.QuoteIdentifier("robots AS a"))
}

func TestSqlite3_Information(t *testing.T) {
	asserts := assert.New(t)
	b := newBuilder(t)
	q := b.Query()

	exists, err := q.Information("robots").Exists()
	asserts.NoError(err)
	asserts.True(exists)

	exists, err = q.Information("humans").Exists()
	asserts.NoError(err)
	asserts.False(exists)

	exists, err = q.Information("robots").HasColumn("serial")
	asserts.NoError(err)
	asserts.True(exists)

	exists, err = q.Information("robots").HasColumn("color")
	asserts.NoError(err)
	asserts.False(exists)

	exists, err = q.Information("robots").HasIndex(query.PrimaryIndex)
	asserts.NoError(err)
	asserts.True(exists)

	exists, err = q.Information("robots").HasIndex("idx_speed")
	asserts.NoError(err)
	asserts.True(exists)

	exists, err = q.Information("robots").HasIndex("idx_name")
	asserts.NoError(err)
	asserts.False(exists)

	// describe all
	cols, err := q.Information("robots").Describe()
	asserts.NoError(err)
	if asserts.Equal(4, len(cols)) {
		asserts.Equal("id", cols[0].Name)
		asserts.Equal(1, cols[0].Position)
		asserts.True(cols[0].PrimaryKey)
		asserts.True(cols[0].Autoincrement)
		asserts.False(cols[0].NullAble)

		asserts.Equal("name", cols[1].Name)
		asserts.Equal(types.TEXT, cols[1].Type.Kind())
		asserts.Equal(int64(100), cols[1].Length.Int64)
		asserts.False(cols[1].Unique)

		asserts.True(cols[2].Unique)

		asserts.Equal(types.INTEGER, cols[3].Type.Kind())
		asserts.True(cols[3].NullAble)
		asserts.Equal("1", cols[3].DefaultValue.String)
	}

	// describe filtered
	cols, err = q.Information("robots").Describe("speed")
	asserts.NoError(err)
	if asserts.Equal(1, len(cols)) {
		asserts.Equal("speed", cols[0].Name)
		asserts.Equal(4, cols[0].Position)
	}

	// table does not exist
	cols, err = q.Information("humans").Describe()
	asserts.Error(err)
	asserts.True(errors.Is(err, query.ErrTableNotExist))
	asserts.Nil(cols)
}

func TestSqlite3_CRUD(t *testing.T) {
	asserts := assert.New(t)
	b := newBuilder(t)

	// insert with last id
	var id int64
	res, err := b.Query().Insert("robots").
		Values([]map[string]interface{}{{"name": "R2", "serial": "D2", "speed": 3}}).
		LastInsertedID(&id).
		Exec()
	asserts.NoError(err)
	asserts.Equal(1, len(res))
	asserts.Equal(int64(1), id)

	// last id must be a ptr
	_, err = b.Query().Insert("robots").
		Values([]map[string]interface{}{{"name": "C3", "serial": "PO", "speed": 1}}).
		LastInsertedID(id).
		Exec()
	asserts.Equal(query.ErrLastID, err)

	// batch insert
	res, err = b.Query().Insert("robots").
		Batch(2).
		Values([]map[string]interface{}{
			{"name": "a", "serial": "1", "speed": 1},
			{"name": "b", "serial": "2", "speed": 2},
			{"name": "c", "serial": "3", "speed": 3},
		}).Exec()
	asserts.NoError(err)
	asserts.Equal(2, len(res))

	// render
	stmts, args, err := b.Query().Insert("robots").Batch(2).Values([]map[string]interface{}{
		{"name": "a", "serial": "1"},
		{"name": "b", "serial": "2"},
		{"name": "c", "serial": "3"},
	}).String()
	asserts.NoError(err)
	asserts.Equal([]string{
		`INSERT INTO "robots" ("name", "serial") VALUES (?, ?), (?, ?)`,
		`INSERT INTO "robots" ("name", "serial") VALUES (?, ?)`,
	}, stmts)
	asserts.Equal([][]interface{}{{"a", "1", "b", "2"}, {"c", "3"}}, args)

	// select
	sel := b.Query().Select("robots").Columns("id", "name").Where("speed IN (?)", []int{1, 3}).Order("-id").Limit(10).Offset(1)
	stmt, args2, err := sel.String()
	asserts.NoError(err)
	asserts.Equal(`SELECT "id", "name" FROM "robots" WHERE speed IN (?, ?) ORDER BY id DESC LIMIT 10 OFFSET 1`, stmt)
	asserts.Equal([]interface{}{1, 3}, args2)

	rows, err := sel.All()
	asserts.NoError(err)
	var names []string
	for rows.Next() {
		var rID int
		var name string
		asserts.NoError(rows.Scan(&rID, &name))
		names = append(names, name)
	}
	asserts.NoError(rows.Close())
	asserts.Equal([]string{"a", "R2"}, names)

	// first
	row, err := b.Query().Select("robots").Columns(query.DbExpr("COUNT(*)")).First()
	asserts.NoError(err)
	var count int
	asserts.NoError(row.Scan(&count))
	asserts.Equal(4, count)

	// update
	upd := b.Query().Update("robots").Set(map[string]interface{}{"speed": 10, "name": "fast"}).Where("id = ?", 1)
	stmt, args2, err = upd.String()
	asserts.NoError(err)
	asserts.Equal(`UPDATE "robots" SET "name" = ?, "speed" = ? WHERE id = ?`, stmt)
	asserts.Equal([]interface{}{"fast", 10, 1}, args2)
	r, err := upd.Exec()
	asserts.NoError(err)
	affected, _ := r.RowsAffected()
	asserts.Equal(int64(1), affected)

	// update without values
	_, err = b.Query().Update("robots").Exec()
	asserts.Error(err)

	// delete
	r, err = b.Query().Delete("robots").Where("speed > ?", 2).Exec()
	asserts.NoError(err)
	affected, _ = r.RowsAffected()
	asserts.Equal(int64(2), affected)

	// join render
	stmt, _, err = b.Query().Select("robots a").Join(condition.LEFT, "owners b", "a.id = b.robot_id").Where("a.id = ?", 1).String()
	asserts.NoError(err)
	asserts.Equal(`SELECT * FROM "robots" "a" LEFT JOIN "owners" "b" ON a.id = b.robot_id WHERE a.id = ?`, stmt)
}

func TestSqlite3_Tx(t *testing.T) {
	asserts := assert.New(t)
	b := newBuilder(t)

	// rollback
	tx, err := b.Query().Tx()
	asserts.NoError(err)
	asserts.True(tx.HasTx())
	_, err = tx.Insert("robots").Values([]map[string]interface{}{{"name": "x", "serial": "x"}}).Exec()
	asserts.NoError(err)
	// builder returns the same tx
	asserts.True(b.Query(tx).HasTx())
	_, err = b.Query(tx).Tx()
	asserts.Equal(query.ErrTxExists, err)
	asserts.NoError(tx.Rollback())
	asserts.Equal(query.ErrNoTx, tx.Rollback())

	row, err := b.Query().Select("robots").Columns(query.DbExpr("COUNT(*)")).First()
	asserts.NoError(err)
	var count int
	asserts.NoError(row.Scan(&count))
	asserts.Equal(0, count)

	// batch insert is all or nothing
	_, err = b.Query().Insert("robots").Batch(1).Values([]map[string]interface{}{
		{"name": "a", "serial": "1"},
		{"name": "b", "serial": "1"},
	}).Exec()
	asserts.Error(err)

	row, err = b.Query().Select("robots").Columns(query.DbExpr("COUNT(*)")).First()
	asserts.NoError(err)
	asserts.NoError(row.Scan(&count))
	asserts.Equal(0, count)

	// commit
	tx, err = b.Query().Tx()
	asserts.NoError(err)
	_, err = tx.Insert("robots").Values([]map[string]interface{}{{"name": "x", "serial": "x"}}).Exec()
	asserts.NoError(err)
	asserts.NoError(tx.Commit())

	row, err = b.Query().Select("robots").Columns(query.DbExpr("COUNT(*)")).First()
	asserts.NoError(err)
	asserts.NoError(row.Scan(&count))
	asserts.Equal(1, count)

	// finish with an error rolls back
	tx, err = b.Query().Tx()
	asserts.NoError(err)
	_, err = tx.Insert("robots").Values([]map[string]interface{}{{"name": "y", "serial": "y"}}).Exec()
	asserts.NoError(err)
	failure := errors.New("failure")
	asserts.Equal(failure, tx.Finish(failure))
	asserts.False(tx.HasTx())

	row, err = b.Query().Select("robots").Columns(query.DbExpr("COUNT(*)")).First()
	asserts.NoError(err)
	asserts.NoError(row.Scan(&count))
	asserts.Equal(1, count)
}
