// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides an embedded sqlite query provider.
// Structural information is read out of sqlite_master and the table pragmas.
//
// An in-memory database only lives as long as its connection, therefore the
// pool is limited to one open and one idle connection which never expires.
// A caller must close sql.Rows before the next statement is executed and must
// not use a second query instance while a transaction is running.
package sqlite3

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/query/condition"
	"github.com/patrickascher/tablekit/query/types"
)

// Memory is the in-memory database name.
const Memory = ":memory:"

type sqlite3 struct {
	query.Base
}

// init registers the provider under sqlite3.
func init() {
	err := query.Register(query.SQLITE3, newSqlite3)
	if err != nil {
		panic(err)
	}
}

// newSqlite3 creates a new query.Provider.
func newSqlite3(config interface{}) (query.Provider, error) {
	s := &sqlite3{}
	s.Base.Provider = s
	s.Base.Config = config.(query.Config)

	return s, nil
}

// Dialect returns sqlite3.
func (s *sqlite3) Dialect() string {
	return query.SQLITE3
}

// Placeholder returns the ? placeholder for the sqlite3 driver.
func (s *sqlite3) Placeholder() condition.Placeholder {
	return condition.Placeholder{Char: condition.PLACEHOLDER}
}

// Config returns the query.Config.
func (s *sqlite3) Config() query.Config {
	return s.Base.Config
}

// QuoteIdentifierChar for sqlite3.
func (s *sqlite3) QuoteIdentifierChar() string {
	return `"`
}

// Open creates a new *sql.DB.
// If no database is configured, an in-memory database is used.
func (s *sqlite3) Open() error {
	if s.Base.Config.Database == "" {
		s.Base.Config.Database = Memory
	}
	if s.Base.Config.Database == Memory || strings.Contains(s.Base.Config.Database, "mode=memory") {
		s.Base.Config.MaxOpenConnections = 1
		s.Base.Config.MaxIdleConnections = 1
		s.Base.Config.MaxConnLifetime = 0
	}

	db, err := sql.Open("sqlite3", s.Base.Config.Database)
	if err != nil {
		return err
	}

	s.SetDB(db)

	// call base Open function.
	return s.Base.Open()
}

// Query creates a new sqlite3 instance.
// The *sql.DB, config and logger are shared, the transaction is not.
func (s *sqlite3) Query() query.Query {
	instance := sqlite3{}
	instance.Base = query.Base{Config: s.Base.Config, Logger: s.Base.Logger}
	instance.Base.Provider = &instance // self ref for TX
	instance.SetDB(s.DB())

	return &instance
}

// Information will return a query.Information.
// It runs in the transaction of the instance, if one exists.
func (s *sqlite3) Information(table string) query.Information {
	return &information{table: table, sqlite: s}
}

// information helper struct.
type information struct {
	table  string
	sqlite *sqlite3
}

// count is a helper to check if the statement has at least one row.
func (i *information) count(stmt string, args ...interface{}) (bool, error) {
	row, err := i.sqlite.First(stmt, args)
	if err != nil {
		return false, err
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return false, fmt.Errorf("sqlite3: %w", err)
	}
	return n > 0, nil
}

// Exists reports if the table exists.
func (i *information) Exists() (bool, error) {
	return i.count("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", i.table)
}

// HasColumn reports if the column exists.
func (i *information) HasColumn(column string) (bool, error) {
	return i.count("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", i.table, column)
}

// HasIndex reports if the index exists.
// The primary key is reported as query.PrimaryIndex.
func (i *information) HasIndex(index string) (bool, error) {
	if index == query.PrimaryIndex {
		return i.count("SELECT COUNT(*) FROM pragma_table_info(?) WHERE pk > 0", i.table)
	}
	return i.count("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND tbl_name = ? AND name = ?", i.table, index)
}

// Describe the defined table.
// Error will return if the table does not exist.
func (i *information) Describe(columns ...string) ([]query.Column, error) {
	unique, err := i.uniqueColumns()
	if err != nil {
		return nil, err
	}

	rows, err := i.sqlite.All(`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, []interface{}{i.table})
	if err != nil {
		return nil, fmt.Errorf("sqlite3: %w", err)
	}
	defer rows.Close()

	filter := make(map[string]bool, len(columns))
	for _, c := range columns {
		filter[c] = true
	}

	var cols []query.Column
	var primaries int
	for rows.Next() {
		c := query.Column{Table: i.table}
		var t string
		var notNull bool
		var pk int
		if err := rows.Scan(&c.Position, &c.Name, &t, &notNull, &c.DefaultValue, &pk); err != nil {
			return nil, fmt.Errorf("sqlite3: %w", err)
		}
		if pk > 0 {
			primaries++
		}
		if len(filter) > 0 && !filter[c.Name] {
			continue
		}

		c.Position++
		c.NullAble = !notNull && pk == 0
		c.PrimaryKey = pk > 0
		c.Unique = unique[c.Name]
		c.Type = types.Parse(t)
		if c.Type.Length() > 0 {
			c.Length = query.NewNullInt(int64(c.Type.Length()), true)
		}
		// INTEGER PRIMARY KEY is an alias of the rowid.
		c.Autoincrement = pk > 0 && strings.EqualFold(t, "integer")
		cols = append(cols, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite3: %w", err)
	}

	// a composite primary key is no rowid alias.
	if primaries > 1 {
		for n := range cols {
			cols[n].Autoincrement = false
		}
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("sqlite3: %s: %w", i.table, query.ErrTableNotExist)
	}

	return cols, nil
}

// uniqueColumns returns all columns which have a single column unique index.
func (i *information) uniqueColumns() (map[string]bool, error) {
	rows, err := i.sqlite.All(`SELECT il.name, ii.name FROM pragma_index_list(?) AS il JOIN pragma_index_info(il.name) AS ii WHERE il."unique" = 1 AND il.origin != 'pk'`, []interface{}{i.table})
	if err != nil {
		return nil, fmt.Errorf("sqlite3: %w", err)
	}
	defer rows.Close()

	indexes := map[string][]string{}
	for rows.Next() {
		var index, column string
		if err := rows.Scan(&index, &column); err != nil {
			return nil, fmt.Errorf("sqlite3: %w", err)
		}
		indexes[index] = append(indexes[index], column)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite3: %w", err)
	}

	rv := map[string]bool{}
	for _, cols := range indexes {
		if len(cols) == 1 {
			rv[cols[0]] = true
		}
	}
	return rv, nil
}
