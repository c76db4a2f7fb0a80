// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mysql provides the mysql query provider.
// Structural information is read out of the information_schema.
package mysql

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/query/condition"
	"github.com/patrickascher/tablekit/query/types"
)

type mysql struct {
	query.Base
}

// init registers the provider under mysql.
func init() {
	err := query.Register(query.MYSQL, newMysql)
	if err != nil {
		panic(err)
	}
}

// newMysql creates a new query.Provider.
func newMysql(config interface{}) (query.Provider, error) {
	mysqlBuilder := &mysql{}
	mysqlBuilder.Base.Provider = mysqlBuilder
	mysqlBuilder.Base.Config = config.(query.Config)

	return mysqlBuilder, nil
}

// Dialect returns mysql.
func (m *mysql) Dialect() string {
	return query.MYSQL
}

// Placeholder returns the ? placeholder for the mysql driver.
func (m *mysql) Placeholder() condition.Placeholder {
	return condition.Placeholder{Char: condition.PLACEHOLDER}
}

// Config returns the query.Config.
func (m *mysql) Config() query.Config {
	return m.Base.Config
}

// QuoteIdentifierChar for mysql.
func (m *mysql) QuoteIdentifierChar() string {
	return "`"
}

// defaults of the connection.
const (
	defaultPort    = 3306
	defaultTimeout = 30 * time.Second
)

// Open creates a new *sql.DB.
func (m *mysql) Open() error {
	db, err := sql.Open("mysql", dsn(m.Base.Config))
	if err != nil {
		return err
	}

	m.SetDB(db)

	// call base Open function.
	return m.Base.Open()
}

// dsn of the config. Times are parsed into time.Time and the charset is utf8mb4.
func dsn(cfg query.Config) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	c := driver.NewConfig()
	c.User = cfg.Username
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	c.DBName = cfg.Database
	c.ParseTime = true
	c.Timeout = cfg.Timeout
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

// Query creates a new mysql instance.
// The *sql.DB, config and logger are shared, the transaction is not.
func (m *mysql) Query() query.Query {
	instance := mysql{}
	instance.Base = query.Base{Config: m.Base.Config, Logger: m.Base.Logger}
	instance.Base.Provider = &instance // self ref for TX
	instance.SetDB(m.DB())

	return &instance
}

// Information will return a query.Information.
// It runs in the transaction of the instance, if one exists.
func (m *mysql) Information(table string) query.Information {
	return &information{table: table, mysql: m}
}

// information helper struct.
type information struct {
	table string
	mysql *mysql
}

// count is a helper to return the COUNT(*) of an information_schema select.
func (i *information) count(table string, where ...[2]interface{}) (bool, error) {
	sel := i.mysql.Select(table).
		Columns(query.DbExpr("COUNT(*)")).
		Where("TABLE_SCHEMA = ?", i.mysql.Base.Config.Database).
		Where("TABLE_NAME = ?", i.table)
	for _, w := range where {
		sel.Where(w[0].(string), w[1])
	}

	row, err := sel.First()
	if err != nil {
		return false, err
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return false, fmt.Errorf("mysql: %w", err)
	}
	return n > 0, nil
}

// Exists reports if the table exists.
func (i *information) Exists() (bool, error) {
	return i.count("information_schema.TABLES")
}

// HasColumn reports if the column exists.
func (i *information) HasColumn(column string) (bool, error) {
	return i.count("information_schema.COLUMNS", [2]interface{}{"COLUMN_NAME = ?", column})
}

// HasIndex reports if the index exists.
func (i *information) HasIndex(index string) (bool, error) {
	return i.count("information_schema.STATISTICS", [2]interface{}{"INDEX_NAME = ?", index})
}

// Describe the defined table.
// Error will return if the table does not exist.
func (i *information) Describe(columns ...string) ([]query.Column, error) {
	sel := i.mysql.Select("information_schema.COLUMNS c")
	sel.Columns("c.COLUMN_NAME",
		"c.ORDINAL_POSITION",
		query.DbExpr("IF(c.IS_NULLABLE='YES',1,0) AS N"),
		query.DbExpr("IF(c.COLUMN_KEY='PRI',1,0) AS K"),
		query.DbExpr("IF(c.COLUMN_KEY='UNI',1,0) AS U"),
		"c.COLUMN_TYPE",
		"c.COLUMN_DEFAULT",
		"c.CHARACTER_MAXIMUM_LENGTH",
		query.DbExpr("IF(c.EXTRA LIKE '%auto_increment%',1,0) AS A"),
	).
		Where("c.TABLE_SCHEMA = ?", i.mysql.Base.Config.Database).
		Where("c.TABLE_NAME = ?", i.table).
		Order("c.ORDINAL_POSITION")

	if len(columns) > 0 {
		sel.Where("c.COLUMN_NAME IN (?)", columns)
	}

	rows, err := sel.All()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []query.Column
	for rows.Next() {
		c := query.Column{Table: i.table}
		var t string
		if err := rows.Scan(&c.Name, &c.Position, &c.NullAble, &c.PrimaryKey, &c.Unique, &t, &c.DefaultValue, &c.Length, &c.Autoincrement); err != nil {
			return nil, fmt.Errorf("mysql: %w", err)
		}
		c.Type = types.Parse(t)
		cols = append(cols, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("mysql: %w", err)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("mysql: %s: %w", i.table, query.ErrTableNotExist)
	}

	return cols, nil
}
