// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import "time"

// Config of a database connection.
// For sqlite3 the Database is the file name or dsn, an empty one opens an in-memory database.
type Config struct {
	Provider string `validate:"required,oneof=mysql sqlite3"`

	// network settings, mysql only.
	Username string
	Password string
	Host     string
	Port     int `validate:"gte=0,lte=65535"`
	Timeout  time.Duration

	Database string `validate:"required_if=Provider mysql"`

	// pool settings, zero means the driver default.
	MaxIdleConnections int           `validate:"gte=0"`
	MaxOpenConnections int           `validate:"gte=0"`
	MaxConnLifetime    time.Duration `validate:"gte=0"`

	// PreQuery statements are executed after the connection was opened.
	PreQuery []string
}
