// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import "errors"

// Error messages.
// Every error is a programmer error and is returned when a column is configured or a table is assembled.
var (
	ErrSQLType         = errors.New("schema: sql type is not supported")
	ErrNativeType      = errors.New("schema: native type is not supported")
	ErrCapability      = errors.New("schema: column does not support")
	ErrDuplicateColumn = errors.New("schema: duplicate column")
	ErrDuplicateIndex  = errors.New("schema: duplicate index name")
	ErrPrimaryKey      = errors.New("schema: only one primary key is allowed")
	ErrIndexOverlap    = errors.New("schema: index columns are already covered")
	ErrIndexKind       = errors.New("schema: invalid index kind")
	ErrIndexName       = errors.New("schema: index name is mandatory")
	ErrColumnNotFound  = errors.New("schema: column does not exist")
	ErrTableName       = errors.New("schema: table name is mandatory")
	ErrStruct          = errors.New("schema: value must be a struct or ptr to a struct")
)
