// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"errors"

	"github.com/patrickascher/tablekit/query/types"
)

// Error messages.
var (
	ErrTableNotExist = errors.New("query: table does not exist")
)

// PrimaryIndex is the name under which every provider reports the primary key.
const PrimaryIndex = "PRIMARY"

// Column represents a database table column.
type Column struct {
	Table         string
	Name          string
	Position      int
	NullAble      bool
	PrimaryKey    bool
	Unique        bool
	Type          types.Interface
	DefaultValue  NullString
	Length        NullInt
	Autoincrement bool
}
