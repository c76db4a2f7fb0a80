// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

// Group is a versioned set of columns which can be attached to many tables.
// Its version becomes part of every table version signature.
type Group struct {
	Name    string
	Version string
	Columns []Column
}

// NewGroup creates a column group.
func NewGroup(name string, version string, columns ...Column) *Group {
	return &Group{Name: name, Version: version, Columns: columns}
}

// TimestampGroup returns a group with a created and modified column.
func TimestampGroup() *Group {
	return NewGroup("timestamps", "1", NewCreatedAt(""), NewModifiedAt(""))
}
