// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package structer_test

import (
	"testing"

	"github.com/patrickascher/tablekit/structer"
	"github.com/stretchr/testify/assert"
)

type pool struct {
	MaxOpen int
	MaxIdle int
}

type settings struct {
	Provider string
	Pool     pool
	PreQuery []string
}

func TestMerge(t *testing.T) {
	asserts := assert.New(t)

	defaults := settings{Provider: "sqlite3", Pool: pool{MaxOpen: 10, MaxIdle: 2}, PreQuery: []string{"PRAGMA foreign_keys = ON"}}

	// ok: zero fields and nested zero fields are filled
	dst := settings{Provider: "mysql", Pool: pool{MaxOpen: 50}}
	asserts.NoError(structer.Merge(&dst, defaults))
	asserts.Equal(settings{Provider: "mysql", Pool: pool{MaxOpen: 50, MaxIdle: 2}, PreQuery: []string{"PRAGMA foreign_keys = ON"}}, dst)

	// ok: set slices are kept
	dst = settings{PreQuery: []string{"SET NAMES utf8mb4"}}
	asserts.NoError(structer.Merge(&dst, defaults))
	asserts.Equal([]string{"SET NAMES utf8mb4"}, dst.PreQuery)

	// error: dst is no pointer
	asserts.Error(structer.Merge(dst, defaults))
}

func TestParseTag(t *testing.T) {
	asserts := assert.New(t)

	// empty tag
	asserts.Equal(map[string]string(nil), structer.ParseTag(" "))

	// single flag with trailing separator
	asserts.Equal(map[string]string{"primary": ""}, structer.ParseTag(" primary; "))

	// flags and values, empty entries are skipped
	val := structer.ParseTag("column:slug;; length:120 ;unique")
	asserts.Equal(map[string]string{"column": "slug", "length": "120", "unique": ""}, val)

	// the value may contain the key value separator
	val = structer.ParseTag("default:12:00:00;onupdate")
	asserts.Equal("12:00:00", val["default"])
	_, ok := val["onupdate"]
	asserts.True(ok)
}
