// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mapper_test

import (
	"testing"

	"github.com/patrickascher/tablekit/mapper"
	"github.com/stretchr/testify/assert"
)

// TestKeysAsString tests the sorted keys.
func TestKeysAsString(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal([]string{"a", "b", "c"}, mapper.KeysAsString(map[string]interface{}{"c": 1, "a": 2, "b": 3}))
	asserts.Equal([]string{}, mapper.KeysAsString(map[string]int{}))
	asserts.Nil(mapper.KeysAsString("no map"))
}
