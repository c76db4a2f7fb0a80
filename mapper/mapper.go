// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mapper provides map helpers.
package mapper

import (
	"reflect"
	"sort"
)

// KeysAsString returns all map keys as sorted string slice.
// Non string keys are formatted by reflect.
func KeysAsString(value interface{}) []string {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return nil
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	return keys
}
