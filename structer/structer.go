// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package structer provides struct helpers.
// Merge is used to apply configuration defaults, ParseTag reads the column struct tags.
package structer

import (
	"strings"

	"github.com/imdario/mergo"
)

// tag separators
const (
	tagSeparator = ";"
	tagKeyValue  = ":"
)

// Merge fills the zero value fields of dst with the values of src.
// Both must be of the same struct type, dst must be a pointer.
// Nested structs are merged field by field.
func Merge(dst interface{}, src interface{}) error {
	return mergo.Merge(dst, src)
}

// ParseTag splits a struct tag into its keys and values.
// Entries are separated by a semicolon, key and value by a colon.
func ParseTag(tag string) map[string]string {

	// trim tag
	tag = strings.TrimSpace(tag)

	// empty tag
	if tag == "" {
		return nil
	}

	// remove trailing separator
	if tag[len(tag)-1:] == tagSeparator {
		tag = tag[0 : len(tag)-1]
	}

	values := make(map[string]string, strings.Count(tag, tagSeparator)+1)
	for _, t := range strings.Split(tag, tagSeparator) {
		kv := strings.SplitN(t, tagKeyValue, 2)
		if len(kv) != 2 {
			kv = append(kv, "")
		}

		kv[0] = strings.TrimSpace(kv[0])
		if kv[0] == "" {
			continue
		}
		values[kv[0]] = strings.TrimSpace(kv[1])
	}
	return values
}
