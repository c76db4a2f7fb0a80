// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slicer provides helpers for string slices.
package slicer

// StringExists returns the position of the first match and true, if the string exists in the slice.
func StringExists(slice []string, search string) (int, bool) {
	for i, s := range slice {
		if s == search {
			return i, true
		}
	}
	return 0, false
}

// StringUnique removes all duplicates, the first occurrence is kept.
func StringUnique(slice []string) []string {
	seen := make(map[string]bool, len(slice))
	rv := make([]string, 0, len(slice))
	for _, s := range slice {
		if !seen[s] {
			seen[s] = true
			rv = append(rv, s)
		}
	}
	return rv
}
