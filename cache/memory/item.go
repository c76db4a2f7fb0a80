// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memory

import (
	"time"

	"github.com/patrickascher/tablekit/cache"
)

// item implements the cache.Item interface.
type item struct {
	name string
	val  interface{}

	exp     time.Duration // expiration time
	created time.Time     // creation time
}

// Name returns the cache name.
func (i *item) Name() string {
	return i.name
}

// Value returns the cache.
func (i *item) Value() interface{} {
	return i.val
}

// Created returns the cache creation time.
func (i *item) Created() time.Time {
	return i.created
}

// Expiration returns the cache life time.
func (i *item) Expiration() time.Duration {
	return i.exp
}

// expired reports if the lifetime is over at the given time.
func (i item) expired(now time.Time) bool {
	if i.exp == cache.NoExpiration {
		return false
	}
	return now.Sub(i.created) > i.exp
}
