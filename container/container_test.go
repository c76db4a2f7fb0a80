// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package container_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/patrickascher/tablekit/container"
	"github.com/stretchr/testify/assert"
)

type item struct {
	name  string
	value int
}

func (i item) Key() string {
	return i.name
}

// TestNew tests:
// - insertion order.
// - duplicate and empty keys.
func TestNew(t *testing.T) {
	asserts := assert.New(t)

	c, err := container.New(item{"b", 1}, item{"a", 2}, item{"c", 3})
	asserts.NoError(err)
	asserts.Equal([]string{"b", "a", "c"}, c.Keys())
	asserts.Equal(3, c.Len())

	// error: duplicate key
	c, err = container.New(item{"a", 1}, item{"a", 2})
	asserts.Error(err)
	asserts.True(errors.Is(err, container.ErrDuplicateKey))
	asserts.Nil(c)

	// error: empty key
	_, err = container.New(item{"", 1})
	asserts.Equal(container.ErrEmptyKey, err)
}

// TestContainer_Get tests lookup, filter and map.
func TestContainer_Get(t *testing.T) {
	asserts := assert.New(t)

	c, err := container.New(item{"a", 1}, item{"b", 2}, item{"c", 3})
	asserts.NoError(err)

	v, ok := c.Get("b")
	asserts.True(ok)
	asserts.Equal(2, v.value)
	asserts.True(c.Has("c"))
	asserts.False(c.Has("d"))

	odd := c.Filter(func(i item) bool { return i.value%2 == 1 })
	asserts.Equal([]string{"a", "c"}, odd.Keys())

	values := container.Map(c, func(i item) int { return i.value * 10 })
	asserts.Equal([]int{10, 20, 30}, values)

	// zero value is usable.
	var empty container.Container[item]
	asserts.Equal(0, empty.Len())
	_, ok = empty.Get("a")
	asserts.False(ok)
	asserts.NoError(empty.Add(item{"a", 1}))
	asserts.Equal([]string{"a"}, empty.Keys())
}

// TestProperty_InsertionOrder checks that keys keep their insertion order and stay unique.
func TestProperty_InsertionOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("keys are unique and ordered", prop.ForAll(
		func(values []int) bool {
			c := container.Container[item]{}
			var expected []string
			seen := make(map[string]bool)
			for _, v := range values {
				key := strconv.Itoa(v)
				err := c.Add(item{key, v})
				if seen[key] != (err != nil) {
					return false
				}
				if !seen[key] {
					seen[key] = true
					expected = append(expected, key)
				}
			}
			keys := c.Keys()
			if len(keys) != len(expected) {
				return false
			}
			for i := range keys {
				if keys[i] != expected[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.TestingRun(t)
}
