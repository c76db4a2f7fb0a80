// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package container provides an ordered collection with unique keys.
// The insertion order is kept and every item can be looked up by its key.
package container

import (
	"errors"
	"fmt"
)

// Error messages.
var (
	ErrDuplicateKey = errors.New("container: duplicate key")
	ErrEmptyKey     = errors.New("container: key must not be empty")
)

// Keyer must be implemented by every item of a Container.
type Keyer interface {
	Key() string
}

// Container holds items in insertion order with unique keys.
// The zero value is ready to use.
type Container[T Keyer] struct {
	items []T
	index map[string]int
}

// New creates a Container with the given items.
// Error will return on the first empty or duplicate key.
func New[T Keyer](items ...T) (*Container[T], error) {
	c := &Container[T]{}
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends an item.
// Error will return if the key is empty or already exists.
func (c *Container[T]) Add(item T) error {
	key := item.Key()
	if key == "" {
		return ErrEmptyKey
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// Get returns the item by key.
func (c *Container[T]) Get(key string) (T, bool) {
	var zero T
	if c == nil || c.index == nil {
		return zero, false
	}
	i, ok := c.index[key]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

// Has reports whether the key exists.
func (c *Container[T]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of items.
func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of all items in insertion order.
func (c *Container[T]) Items() []T {
	if c == nil {
		return nil
	}
	rv := make([]T, len(c.items))
	copy(rv, c.items)
	return rv
}

// Keys returns all keys in insertion order.
func (c *Container[T]) Keys() []string {
	if c == nil {
		return nil
	}
	rv := make([]string, len(c.items))
	for i, item := range c.items {
		rv[i] = item.Key()
	}
	return rv
}

// Each calls fn for every item in insertion order.
func (c *Container[T]) Each(fn func(T)) {
	if c == nil {
		return
	}
	for _, item := range c.items {
		fn(item)
	}
}

// Filter returns a new Container with all items fn returns true for.
func (c *Container[T]) Filter(fn func(T) bool) *Container[T] {
	rv := &Container[T]{}
	c.Each(func(item T) {
		if fn(item) {
			// keys are already unique.
			_ = rv.Add(item)
		}
	})
	return rv
}

// Map returns the result of fn for every item in insertion order.
func Map[T Keyer, R any](c *Container[T], fn func(T) R) []R {
	rv := make([]R, 0, c.Len())
	c.Each(func(item T) {
		rv = append(rv, fn(item))
	})
	return rv
}
