// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

const prefixSeparator = "_"

// defaultExpiration is used if an item is set with DefaultExpiration.
const defaultExpiration = time.Hour

// ErrNotExist is returned if a prefix has no items.
var ErrNotExist = "cache: item or prefix %s does not exist"

// Manager for cache operations.
type Manager interface {
	Get(prefix string, name string) (Item, error)
	Prefix(prefix string) ([]Item, error)
	Set(prefix string, name string, value interface{}, exp time.Duration) error
	Exist(prefix string, name string) bool
	Delete(prefix string, name string) error
	DeletePrefix(prefix string) error
	DeleteAll() error

	HitCount(prefix string, name string) int
	MissCount(prefix string, name string) int
}

// manager will hold the statistics and prefixes.
type manager struct {
	mutex sync.Mutex

	provider   Interface
	prefixes   map[string]map[string]struct{}
	statistics map[string]counter
}

// counter for the cache statistics.
type counter struct {
	hit  int
	miss int
}

// newManager returns a Manager with initialized data.
func newManager(provider Interface) Manager {
	return &manager{
		provider:   provider,
		prefixes:   make(map[string]map[string]struct{}),
		statistics: make(map[string]counter),
	}
}

// Get returns an Item by its prefix and name.
// Error will return if it does not exist.
func (m *manager) Get(prefix string, name string) (Item, error) {
	key := m.prefixedName(prefix, name)
	i, err := m.provider.Get(key)

	m.mutex.Lock()
	c := m.statistics[key]
	if err != nil {
		c.miss++
	} else {
		c.hit++
	}
	m.statistics[key] = c
	m.mutex.Unlock()

	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return i, nil
}

// Prefix returns all items with that prefix, sorted by name.
// Expired items are skipped. Error will return if the prefix does not exist.
func (m *manager) Prefix(prefix string) ([]Item, error) {
	names := m.names(prefix)
	if names == nil {
		return nil, fmt.Errorf(ErrNotExist, prefix)
	}

	var items []Item
	for _, name := range names {
		if i, err := m.Get(prefix, name); err == nil {
			items = append(items, i)
		}
	}
	return items, nil
}

// Set an item by its prefix, name, value and lifetime.
// If a value should never expire, cache.NoExpiration can be used as time.Duration.
// If the default expiration (one hour) should be used, use cache.DefaultExpiration.
func (m *manager) Set(prefix string, name string, value interface{}, exp time.Duration) error {
	if exp == DefaultExpiration {
		exp = defaultExpiration
	}
	if err := m.provider.Set(m.prefixedName(prefix, name), value, exp); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	m.mutex.Lock()
	if _, ok := m.prefixes[prefix]; !ok {
		m.prefixes[prefix] = make(map[string]struct{})
	}
	m.prefixes[prefix][name] = struct{}{}
	m.mutex.Unlock()
	return nil
}

// Exist wraps the Get() function but returns a boolean instead of an error.
func (m *manager) Exist(prefix string, name string) bool {
	_, err := m.Get(prefix, name)
	return err == nil
}

// Delete a value by its prefix and name.
// Error will return if it does not exist.
func (m *manager) Delete(prefix string, name string) error {
	key := m.prefixedName(prefix, name)
	if err := m.provider.Delete(key); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	m.mutex.Lock()
	delete(m.statistics, key)
	if names, ok := m.prefixes[prefix]; ok {
		delete(names, name)
		if len(names) == 0 {
			delete(m.prefixes, prefix)
		}
	}
	m.mutex.Unlock()
	return nil
}

// DeletePrefix deletes all items of the prefix.
// Error will return if the prefix does not exist.
func (m *manager) DeletePrefix(prefix string) error {
	names := m.names(prefix)
	if names == nil {
		return fmt.Errorf(ErrNotExist, prefix)
	}
	for _, name := range names {
		if err := m.Delete(prefix, name); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll items.
func (m *manager) DeleteAll() error {
	if err := m.provider.DeleteAll(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	m.mutex.Lock()
	m.statistics = make(map[string]counter)
	m.prefixes = make(map[string]map[string]struct{})
	m.mutex.Unlock()
	return nil
}

// HitCount shows the hits of the cache item.
func (m *manager) HitCount(prefix string, name string) int {
	key := m.prefixedName(prefix, name)
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.statistics[key].hit
}

// MissCount shows the missing hits of the cache item.
func (m *manager) MissCount(prefix string, name string) int {
	key := m.prefixedName(prefix, name)
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.statistics[key].miss
}

// names returns the sorted names of a prefix or nil.
func (m *manager) names(prefix string) []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	set, ok := m.prefixes[prefix]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// prefixedName returns the name with a prefix and separator.
func (m *manager) prefixedName(prefix string, name string) string {
	if prefix != "" {
		prefix = prefix + prefixSeparator
	}
	return prefix + name
}
