// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memory implements the cache.Interface and registers a memory provider.
// Expired items are removed lazily on access, there is no background worker.
package memory

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/patrickascher/tablekit/cache"
)

// init registers the memory provider.
func init() {
	err := cache.Register(cache.MEMORY, New)
	if err != nil {
		log.Fatal(err)
	}
}

// Error messages
var (
	ErrNameNotExist = "memory: name %v does not exist"
)

// Options for the memory provider.
type Options struct {
	// Now is used to check the expiration (default: time.Now).
	Now func() time.Time
}

// New creates a memory cache by the given options.
func New(opt interface{}) (cache.Interface, error) {
	m := &memory{now: time.Now, items: make(map[string]item)}
	if o, ok := opt.(Options); ok && o.Now != nil {
		m.now = o.Now
	}
	return m, nil
}

// memory cache provider.
type memory struct {
	mutex sync.Mutex
	now   func() time.Time
	items map[string]item
}

// Get returns the value of the given name.
// Error will return if the name does not exist or is expired.
func (m *memory) Get(name string) (cache.Item, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i, ok := m.items[name]
	if ok && i.expired(m.now()) {
		delete(m.items, name)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf(ErrNameNotExist, name)
	}
	return &i, nil
}

// All returns all items which are not expired, sorted by name.
func (m *memory) All() ([]cache.Item, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	var items []cache.Item
	for name := range m.items {
		i := m.items[name]
		if i.expired(now) {
			delete(m.items, name)
			continue
		}
		items = append(items, &i)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].Name() < items[b].Name() })
	return items, nil
}

// Set key/value pair.
// The expiration can be set by time.Duration or forever with cache.NoExpiration.
func (m *memory) Set(name string, value interface{}, exp time.Duration) error {
	m.mutex.Lock()
	m.items[name] = item{name: name, val: value, created: m.now(), exp: exp}
	m.mutex.Unlock()
	return nil
}

// Delete removes a given name from the cache.
// Error will return if the name does not exist.
func (m *memory) Delete(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.items[name]; !ok {
		return fmt.Errorf(ErrNameNotExist, name)
	}
	delete(m.items, name)
	return nil
}

// DeleteAll removes all items from the cache.
func (m *memory) DeleteAll() error {
	m.mutex.Lock()
	m.items = make(map[string]item)
	m.mutex.Unlock()
	return nil
}
