// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"sync"

	"github.com/patrickascher/tablekit/cache"
)

// cachePrefix of the memoized tables.
const cachePrefix = "schema"

// Definer must be implemented by every table declaration.
// Definition is called once per process unless the table gets refreshed.
type Definer interface {
	Definition() Definition
}

// Registry memoizes the validated Table of every Definer type.
type Registry struct {
	mutex sync.Mutex
	cache cache.Manager
}

// NewRegistry creates a Registry which stores the tables in the given cache manager.
func NewRegistry(c cache.Manager) *Registry {
	return &Registry{cache: c}
}

// key of the definer, its type.
func key(d Definer) string {
	return fmt.Sprintf("%T", d)
}

// Table returns the memoized table of the definer.
// On the first call the definition is validated and cached without expiration.
func (r *Registry) Table(d Definer) (*Table, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if item, err := r.cache.Get(cachePrefix, key(d)); err == nil {
		return item.Value().(*Table), nil
	}
	return r.build(d)
}

// Refresh recomputes the table of the definer.
// The cached table is only replaced if the new definition is valid.
func (r *Registry) Refresh(d Definer) (*Table, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.build(d)
}

// Forget removes the cached table of the definer.
func (r *Registry) Forget(d Definer) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	// a missing entry is not an error here.
	_ = r.cache.Delete(cachePrefix, key(d))
}

// Reset removes all cached tables.
func (r *Registry) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	// an empty registry is not an error here.
	_ = r.cache.DeletePrefix(cachePrefix)
}

// Stats returns how often the table of the definer was found in or missing from the cache.
// The counters are cleared by Forget and Reset.
func (r *Registry) Stats(d Definer) (hits int, misses int) {
	return r.cache.HitCount(cachePrefix, key(d)), r.cache.MissCount(cachePrefix, key(d))
}

// build validates and caches the definition.
func (r *Registry) build(d Definer) (*Table, error) {
	t, err := New(d.Definition())
	if err != nil {
		return nil, err
	}
	if err = r.cache.Set(cachePrefix, key(d), t, cache.NoExpiration); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return t, nil
}
