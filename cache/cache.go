// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cache provides a cache manager for any type that implements the cache.Interface.
// It is used to memoize table schemas and to hold the table versions of the memory option store.
// Features: prefixing, statistics and provider registration.
package cache

import (
	"fmt"
	"time"

	"github.com/patrickascher/tablekit/registry"
)

// Defaults
const (
	// DefaultExpiration of the cache provider.
	DefaultExpiration = 0
	// NoExpiration for the cache item.
	NoExpiration = -1
)

// registryPrefix for the providers registry name.
const registryPrefix = "tablekit:cache:"

// All predefined providers are listed here.
const (
	MEMORY = "memory"
)

type providerFn func(opt interface{}) (Interface, error)

// Interface description for cache providers.
type Interface interface {
	// Get returns an Item by its name.
	// Error must return if it does not exist or is expired.
	Get(name string) (Item, error)
	// All cached items which are not expired.
	// Must return nil if the cache is empty.
	All() ([]Item, error)
	// Set an item by its name, value and lifetime.
	// If cache.NoExpiration is set, the item should not expire.
	Set(name string, value interface{}, exp time.Duration) error
	// Delete a value by its name.
	// Error must return if it does not exist.
	Delete(name string) error
	// DeleteAll items.
	DeleteAll() error
}

// Item interface for the cached object.
type Item interface {
	Name() string
	Value() interface{}
	Created() time.Time
	Expiration() time.Duration
}

// New returns a cache manager of the provider with the given options.
// Every call creates a new provider instance.
// Error will return if the provider is not registered or returns one.
func New(provider string, options interface{}) (Manager, error) {
	instanceFn, err := registry.Get(registryPrefix + provider)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	p, err := instanceFn.(providerFn)(options)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return newManager(p), nil
}

// Register a new cache provider by name.
func Register(name string, provider providerFn) error {
	return registry.Set(registryPrefix+name, provider)
}
