// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package registry provides a process wide container for named providers.
// Query providers, logger providers, config providers and cache providers register themselves here by a prefixed name.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Error messages
var (
	ErrUnknownEntry       = "registry: unknown registry name %#v, maybe you forgot to set it"
	ErrMandatoryArguments = errors.New("registry: one or more arguments have a zero-value")
	ErrAlreadyExists      = "registry: %v is already registered"
)

// store of all registered values and validators.
var (
	mu        sync.RWMutex
	entries   = make(map[string]interface{})
	validator []Validate
)

// Validate defines a prefix and custom function which can be added to the `Validator` function.
// The custom function will receive the registry name and registry value as arguments.
type Validate struct {
	Prefix string
	Fn     func(string, interface{}) error
}

// Validator adds a custom function which is called before a value with the matching prefix is added.
// Only one validator per prefix is allowed.
func Validator(validate Validate) error {
	if validate.Prefix == "" || validate.Fn == nil {
		return ErrMandatoryArguments
	}

	mu.Lock()
	defer mu.Unlock()
	if hasValidator(validate.Prefix) != nil {
		return fmt.Errorf(ErrAlreadyExists, "validator prefix "+validate.Prefix)
	}
	validator = append(validator, validate)
	return nil
}

// hasValidator returns the validator whose prefix matches the name.
func hasValidator(name string) *Validate {
	for i := range validator {
		if strings.HasPrefix(name, validator[i].Prefix) {
			return &validator[i]
		}
	}
	return nil
}

// Set a value by name.
// The name and value must have a non-zero value and the name must be unique.
func Set(name string, value interface{}) error {
	if value == nil || name == "" {
		return ErrMandatoryArguments
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[name]; exists {
		return fmt.Errorf(ErrAlreadyExists, name)
	}

	if v := hasValidator(name); v != nil {
		if err := v.Fn(name, value); err != nil {
			return fmt.Errorf("registry: %w", err)
		}
	}

	entries[name] = value
	return nil
}

// Get returns the value by the registered name.
func Get(name string) (interface{}, error) {
	mu.RLock()
	v, ok := entries[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf(ErrUnknownEntry, name)
	}
	return v, nil
}

// Delete removes a registered name.
// It is a no-op if the name does not exist.
func Delete(name string) {
	mu.Lock()
	delete(entries, name)
	mu.Unlock()
}

// Prefix returns all entries whose name starts with the prefix.
// If none was found, an empty map will return.
func Prefix(prefix string) map[string]interface{} {
	mu.RLock()
	defer mu.RUnlock()
	rv := make(map[string]interface{})
	for n, v := range entries {
		if strings.HasPrefix(n, prefix) {
			rv[n] = v
		}
	}
	return rv
}
